package projects

import (
	"time"

	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/killallgit/vidcode-api/internal/services/projects"
)

// ProjectListResponse wraps the project list
type ProjectListResponse struct {
	Projects []projects.ProjectView `json:"projects"`
}

// AddCoderRequest names a new coder
type AddCoderRequest struct {
	Name string `json:"name"`
}

// FileListResponse wraps a project's source files
type FileListResponse struct {
	Files []models.ProjectFile `json:"files"`
}

// ResultView is one stored annotation with its categories decoded
type ResultView struct {
	ID         uint              `json:"id"`
	Coder      string            `json:"coder"`
	VideoID    string            `json:"video_id"`
	Status     string            `json:"status"`
	Excluded   bool              `json:"excluded"`
	Notes      string            `json:"notes"`
	Categories models.Selections `json:"categories"`
	Timestamp  time.Time         `json:"timestamp"`
}

// ResultListResponse wraps a project's annotations
type ResultListResponse struct {
	Results []ResultView `json:"results"`
}

func newResultView(r *models.Result) ResultView {
	return ResultView{
		ID:         r.ID,
		Coder:      r.Coder.Name,
		VideoID:    r.VideoID,
		Status:     r.Status,
		Excluded:   r.Excluded,
		Notes:      r.Notes,
		Categories: r.Selections(),
		Timestamp:  r.Timestamp,
	}
}
