package projects

import (
	"time"

	"github.com/killallgit/vidcode-api/internal/models"
)

// CreateRequest describes a new project
type CreateRequest struct {
	Slug     string          `json:"slug"`
	Name     string          `json:"name"`
	Codebook models.Codebook `json:"codebook"`
	Coders   []string        `json:"coders"`
}

// UpdateRequest changes a project's name and codebook. An empty name keeps
// the current one; a nil codebook keeps the current codebook.
type UpdateRequest struct {
	Name     string          `json:"name"`
	Codebook models.Codebook `json:"codebook"`
}

// ProjectView is a project with its parsed codebook and catalog size
type ProjectView struct {
	ID         uint                 `json:"id"`
	Slug       string               `json:"slug"`
	Name       string               `json:"name"`
	Codebook   models.Codebook      `json:"codebook"`
	Coders     []models.Coder       `json:"coders"`
	Files      []models.ProjectFile `json:"files"`
	VideoCount int                  `json:"video_count"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func newView(p *models.Project, videoCount int) ProjectView {
	coders := p.Coders
	if coders == nil {
		coders = []models.Coder{}
	}
	files := p.Files
	if files == nil {
		files = []models.ProjectFile{}
	}
	return ProjectView{
		ID:         p.ID,
		Slug:       p.Slug,
		Name:       p.Name,
		Codebook:   p.CodebookValue(),
		Coders:     coders,
		Files:      files,
		VideoCount: videoCount,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
