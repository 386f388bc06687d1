package coding

import (
	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/killallgit/vidcode-api/internal/services/coding"
)

// ResponseBody is the nested answer of a save-progress request
type ResponseBody struct {
	Categories models.Selections `json:"categories"`
	Notes      string            `json:"notes"`
	Excluded   bool              `json:"excluded"`
}

// SaveProgressRequest saves a draft. The answer may be nested under
// "response" or given as top-level fields; the nested form wins.
type SaveProgressRequest struct {
	Project    string            `json:"project"`
	Coder      string            `json:"coder"`
	VideoID    string            `json:"video_id"`
	Response   *ResponseBody     `json:"response,omitempty"`
	Categories models.Selections `json:"categories,omitempty" swaggertype:"object"`
	Notes      string            `json:"notes,omitempty"`
	Excluded   bool              `json:"excluded,omitempty"`
}

func (r SaveProgressRequest) toSaveRequest() coding.SaveRequest {
	req := coding.SaveRequest{
		Project:    r.Project,
		Coder:      r.Coder,
		VideoID:    r.VideoID,
		Categories: r.Categories,
		Notes:      r.Notes,
		Excluded:   r.Excluded,
	}
	if r.Response != nil {
		req.Categories = r.Response.Categories
		req.Notes = r.Response.Notes
		req.Excluded = r.Response.Excluded
	}
	return req
}

// SubmitRequest finalizes an answer and advances the coder's cursor
type SubmitRequest struct {
	Project    string            `json:"project"`
	Coder      string            `json:"coder"`
	VideoID    string            `json:"video_id"`
	Categories models.Selections `json:"categories" swaggertype:"object"`
	Notes      string            `json:"notes"`
	Excluded   bool              `json:"excluded"`
}

func (r SubmitRequest) toSaveRequest() coding.SaveRequest {
	return coding.SaveRequest{
		Project:    r.Project,
		Coder:      r.Coder,
		VideoID:    r.VideoID,
		Categories: r.Categories,
		Notes:      r.Notes,
		Excluded:   r.Excluded,
	}
}
