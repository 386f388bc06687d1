package coding

import (
	"github.com/killallgit/vidcode-api/internal/models"
)

// Response is a coder's stored answer for one video
type Response struct {
	Categories models.Selections `json:"categories"`
	Notes      string            `json:"notes"`
	Status     string            `json:"status"`
	Excluded   bool              `json:"excluded"`
}

// newResponse is returned for a (coder, video) pair with nothing saved
func newResponse() *Response {
	return &Response{Categories: models.Selections{}, Status: models.StatusNew}
}

func responseFrom(r *models.Result) *Response {
	return &Response{
		Categories: r.Selections(),
		Notes:      r.Notes,
		Status:     r.Status,
		Excluded:   r.Excluded,
	}
}

// VideoView is one position of a coder's walk through the catalog. Done
// views carry only Index and Total.
type VideoView struct {
	ID       string            `json:"id,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Response *Response         `json:"response,omitempty"`
	Index    int               `json:"index"`
	Total    int               `json:"total"`
	Done     bool              `json:"done,omitempty"`
}

// SaveRequest carries a draft save or a submit
type SaveRequest struct {
	Project    string
	Coder      string
	VideoID    string
	Categories models.Selections
	Notes      string
	Excluded   bool
}
