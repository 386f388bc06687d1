package models

import (
	"time"
)

// Annotation status values. StatusNew is never stored; it marks a
// (coder, video) pair without a saved result.
const (
	StatusNew       = "new"
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
)

// Export status labels
const (
	ExportStatusExcluded  = "excluded"
	ExportStatusSubmitted = "submitted"
	ExportStatusSaved     = "saved"
)

// Project is a coding project. The slug is its immutable public key and
// names the project's upload storage area.
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Codebook  string    `json:"-" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Coders []Coder       `json:"coders,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Files  []ProjectFile `json:"files,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// CodebookValue parses the stored codebook. Malformed data reads as empty.
func (p *Project) CodebookValue() Codebook {
	cb, err := ParseCodebook(p.Codebook)
	if err != nil {
		return Codebook{}
	}
	return cb
}

// ProjectFile records an uploaded catalog source file
type ProjectFile struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProjectID    uint      `json:"project_id" gorm:"not null;index"`
	Filename     string    `json:"filename" gorm:"not null"`
	OriginalName string    `json:"original_name" gorm:"not null"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

// Coder is a named participant within one project
type Coder struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ProjectID     uint      `json:"project_id" gorm:"not null;uniqueIndex:idx_coders_project_name,priority:1"`
	Name          string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_coders_project_name,priority:2"`
	ProgressIndex int       `json:"progress_index" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
}

// Result is one coder's annotation of one video. At most one row exists per
// (project, coder, video); the composite unique index is the upsert target.
type Result struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProjectID  uint      `json:"project_id" gorm:"not null;uniqueIndex:idx_results_key,priority:1"`
	CoderID    uint      `json:"coder_id" gorm:"not null;uniqueIndex:idx_results_key,priority:2"`
	VideoID    string    `json:"video_id" gorm:"size:255;not null;uniqueIndex:idx_results_key,priority:3"`
	Categories string    `json:"-" gorm:"type:text"`
	Notes      string    `json:"notes" gorm:"type:text"`
	Status     string    `json:"status" gorm:"size:16;not null"`
	Excluded   bool      `json:"excluded" gorm:"not null"`
	Timestamp  time.Time `json:"timestamp"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Coder Coder `json:"-" gorm:"foreignKey:CoderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the Result model
func (Result) TableName() string {
	return "results"
}

// Selections parses the stored categories. Malformed data reads as empty.
func (r *Result) Selections() Selections {
	sel, err := ParseSelections(r.Categories)
	if err != nil {
		return Selections{}
	}
	return sel
}

// ExportStatus derives the label used in exports
func (r *Result) ExportStatus() string {
	switch {
	case r.Excluded:
		return ExportStatusExcluded
	case r.Status == StatusSubmitted:
		return ExportStatusSubmitted
	default:
		return ExportStatusSaved
	}
}

// All returns every persisted model, in dependency order, for migrations
func All() []any {
	return []any{
		&Project{},
		&ProjectFile{},
		&Coder{},
		&Result{},
	}
}
