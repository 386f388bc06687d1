package coding

import (
	"context"

	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/killallgit/vidcode-api/internal/services/catalog"
)

// Repository defines the persistence operations behind coding
type Repository interface {
	// Read operations
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	GetCoder(ctx context.Context, projectID uint, name string) (*models.Coder, error)
	GetResult(ctx context.Context, projectID, coderID uint, videoID string) (*models.Result, error)
	ListResults(ctx context.Context, projectID uint, coderID uint) ([]models.Result, error)

	// Write operations
	UpsertResult(ctx context.Context, result *models.Result) error
	AdvanceProgress(ctx context.Context, coderID uint, total int) (bool, error)

	// Transaction runs fn against a repository bound to one transaction
	Transaction(ctx context.Context, fn func(repo Repository) error) error
}

// Catalog supplies a project's ordered videos
type Catalog interface {
	Load(ctx context.Context, slug string) ([]catalog.Video, error)
}

// Service defines the coding workflow: cursor navigation and annotation writes
type Service interface {
	// Cursor navigation
	Current(ctx context.Context, project, coder string) (*VideoView, error)
	Previous(ctx context.Context, project, coder string) (*VideoView, error)
	At(ctx context.Context, project, coder string, index int) (*VideoView, error)

	// Annotations
	Get(ctx context.Context, project, coder, videoID string) (*Response, error)
	SaveDraft(ctx context.Context, req SaveRequest) error
	Submit(ctx context.Context, req SaveRequest) error
	ListResults(ctx context.Context, project, coder string) ([]models.Result, error)
}
