package projects

import (
	"context"
	"io"

	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/killallgit/vidcode-api/internal/services/catalog"
)

// Repository defines the persistence operations behind project management
type Repository interface {
	// Projects
	CreateProject(ctx context.Context, project *models.Project) error
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, projectID uint) error

	// Coders
	CreateCoder(ctx context.Context, coder *models.Coder) error
	GetCoder(ctx context.Context, projectID uint, name string) (*models.Coder, error)
	DeleteCoder(ctx context.Context, coderID uint) error

	// Files
	CreateFile(ctx context.Context, file *models.ProjectFile) error
	GetFile(ctx context.Context, projectID, fileID uint) (*models.ProjectFile, error)
	ListFiles(ctx context.Context, projectID uint) ([]models.ProjectFile, error)
	DeleteFile(ctx context.Context, fileID uint) error

	// Results touched by codebook migrations
	ListResults(ctx context.Context, projectID uint) ([]models.Result, error)
	UpdateResultCategories(ctx context.Context, resultID uint, categories string) error

	// Transaction runs fn against a repository bound to one transaction
	Transaction(ctx context.Context, fn func(repo Repository) error) error
}

// Catalog supplies a project's ordered videos
type Catalog interface {
	Load(ctx context.Context, slug string) ([]catalog.Video, error)
}

// Service defines project, coder and source file management
type Service interface {
	// Projects
	CreateProject(ctx context.Context, req CreateRequest) (*ProjectView, error)
	GetProject(ctx context.Context, slug string) (*ProjectView, error)
	ListProjects(ctx context.Context) ([]ProjectView, error)
	UpdateProject(ctx context.Context, slug string, req UpdateRequest) (int, error)
	DeleteProject(ctx context.Context, slug string) error

	// Coders
	AddCoder(ctx context.Context, slug, name string) (*models.Coder, error)
	RemoveCoder(ctx context.Context, slug, name string) error

	// Source files
	UploadFile(ctx context.Context, slug, originalName string, data io.Reader) (*models.ProjectFile, error)
	ListFiles(ctx context.Context, slug string) ([]models.ProjectFile, error)
	DeleteFile(ctx context.Context, slug string, fileID uint) error
}
