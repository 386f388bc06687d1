package projects

import (
	"context"
	"fmt"

	"github.com/killallgit/vidcode-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new project repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateProject inserts a project without its associations
func (r *RepositoryImpl) CreateProject(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Omit("Coders", "Files").Create(project).Error; err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}

// GetProjectBySlug retrieves a project with its coders and files
func (r *RepositoryImpl) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).
		Preload("Coders", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("filename ASC") }).
		Where("slug = ?", slug).
		First(&project).Error; err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return &project, nil
}

// ListProjects retrieves every project ordered by slug
func (r *RepositoryImpl) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Preload("Coders", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("filename ASC") }).
		Order("slug ASC").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// UpdateProject persists name and codebook. The slug never changes.
func (r *RepositoryImpl) UpdateProject(ctx context.Context, project *models.Project) error {
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"name":       project.Name,
			"codebook":   project.Codebook,
			"updated_at": r.db.NowFunc(),
		})
	if result.Error != nil {
		return fmt.Errorf("updating project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("updating project: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteProject removes a project and everything that hangs off it
func (r *RepositoryImpl) DeleteProject(ctx context.Context, projectID uint) error {
	db := r.db.WithContext(ctx)
	steps := []struct {
		what  string
		model any
		where string
	}{
		{"results", &models.Result{}, "project_id = ?"},
		{"coders", &models.Coder{}, "project_id = ?"},
		{"files", &models.ProjectFile{}, "project_id = ?"},
		{"project", &models.Project{}, "id = ?"},
	}
	for _, step := range steps {
		if err := db.Where(step.where, projectID).Delete(step.model).Error; err != nil {
			return fmt.Errorf("deleting %s: %w", step.what, err)
		}
	}
	return nil
}

// CreateCoder inserts a coder
func (r *RepositoryImpl) CreateCoder(ctx context.Context, coder *models.Coder) error {
	if err := r.db.WithContext(ctx).Create(coder).Error; err != nil {
		return fmt.Errorf("creating coder: %w", err)
	}
	return nil
}

// GetCoder retrieves a coder by name within a project
func (r *RepositoryImpl) GetCoder(ctx context.Context, projectID uint, name string) (*models.Coder, error) {
	var coder models.Coder
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND name = ?", projectID, name).
		First(&coder).Error; err != nil {
		return nil, fmt.Errorf("getting coder: %w", err)
	}
	return &coder, nil
}

// DeleteCoder removes a coder and their results
func (r *RepositoryImpl) DeleteCoder(ctx context.Context, coderID uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("coder_id = ?", coderID).Delete(&models.Result{}).Error; err != nil {
		return fmt.Errorf("deleting coder results: %w", err)
	}
	if err := db.Delete(&models.Coder{}, coderID).Error; err != nil {
		return fmt.Errorf("deleting coder: %w", err)
	}
	return nil
}

// CreateFile records an uploaded file
func (r *RepositoryImpl) CreateFile(ctx context.Context, file *models.ProjectFile) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	return nil
}

// GetFile retrieves a file record of a project
func (r *RepositoryImpl) GetFile(ctx context.Context, projectID, fileID uint) (*models.ProjectFile, error) {
	var file models.ProjectFile
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND id = ?", projectID, fileID).
		First(&file).Error; err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}
	return &file, nil
}

// ListFiles retrieves a project's files in upload order
func (r *RepositoryImpl) ListFiles(ctx context.Context, projectID uint) ([]models.ProjectFile, error) {
	var files []models.ProjectFile
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("filename ASC").
		Find(&files).Error; err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	return files, nil
}

// DeleteFile removes a file record
func (r *RepositoryImpl) DeleteFile(ctx context.Context, fileID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.ProjectFile{}, fileID).Error; err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

// ListResults retrieves a project's annotations ordered by id
func (r *RepositoryImpl) ListResults(ctx context.Context, projectID uint) ([]models.Result, error) {
	var results []models.Result
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}
	return results, nil
}

// UpdateResultCategories rewrites the stored categories of one annotation
func (r *RepositoryImpl) UpdateResultCategories(ctx context.Context, resultID uint, categories string) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Result{}).
		Where("id = ?", resultID).
		UpdateColumn("categories", categories).Error; err != nil {
		return fmt.Errorf("updating result categories: %w", err)
	}
	return nil
}

// Transaction runs fn inside a database transaction
func (r *RepositoryImpl) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RepositoryImpl{db: tx})
	})
}
