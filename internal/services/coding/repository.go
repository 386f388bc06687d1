package coding

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/vidcode-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new coding repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// GetProjectBySlug retrieves a project by its slug
func (r *RepositoryImpl) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return &project, nil
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

// GetResult retrieves the annotation for a key. A missing row is (nil, nil).
func (r *RepositoryImpl) GetResult(ctx context.Context, projectID, coderID uint, videoID string) (*models.Result, error) {
	var result models.Result
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND coder_id = ? AND video_id = ?", projectID, coderID, videoID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting result: %w", err)
	}
	return &result, nil
}

// ListResults retrieves a project's annotations ordered by id. A zero
// coderID lists every coder.
func (r *RepositoryImpl) ListResults(ctx context.Context, projectID uint, coderID uint) ([]models.Result, error) {
	var results []models.Result
	query := r.db.WithContext(ctx).Preload("Coder").Where("project_id = ?", projectID)
	if coderID != 0 {
		query = query.Where("coder_id = ?", coderID)
	}
	if err := query.Order("id ASC").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}
	return results, nil
}

// UpsertResult inserts the annotation or overwrites the row with the same
// (project, coder, video) key.
func (r *RepositoryImpl) UpsertResult(ctx context.Context, result *models.Result) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "project_id"}, {Name: "coder_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"categories", "notes", "status", "excluded", "timestamp", "updated_at",
			}),
		}).
		Create(result).Error
	if err != nil {
		return fmt.Errorf("upserting result: %w", err)
	}
	return nil
}

// AdvanceProgress moves the cursor one step unless it already sits at total.
// It reports whether the cursor moved.
func (r *RepositoryImpl) AdvanceProgress(ctx context.Context, coderID uint, total int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Coder{}).
		Where("id = ? AND progress_index < ?", coderID, total).
		UpdateColumn("progress_index", gorm.Expr("progress_index + ?", 1))
	if res.Error != nil {
		return false, fmt.Errorf("advancing progress: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Transaction runs fn inside a database transaction
func (r *RepositoryImpl) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RepositoryImpl{db: tx})
	})
}
