package projects

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/killallgit/vidcode-api/internal/metrics"
	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/killallgit/vidcode-api/internal/services/catalog"
	"github.com/killallgit/vidcode-api/internal/services/codebook"
	"github.com/killallgit/vidcode-api/internal/services/storage"
	"github.com/killallgit/vidcode-api/pkg/config"
	apperrors "github.com/killallgit/vidcode-api/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	storage    storage.Backend
	catalog    Catalog
	metrics    *metrics.Metrics
}

// NewService creates a new project service. m may be nil.
func NewService(repository Repository, store storage.Backend, cat Catalog, m *metrics.Metrics) Service {
	return &ServiceImpl{
		repository: repository,
		storage:    store,
		catalog:    cat,
		metrics:    m,
	}
}

// CreateProject creates a project and its initial coders in one transaction
func (s *ServiceImpl) CreateProject(ctx context.Context, req CreateRequest) (*ProjectView, error) {
	slug := strings.TrimSpace(req.Slug)
	name := strings.TrimSpace(req.Name)
	switch {
	case slug == "":
		return nil, apperrors.MissingFieldError("slug")
	case !config.ValidSlug(slug):
		return nil, apperrors.ValidationError("slug", "must match ^[a-z0-9][a-z0-9-]*$")
	case name == "":
		return nil, apperrors.MissingFieldError("name")
	}
	if err := req.Codebook.Validate(); err != nil {
		return nil, apperrors.ValidationError("codebook", err.Error())
	}
	coders, err := coderNames(req.Coders)
	if err != nil {
		return nil, err
	}
	encoded, err := req.Codebook.Encode()
	if err != nil {
		return nil, apperrors.ValidationError("codebook", err.Error())
	}

	project := &models.Project{Slug: slug, Name: name, Codebook: encoded}
	err = s.repository.Transaction(ctx, func(repo Repository) error {
		if err := repo.CreateProject(ctx, project); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.AlreadyExists("project", slug)
			}
			return apperrors.DatabaseError("create project", err)
		}
		for _, name := range coders {
			coder := models.Coder{ProjectID: project.ID, Name: name}
			if err := repo.CreateCoder(ctx, &coder); err != nil {
				return apperrors.DatabaseError("create coder", err)
			}
			project.Coders = append(project.Coders, coder)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("project", slug).Int("coders", len(coders)).Msg("project created")
	view := newView(project, 0)
	return &view, nil
}

// GetProject returns one project with its catalog size
func (s *ServiceImpl) GetProject(ctx context.Context, slug string) (*ProjectView, error) {
	project, err := s.project(ctx, s.repository, slug)
	if err != nil {
		return nil, err
	}
	videos, err := s.catalog.Load(ctx, project.Slug)
	if err != nil {
		return nil, err
	}
	view := newView(project, len(videos))
	return &view, nil
}

// ListProjects returns every project
func (s *ServiceImpl) ListProjects(ctx context.Context) ([]ProjectView, error) {
	projects, err := s.repository.ListProjects(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("list projects", err)
	}

	views := make([]ProjectView, 0, len(projects))
	for i := range projects {
		count := 0
		videos, err := s.catalog.Load(ctx, projects[i].Slug)
		if err != nil {
			log.Warn().Err(err).Str("project", projects[i].Slug).Msg("catalog unreadable, reporting zero videos")
		} else {
			count = len(videos)
		}
		views = append(views, newView(&projects[i], count))
	}
	return views, nil
}

// UpdateProject renames the project and replaces its codebook, migrating
// stored annotations to the new codebook in the same transaction. It
// returns the number of annotations rewritten.
func (s *ServiceImpl) UpdateProject(ctx context.Context, slug string, req UpdateRequest) (int, error) {
	if req.Codebook != nil {
		if err := req.Codebook.Validate(); err != nil {
			return 0, apperrors.ValidationError("codebook", err.Error())
		}
	}

	changed := 0
	err := s.repository.Transaction(ctx, func(repo Repository) error {
		project, err := s.project(ctx, repo, slug)
		if err != nil {
			return err
		}

		if name := strings.TrimSpace(req.Name); name != "" {
			project.Name = name
		}

		if req.Codebook != nil {
			changed, err = s.migrate(ctx, repo, project, req.Codebook)
			if err != nil {
				return err
			}
			encoded, err := req.Codebook.Encode()
			if err != nil {
				return apperrors.ValidationError("codebook", err.Error())
			}
			project.Codebook = encoded
		}

		if err := repo.UpdateProject(ctx, project); err != nil {
			return apperrors.DatabaseError("update project", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if req.Codebook != nil {
		s.metrics.RecordMigration(changed)
	}
	log.Info().Str("project", slug).Int("updated_results", changed).Msg("project updated")
	return changed, nil
}

func (s *ServiceImpl) migrate(ctx context.Context, repo Repository, project *models.Project, updated models.Codebook) (int, error) {
	old, err := models.ParseCodebook(project.Codebook)
	if err != nil {
		log.Warn().Err(err).Str("project", project.Slug).Msg("stored codebook unreadable, migrating from an empty codebook")
		old = models.Codebook{}
	}
	plan := codebook.NewPlan(old, updated)

	results, err := repo.ListResults(ctx, project.ID)
	if err != nil {
		return 0, apperrors.DatabaseError("list results", err)
	}

	changed := 0
	for _, result := range results {
		selections, err := models.ParseSelections(result.Categories)
		if err != nil {
			log.Warn().Err(err).Uint("result_id", result.ID).Msg("skipping annotation with malformed categories")
			continue
		}
		migrated, ok := plan.Apply(selections)
		if !ok {
			continue
		}
		encoded, err := migrated.Encode()
		if err != nil {
			return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encoding migrated categories")
		}
		if err := repo.UpdateResultCategories(ctx, result.ID, encoded); err != nil {
			return 0, apperrors.DatabaseError("migrate result", err)
		}
		changed++
	}
	return changed, nil
}

// DeleteProject removes the project, its coders, results, files and
// storage area. Storage is removed last so a failure rolls back the rows.
func (s *ServiceImpl) DeleteProject(ctx context.Context, slug string) error {
	err := s.repository.Transaction(ctx, func(repo Repository) error {
		project, err := s.project(ctx, repo, slug)
		if err != nil {
			return err
		}
		if err := repo.DeleteProject(ctx, project.ID); err != nil {
			return apperrors.DatabaseError("delete project", err)
		}
		if err := s.storage.RemoveProject(ctx, project.Slug); err != nil {
			return apperrors.StorageError("remove project", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info().Str("project", slug).Msg("project deleted")
	return nil
}

// AddCoder adds a named coder to a project
func (s *ServiceImpl) AddCoder(ctx context.Context, slug, name string) (*models.Coder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.MissingFieldError("name")
	}
	project, err := s.project(ctx, s.repository, slug)
	if err != nil {
		return nil, err
	}

	coder := &models.Coder{ProjectID: project.ID, Name: name}
	if err := s.repository.CreateCoder(ctx, coder); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.AlreadyExists("coder", name)
		}
		return nil, apperrors.DatabaseError("create coder", err)
	}
	return coder, nil
}

// RemoveCoder removes a coder and their annotations
func (s *ServiceImpl) RemoveCoder(ctx context.Context, slug, name string) error {
	return s.repository.Transaction(ctx, func(repo Repository) error {
		project, err := s.project(ctx, repo, slug)
		if err != nil {
			return err
		}
		coder, err := repo.GetCoder(ctx, project.ID, name)
		if err != nil {
			return notFoundOr(err, "coder", name)
		}
		if err := repo.DeleteCoder(ctx, coder.ID); err != nil {
			return apperrors.DatabaseError("delete coder", err)
		}
		return nil
	})
}

// UploadFile stores a catalog source file. Files that cannot be read as a
// catalog are rejected and removed again.
func (s *ServiceImpl) UploadFile(ctx context.Context, slug, originalName string, data io.Reader) (*models.ProjectFile, error) {
	originalName = filepath.Base(strings.TrimSpace(originalName))
	if originalName == "" || originalName == "." {
		return nil, apperrors.MissingFieldError("file")
	}
	if !storage.SupportedExtension(originalName) {
		return nil, apperrors.ValidationError("file", "only .csv and .xlsx files are supported")
	}

	project, err := s.project(ctx, s.repository, slug)
	if err != nil {
		return nil, err
	}

	stored, err := s.storage.Save(ctx, project.Slug, originalName, data)
	if err != nil {
		return nil, apperrors.StorageError("save upload", err)
	}
	discard := func() {
		if err := s.storage.Delete(ctx, project.Slug, stored.Filename); err != nil {
			log.Error().Err(err).Str("file", stored.Filename).Msg("failed to remove rejected upload")
		}
	}

	if _, err := catalog.ReadFile(stored.Path); err != nil {
		discard()
		return nil, apperrors.ValidationError("file", err.Error())
	}

	file := &models.ProjectFile{
		ProjectID:    project.ID,
		Filename:     stored.Filename,
		OriginalName: originalName,
		Size:         stored.Size,
	}
	if err := s.repository.CreateFile(ctx, file); err != nil {
		discard()
		return nil, apperrors.DatabaseError("record upload", err)
	}

	log.Info().Str("project", project.Slug).Str("file", originalName).Int64("size", stored.Size).Msg("catalog file uploaded")
	return file, nil
}

// ListFiles lists a project's source files in catalog order
func (s *ServiceImpl) ListFiles(ctx context.Context, slug string) ([]models.ProjectFile, error) {
	project, err := s.project(ctx, s.repository, slug)
	if err != nil {
		return nil, err
	}
	files, err := s.repository.ListFiles(ctx, project.ID)
	if err != nil {
		return nil, apperrors.DatabaseError("list files", err)
	}
	return files, nil
}

// DeleteFile removes one source file and its record
func (s *ServiceImpl) DeleteFile(ctx context.Context, slug string, fileID uint) error {
	return s.repository.Transaction(ctx, func(repo Repository) error {
		project, err := s.project(ctx, repo, slug)
		if err != nil {
			return err
		}
		file, err := repo.GetFile(ctx, project.ID, fileID)
		if err != nil {
			return notFoundOr(err, "file", fileID)
		}
		if err := repo.DeleteFile(ctx, file.ID); err != nil {
			return apperrors.DatabaseError("delete file", err)
		}
		if err := s.storage.Delete(ctx, project.Slug, file.Filename); err != nil {
			return apperrors.StorageError("delete file", err)
		}
		return nil
	})
}

func (s *ServiceImpl) project(ctx context.Context, repo Repository, slug string) (*models.Project, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, apperrors.MissingFieldError("project")
	}
	project, err := repo.GetProjectBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "project", slug)
	}
	return project, nil
}

func coderNames(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, apperrors.ValidationError("coders", "coder names must not be empty")
		}
		if _, dup := seen[n]; dup {
			return nil, apperrors.ValidationError("coders", fmt.Sprintf("duplicate coder %q", n))
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}

func notFoundOr(err error, resource string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(resource, id)
	}
	return apperrors.DatabaseError("get "+resource, err)
}
