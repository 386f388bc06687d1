package coding

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/killallgit/vidcode-api/internal/metrics"
	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/killallgit/vidcode-api/internal/services/catalog"
	apperrors "github.com/killallgit/vidcode-api/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	catalog    Catalog
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewService creates a new coding service. m may be nil.
func NewService(repository Repository, catalog Catalog, m *metrics.Metrics) Service {
	return &ServiceImpl{
		repository: repository,
		catalog:    catalog,
		metrics:    m,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Current returns the video at the coder's cursor, or a done view past the end
func (s *ServiceImpl) Current(ctx context.Context, project, coder string) (*VideoView, error) {
	p, c, err := s.resolve(ctx, s.repository, project, coder)
	if err != nil {
		return nil, err
	}
	videos, err := s.catalog.Load(ctx, p.Slug)
	if err != nil {
		return nil, err
	}

	if c.ProgressIndex >= len(videos) {
		return &VideoView{Index: c.ProgressIndex, Total: len(videos), Done: true}, nil
	}
	return s.view(ctx, p, c, videos, c.ProgressIndex)
}

// Previous returns the video one step behind the cursor without moving it
func (s *ServiceImpl) Previous(ctx context.Context, project, coder string) (*VideoView, error) {
	p, c, err := s.resolve(ctx, s.repository, project, coder)
	if err != nil {
		return nil, err
	}
	videos, err := s.catalog.Load(ctx, p.Slug)
	if err != nil {
		return nil, err
	}

	if len(videos) == 0 {
		return &VideoView{Index: 0, Total: 0, Done: true}, nil
	}
	index := min(max(c.ProgressIndex-1, 0), len(videos)-1)
	return s.view(ctx, p, c, videos, index)
}

// At returns the video at an explicit index without moving the cursor
func (s *ServiceImpl) At(ctx context.Context, project, coder string, index int) (*VideoView, error) {
	p, c, err := s.resolve(ctx, s.repository, project, coder)
	if err != nil {
		return nil, err
	}
	videos, err := s.catalog.Load(ctx, p.Slug)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(videos) {
		return nil, apperrors.ValidationError("index", "index out of bounds").
			WithDetail("index", index).
			WithDetail("total", len(videos))
	}
	return s.view(ctx, p, c, videos, index)
}

// Get returns the stored response for one video, or a "new" response
func (s *ServiceImpl) Get(ctx context.Context, project, coder, videoID string) (*Response, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, apperrors.MissingFieldError("video_id")
	}
	p, c, err := s.resolve(ctx, s.repository, project, coder)
	if err != nil {
		return nil, err
	}
	return s.response(ctx, p.ID, c.ID, videoID)
}

// SaveDraft stores the response as a draft. The cursor does not move.
func (s *ServiceImpl) SaveDraft(ctx context.Context, req SaveRequest) error {
	if err := validateRequest(req, false); err != nil {
		return err
	}

	return s.repository.Transaction(ctx, func(repo Repository) error {
		p, c, err := s.resolve(ctx, repo, req.Project, req.Coder)
		if err != nil {
			return err
		}
		if err := repo.UpsertResult(ctx, s.buildResult(p, c, req, models.StatusDraft)); err != nil {
			return apperrors.DatabaseError("save draft", err)
		}
		s.metrics.RecordAnnotationWrite(models.StatusDraft, req.Excluded)
		return nil
	})
}

// Submit stores the response as submitted and advances the cursor by one,
// never past the end of the catalog.
func (s *ServiceImpl) Submit(ctx context.Context, req SaveRequest) error {
	if err := validateRequest(req, true); err != nil {
		return err
	}

	p, _, err := s.resolve(ctx, s.repository, req.Project, req.Coder)
	if err != nil {
		return err
	}
	videos, err := s.catalog.Load(ctx, p.Slug)
	if err != nil {
		return err
	}

	return s.repository.Transaction(ctx, func(repo Repository) error {
		p, c, err := s.resolve(ctx, repo, req.Project, req.Coder)
		if err != nil {
			return err
		}
		if err := repo.UpsertResult(ctx, s.buildResult(p, c, req, models.StatusSubmitted)); err != nil {
			return apperrors.DatabaseError("submit", err)
		}
		moved, err := repo.AdvanceProgress(ctx, c.ID, len(videos))
		if err != nil {
			return apperrors.DatabaseError("advance progress", err)
		}

		s.metrics.RecordAnnotationWrite(models.StatusSubmitted, req.Excluded)
		if moved {
			s.metrics.RecordCursorAdvance()
		}
		log.Debug().
			Str("project", p.Slug).
			Str("coder", c.Name).
			Str("video_id", req.VideoID).
			Bool("advanced", moved).
			Msg("annotation submitted")
		return nil
	})
}

// ListResults lists a project's annotations, optionally for one coder
func (s *ServiceImpl) ListResults(ctx context.Context, project, coder string) ([]models.Result, error) {
	if strings.TrimSpace(project) == "" {
		return nil, apperrors.MissingFieldError("project")
	}
	p, err := s.repository.GetProjectBySlug(ctx, project)
	if err != nil {
		return nil, notFoundOr(err, "project", project)
	}

	var coderID uint
	if coder != "" {
		c, err := s.repository.GetCoder(ctx, p.ID, coder)
		if err != nil {
			return nil, notFoundOr(err, "coder", coder)
		}
		coderID = c.ID
	}

	results, err := s.repository.ListResults(ctx, p.ID, coderID)
	if err != nil {
		return nil, apperrors.DatabaseError("list results", err)
	}
	return results, nil
}

func (s *ServiceImpl) resolve(ctx context.Context, repo Repository, project, coder string) (*models.Project, *models.Coder, error) {
	if strings.TrimSpace(project) == "" {
		return nil, nil, apperrors.MissingFieldError("project")
	}
	if strings.TrimSpace(coder) == "" {
		return nil, nil, apperrors.MissingFieldError("coder")
	}

	p, err := repo.GetProjectBySlug(ctx, project)
	if err != nil {
		return nil, nil, notFoundOr(err, "project", project)
	}
	c, err := repo.GetCoder(ctx, p.ID, coder)
	if err != nil {
		return nil, nil, notFoundOr(err, "coder", coder)
	}
	return p, c, nil
}

func (s *ServiceImpl) view(ctx context.Context, p *models.Project, c *models.Coder, videos []catalog.Video, index int) (*VideoView, error) {
	video := videos[index]
	resp, err := s.response(ctx, p.ID, c.ID, video.ID)
	if err != nil {
		return nil, err
	}
	return &VideoView{
		ID:       video.ID,
		Metadata: video.Metadata,
		Response: resp,
		Index:    index,
		Total:    len(videos),
	}, nil
}

func (s *ServiceImpl) response(ctx context.Context, projectID, coderID uint, videoID string) (*Response, error) {
	result, err := s.repository.GetResult(ctx, projectID, coderID, videoID)
	if err != nil {
		return nil, apperrors.DatabaseError("get result", err)
	}
	if result == nil {
		return newResponse(), nil
	}
	return responseFrom(result), nil
}

func (s *ServiceImpl) buildResult(p *models.Project, c *models.Coder, req SaveRequest, status string) *models.Result {
	categories := req.Categories
	if req.Excluded || categories == nil {
		categories = models.Selections{}
	}
	// Selections always encode
	encoded, _ := categories.Encode()

	now := s.now()
	return &models.Result{
		ProjectID:  p.ID,
		CoderID:    c.ID,
		VideoID:    req.VideoID,
		Categories: encoded,
		Notes:      req.Notes,
		Status:     status,
		Excluded:   req.Excluded,
		Timestamp:  now,
		UpdatedAt:  now,
	}
}

func validateRequest(req SaveRequest, submit bool) error {
	switch {
	case strings.TrimSpace(req.Project) == "":
		return apperrors.MissingFieldError("project")
	case strings.TrimSpace(req.Coder) == "":
		return apperrors.MissingFieldError("coder")
	case strings.TrimSpace(req.VideoID) == "":
		return apperrors.MissingFieldError("video_id")
	}
	if submit && !req.Excluded && len(req.Categories) == 0 {
		return apperrors.ValidationError("categories", "at least one category is required unless the video is excluded")
	}
	return nil
}

func notFoundOr(err error, resource, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(resource, id)
	}
	return apperrors.DatabaseError("get "+resource, err)
}
