// Package export renders a project's codebook and annotations as
// downloadable documents.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/killallgit/vidcode-api/internal/models"
	apperrors "github.com/killallgit/vidcode-api/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// ResultsHeader is the column layout of results exports
var ResultsHeader = []string{"coder", "video_id", "status", "timestamp", "notes", "categories"}

const resultsSheet = "Results"

// Store is the read access export needs
type Store interface {
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	ListResults(ctx context.Context, projectID uint, coderID uint) ([]models.Result, error)
}

// Service renders exports
type Service interface {
	CodebookJSON(ctx context.Context, slug string) ([]byte, error)
	CodebookYAML(ctx context.Context, slug string) ([]byte, error)
	ResultsCSV(ctx context.Context, slug string) ([]byte, error)
	ResultsXLSX(ctx context.Context, slug string) ([]byte, error)
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	store Store
}

// NewService creates a new export service
func NewService(store Store) Service {
	return &ServiceImpl{store: store}
}

// CodebookJSON renders the codebook with two-space indentation
func (s *ServiceImpl) CodebookJSON(ctx context.Context, slug string) ([]byte, error) {
	cb, err := s.codebook(ctx, slug)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(cb, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encoding codebook")
	}
	return data, nil
}

// CodebookYAML renders the codebook as YAML
func (s *ServiceImpl) CodebookYAML(ctx context.Context, slug string) ([]byte, error) {
	cb, err := s.codebook(ctx, slug)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cb); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encoding codebook")
	}
	if err := enc.Close(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encoding codebook")
	}
	return buf.Bytes(), nil
}

// ResultsCSV renders one row per annotation, ordered by id
func (s *ServiceImpl) ResultsCSV(ctx context.Context, slug string) ([]byte, error) {
	rows, err := s.rows(ctx, slug)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ResultsHeader); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "writing csv")
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "writing csv")
	}
	return buf.Bytes(), nil
}

// ResultsXLSX renders the same rows as ResultsCSV into a workbook
func (s *ServiceImpl) ResultsXLSX(ctx context.Context, slug string) ([]byte, error) {
	rows, err := s.rows(ctx, slug)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "creating workbook")
	}

	write := func(line int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(resultsSheet, cell, &row)
	}

	if err := write(1, ResultsHeader); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "writing workbook")
	}
	for i, values := range rows {
		if err := write(i+2, values); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "writing workbook")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "writing workbook")
	}
	return buf.Bytes(), nil
}

func (s *ServiceImpl) project(ctx context.Context, slug string) (*models.Project, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, apperrors.MissingFieldError("project")
	}
	project, err := s.store.GetProjectBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("project", slug)
		}
		return nil, apperrors.DatabaseError("get project", err)
	}
	return project, nil
}

func (s *ServiceImpl) codebook(ctx context.Context, slug string) (models.Codebook, error) {
	project, err := s.project(ctx, slug)
	if err != nil {
		return nil, err
	}
	return project.CodebookValue(), nil
}

func (s *ServiceImpl) rows(ctx context.Context, slug string) ([][]string, error) {
	project, err := s.project(ctx, slug)
	if err != nil {
		return nil, err
	}
	results, err := s.store.ListResults(ctx, project.ID, 0)
	if err != nil {
		return nil, apperrors.DatabaseError("list results", err)
	}

	rows := make([][]string, 0, len(results))
	for i := range results {
		rows = append(rows, Row(&results[i]))
	}
	return rows, nil
}

// Row renders one annotation in ResultsHeader order. The coder must be loaded.
func Row(r *models.Result) []string {
	timestamp := ""
	if !r.Timestamp.IsZero() {
		timestamp = r.Timestamp.UTC().Format(time.RFC3339)
	}
	return []string{
		r.Coder.Name,
		r.VideoID,
		r.ExportStatus(),
		timestamp,
		r.Notes,
		FormatCategories(r),
	}
}

// FormatCategories renders "Cat: t1, t2; Cat2: t3". Excluded annotations
// and categories without tags render nothing; unparseable data is passed
// through as stored.
func FormatCategories(r *models.Result) string {
	if r.Excluded || strings.TrimSpace(r.Categories) == "" {
		return ""
	}
	sel, err := models.ParseSelections(r.Categories)
	if err != nil {
		return r.Categories
	}

	parts := make([]string, 0, len(sel))
	for _, c := range sel {
		if len(c.Tags) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", c.Category, strings.Join(c.Tags, ", ")))
	}
	return strings.Join(parts, "; ")
}
