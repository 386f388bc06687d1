// Package catalog reads the ordered video list of a project from the
// tabular files in its storage area.
package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/killallgit/vidcode-api/internal/metrics"
	apperrors "github.com/killallgit/vidcode-api/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/singleflight"
)

// Identifier columns, in lookup order
var idColumns = []string{"id", "video_id"}

// Video is one catalog entry. Metadata carries every column of the source row.
type Video struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
}

// DirResolver maps a project slug to its storage area
type DirResolver interface {
	Dir(slug string) string
}

// Loader builds catalogs on demand. Nothing is cached between calls;
// concurrent loads of one project share a single read.
type Loader struct {
	dirs    DirResolver
	metrics *metrics.Metrics
	group   singleflight.Group
}

// NewLoader creates a catalog loader. m may be nil.
func NewLoader(dirs DirResolver, m *metrics.Metrics) *Loader {
	return &Loader{dirs: dirs, metrics: m}
}

// Load returns the project's videos in catalog order. The returned slice is
// shared with concurrent callers and must not be modified.
func (l *Loader) Load(ctx context.Context, slug string) ([]Video, error) {
	ch := l.group.DoChan(slug, func() (any, error) {
		start := time.Now()
		videos, err := ReadDir(l.dirs.Dir(slug))
		l.metrics.ObserveCatalogLoad(slug, time.Since(start).Seconds(), len(videos), err)
		return videos, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, apperrors.StorageError("read catalog", res.Err).WithDetail("project", slug)
		}
		return res.Val.([]Video), nil
	}
}

// ReadDir reads every source file in dir in name order. A missing directory
// is an empty catalog. The first occurrence of an id wins.
func ReadDir(dir string) ([]Video, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Video{}, nil
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	videos := []Video{}
	seen := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		fileVideos, err := ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		added := 0
		for _, v := range fileVideos {
			if _, dup := seen[v.ID]; dup {
				continue
			}
			seen[v.ID] = struct{}{}
			videos = append(videos, v)
			added++
		}
		log.Debug().Str("file", entry.Name()).Int("rows", len(fileVideos)).Int("added", added).Msg("catalog source read")
	}
	return videos, nil
}

// ReadFile reads the videos of one source file, in row order
func ReadFile(path string) ([]Video, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	videos, err := rowsToVideos(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return videos, nil
}

func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported catalog file: %s", filepath.Base(path))
	}
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file %s: %w", filepath.Base(path), err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// rowsToVideos treats the first row as the header
func rowsToVideos(rows [][]string) ([]Video, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		headers[i] = strings.TrimSpace(h)
	}

	idCol := findIDColumn(headers)
	if idCol < 0 {
		return nil, fmt.Errorf("no %s column", strings.Join(idColumns, " or "))
	}

	videos := make([]Video, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if idCol >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[idCol])
		if id == "" {
			continue
		}

		meta := make(map[string]string, len(headers))
		for j, h := range headers {
			if h == "" {
				continue
			}
			if _, exists := meta[h]; exists {
				continue
			}
			if j < len(row) {
				meta[h] = strings.TrimSpace(row[j])
			} else {
				meta[h] = ""
			}
		}
		videos = append(videos, Video{ID: id, Metadata: meta})
	}
	return videos, nil
}

func findIDColumn(headers []string) int {
	for _, name := range idColumns {
		for i, h := range headers {
			if strings.EqualFold(h, name) {
				return i
			}
		}
	}
	return -1
}
