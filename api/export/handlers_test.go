package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api/export"
	"github.com/killallgit/vidcode-api/api/types"
	"github.com/killallgit/vidcode-api/internal/database"
	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/killallgit/vidcode-api/internal/services/catalog"
	codingService "github.com/killallgit/vidcode-api/internal/services/coding"
	exportService "github.com/killallgit/vidcode-api/internal/services/export"
	projectsService "github.com/killallgit/vidcode-api/internal/services/projects"
	"github.com/killallgit/vidcode-api/internal/services/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func setupRouter(t *testing.T) (*gin.Engine, *types.Dependencies) {
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateAll())

	store, err := storage.NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)
	loader := catalog.NewLoader(store, nil)
	codingRepo := codingService.NewRepository(db.DB)

	deps := &types.Dependencies{
		DB:             db,
		ProjectService: projectsService.NewService(projectsService.NewRepository(db.DB), store, loader, nil),
		CodingService:  codingService.NewService(codingRepo, loader, nil),
		ExportService:  exportService.NewService(codingRepo),
	}

	ctx := context.Background()
	_, err = deps.ProjectService.CreateProject(ctx, projectsService.CreateRequest{
		Slug:     "demo",
		Name:     "Demo",
		Codebook: models.Codebook{{Category: "Tone", Tags: []models.Tag{{Name: "Casual"}, {Name: "Serious"}}}},
		Coders:   []string{"ann"},
	})
	require.NoError(t, err)

	router := gin.New()
	export.RegisterRoutes(router.Group("/api"), deps)
	return router, deps
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestDownloadCodebook(t *testing.T) {
	router, _ := setupRouter(t)

	tests := []struct {
		name        string
		query       string
		filename    string
		contentType string
	}{
		{"default is json", "project=demo", "demo_codebook.json", export.ContentTypeJSON},
		{"json", "project=demo&format=json", "demo_codebook.json", export.ContentTypeJSON},
		{"yaml", "project=demo&format=YAML", "demo_codebook.yaml", export.ContentTypeYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, "/api/download-codebook?"+tt.query)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, `attachment; filename="`+tt.filename+`"`, w.Header().Get("Content-Disposition"))
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))

			var cb []map[string]any
			if tt.contentType == export.ContentTypeJSON {
				assert.JSONEq(t, `[{"category":"Tone","tags":["Casual","Serious"]}]`, w.Body.String())
				return
			}
			require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &cb))
			require.Len(t, cb, 1)
			assert.Equal(t, "Tone", cb[0]["category"])
		})
	}
}

func TestDownloadCodebook_Errors(t *testing.T) {
	router, _ := setupRouter(t)

	assert.Equal(t, http.StatusBadRequest, get(router, "/api/download-codebook").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/download-codebook?project=demo&format=xml").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/download-codebook?project=missing").Code)
}

func TestDownloadResults(t *testing.T) {
	router, deps := setupRouter(t)
	ctx := context.Background()

	_, err := deps.ProjectService.UploadFile(ctx, "demo", "videos.csv", strings.NewReader("id\nv1\nv2\n"))
	require.NoError(t, err)
	require.NoError(t, deps.CodingService.Submit(ctx, codingService.SaveRequest{
		Project: "demo", Coder: "ann", VideoID: "v1",
		Categories: models.Selections{{Category: "Tone", Tags: []string{"Casual", "Serious"}}},
	}))
	require.NoError(t, deps.CodingService.SaveDraft(ctx, codingService.SaveRequest{
		Project: "demo", Coder: "ann", VideoID: "v2", Excluded: true,
	}))

	t.Run("csv", func(t *testing.T) {
		w := get(router, "/api/download-results?project=demo")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, `attachment; filename="demo_results.csv"`, w.Header().Get("Content-Disposition"))

		records, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, exportService.ResultsHeader, records[0])
		assert.Equal(t, []string{"ann", "v1", "submitted"}, records[1][:3])
		assert.Equal(t, "Tone: Casual, Serious", records[1][5])
		assert.Equal(t, []string{"ann", "v2", "excluded"}, records[2][:3])
		assert.Equal(t, "", records[2][5])
	})

	t.Run("xlsx", func(t *testing.T) {
		w := get(router, "/api/download-results?project=demo&format=xlsx")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, export.ContentTypeXLSX, w.Header().Get("Content-Type"))

		f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Results")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "v1", rows[1][1])
	})

	t.Run("unknown format", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get(router, "/api/download-results?project=demo&format=pdf").Code)
	})
}
