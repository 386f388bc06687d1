package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.RecordAnnotationWrite("submitted", false)
	m.RecordAnnotationWrite("submitted", false)
	m.RecordAnnotationWrite("draft", true)
	m.RecordCursorAdvance()
	m.RecordMigration(3)
	m.RecordMigration(0)
	m.ObserveCatalogLoad("demo", 0.01, 12, nil)
	m.ObserveCatalogLoad("demo", 0.01, 0, errors.New("boom"))
	m.ObserveHTTPRequest("GET", "/health", "200", 0.002)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.annotationWritesTotal.WithLabelValues("submitted", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.annotationWritesTotal.WithLabelValues("draft", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cursorAdvancesTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.migrationRunsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.migrationChangedTotal))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.catalogVideos.WithLabelValues("demo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.catalogLoadErrors.WithLabelValues("demo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/health", "200")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordAnnotationWrite("draft", false)
		m.RecordCursorAdvance()
		m.RecordMigration(1)
		m.ObserveCatalogLoad("demo", 1, 1, nil)
		m.ObserveHTTPRequest("GET", "/", "200", 1)
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	m.RecordCursorAdvance()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "vidcode_cursor_advances_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
