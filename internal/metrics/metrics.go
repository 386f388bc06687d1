// Package metrics provides Prometheus metrics for the coding API.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the service exports. All recording methods
// are safe on a nil receiver so components can run without metrics.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	annotationWritesTotal *prometheus.CounterVec
	cursorAdvancesTotal   prometheus.Counter

	migrationRunsTotal    prometheus.Counter
	migrationChangedTotal prometheus.Counter

	catalogLoadDuration *prometheus.HistogramVec
	catalogVideos       *prometheus.GaugeVec
	catalogLoadErrors   *prometheus.CounterVec
}

// New creates the metrics and registers them, plus the Go runtime and
// process collectors, on a fresh registry.
func New() (*Metrics, error) {
	registry := prometheus.NewRegistry()
	m := &Metrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("failed to register process collector: %w", err)
	}
	return m, nil
}

func (m *Metrics) initMetrics() {
	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidcode_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidcode_http_request_duration_seconds",
			Help:    "Time taken for HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	m.annotationWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidcode_annotation_writes_total",
			Help: "Annotation upserts partitioned by resulting status",
		},
		[]string{"status", "excluded"},
	)
	m.cursorAdvancesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vidcode_cursor_advances_total",
			Help: "Progress cursor advances caused by submits",
		},
	)

	m.migrationRunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vidcode_codebook_migrations_total",
			Help: "Codebook updates that ran the migration pass",
		},
	)
	m.migrationChangedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vidcode_codebook_migrated_results_total",
			Help: "Annotations rewritten by codebook migrations",
		},
	)

	m.catalogLoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidcode_catalog_load_duration_seconds",
			Help:    "Time taken to read a project's video catalog",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"project"},
	)
	m.catalogVideos = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vidcode_catalog_videos",
			Help: "Number of videos in the most recently loaded catalog",
		},
		[]string{"project"},
	)
	m.catalogLoadErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidcode_catalog_load_errors_total",
			Help: "Catalog loads that failed",
		},
		[]string{"project"},
	)
}

// Describe implements prometheus.Collector
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.httpRequestsTotal.Describe(ch)
	m.httpRequestDuration.Describe(ch)
	m.annotationWritesTotal.Describe(ch)
	ch <- m.cursorAdvancesTotal.Desc()
	ch <- m.migrationRunsTotal.Desc()
	ch <- m.migrationChangedTotal.Desc()
	m.catalogLoadDuration.Describe(ch)
	m.catalogVideos.Describe(ch)
	m.catalogLoadErrors.Describe(ch)
}

// Collect implements prometheus.Collector
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.httpRequestsTotal.Collect(ch)
	m.httpRequestDuration.Collect(ch)
	m.annotationWritesTotal.Collect(ch)
	ch <- m.cursorAdvancesTotal
	ch <- m.migrationRunsTotal
	ch <- m.migrationChangedTotal
	m.catalogLoadDuration.Collect(ch)
	m.catalogVideos.Collect(ch)
	m.catalogLoadErrors.Collect(ch)
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records one served request
func (m *Metrics) ObserveHTTPRequest(method, path, statusCode string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// RecordAnnotationWrite counts an annotation upsert
func (m *Metrics) RecordAnnotationWrite(status string, excluded bool) {
	if m == nil {
		return
	}
	m.annotationWritesTotal.WithLabelValues(status, fmt.Sprintf("%t", excluded)).Inc()
}

// RecordCursorAdvance counts a cursor step
func (m *Metrics) RecordCursorAdvance() {
	if m == nil {
		return
	}
	m.cursorAdvancesTotal.Inc()
}

// RecordMigration counts a migration pass and the annotations it changed
func (m *Metrics) RecordMigration(changed int) {
	if m == nil {
		return
	}
	m.migrationRunsTotal.Inc()
	m.migrationChangedTotal.Add(float64(changed))
}

// ObserveCatalogLoad records the outcome of a catalog read
func (m *Metrics) ObserveCatalogLoad(project string, seconds float64, videos int, err error) {
	if m == nil {
		return
	}
	m.catalogLoadDuration.WithLabelValues(project).Observe(seconds)
	if err != nil {
		m.catalogLoadErrors.WithLabelValues(project).Inc()
		return
	}
	m.catalogVideos.WithLabelValues(project).Set(float64(videos))
}
