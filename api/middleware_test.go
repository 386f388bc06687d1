package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		expectedStatus int
		expectedAllow  string
	}{
		{
			name:           "preflight request",
			origins:        []string{"*"},
			method:         http.MethodOptions,
			origin:         "https://example.com",
			expectedStatus: http.StatusNoContent,
			expectedAllow:  "*",
		},
		{
			name:           "wildcard GET",
			origins:        []string{"*"},
			method:         http.MethodGet,
			origin:         "https://example.com",
			expectedStatus: http.StatusOK,
			expectedAllow:  "*",
		},
		{
			name:           "listed origin is echoed",
			origins:        []string{"https://coding.example.com"},
			method:         http.MethodGet,
			origin:         "https://coding.example.com",
			expectedStatus: http.StatusOK,
			expectedAllow:  "https://coding.example.com",
		},
		{
			name:           "unlisted origin gets no header",
			origins:        []string{"https://coding.example.com"},
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusOK,
			expectedAllow:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.Any("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestSizeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestSizeLimitWithSize(10))
	router.POST("/test", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too large")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name           string
		body           string
		contentType    string
		expectedStatus int
	}{
		{"small body", "tiny", "application/json", http.StatusOK},
		{"large body", strings.Repeat("x", 100), "application/json", http.StatusRequestEntityTooLarge},
		{"multipart is not capped here", strings.Repeat("x", 100), "multipart/form-data; boundary=x", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestClientLimiters(t *testing.T) {
	limiters := NewClientLimiters(1, 2, time.Minute)

	assert.True(t, limiters.Allow("10.0.0.1"))
	assert.True(t, limiters.Allow("10.0.0.1"))
	assert.False(t, limiters.Allow("10.0.0.1"), "burst exhausted")

	assert.True(t, limiters.Allow("10.0.0.2"), "clients are limited independently")
	assert.Equal(t, 2, limiters.Len())
}

func TestClientLimiters_Expire(t *testing.T) {
	limiters := NewClientLimiters(1, 1, 20*time.Millisecond)
	require.True(t, limiters.Allow("10.0.0.1"))
	require.False(t, limiters.Allow("10.0.0.1"))

	time.Sleep(40 * time.Millisecond)
	assert.True(t, limiters.Allow("10.0.0.1"), "expired bucket starts full")
}

func TestPerClientRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PerClientRateLimit(NewClientLimiters(1, 1, time.Minute)))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send().Code)
	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = original }()

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"path":"/missing"`)
	assert.Contains(t, out, `"status":404`)
}

func TestRequestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m, err := metrics.New()
	require.NoError(t, err)

	router := gin.New()
	router.Use(RequestMetrics(m))
	router.GET("/api/project/:slug", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, target := range []string{"/api/project/a", "/api/project/b", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.Contains(t, body, `vidcode_http_requests_total{method="GET",path="/api/project/:slug",status_code="200"} 2`)
	assert.Contains(t, body, `vidcode_http_requests_total{method="GET",path="unmatched",status_code="404"} 1`)
}
