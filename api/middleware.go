package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api/types"
	"github.com/killallgit/vidcode-api/internal/metrics"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// CORS allows the configured origins. A "*" entry allows every origin.
func CORS(origins []string) gin.HandlerFunc {
	allowAll := len(origins) == 0
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "":
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func RequestSizeLimit() gin.HandlerFunc {
	return RequestSizeLimitWithSize(1024 * 1024)
}

// RequestSizeLimitWithSize caps JSON bodies. Multipart uploads are capped
// separately by the upload handler.
func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isMultipart(c.Request) {
			c.Next()
			return
		}
		if c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// ClientLimiters keeps one token bucket per client IP. Idle buckets expire
// after the configured TTL.
type ClientLimiters struct {
	store *cache.Cache
	rps   rate.Limit
	burst int
	ttl   time.Duration
}

// NewClientLimiters creates a limiter store allowing rps requests per second
// with the given burst for every client
func NewClientLimiters(rps, burst int, ttl time.Duration) *ClientLimiters {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ClientLimiters{
		store: cache.New(ttl, ttl/2),
		rps:   rate.Limit(rps),
		burst: burst,
		ttl:   ttl,
	}
}

// Allow reports whether client may make a request now
func (l *ClientLimiters) Allow(client string) bool {
	limiter, ok := l.store.Get(client)
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
	}
	// Re-set on every hit so active clients never expire
	l.store.Set(client, limiter, l.ttl)
	return limiter.(*rate.Limiter).Allow()
}

// Len returns the number of tracked clients
func (l *ClientLimiters) Len() int {
	return l.store.ItemCount()
}

func PerClientRateLimit(limiters *ClientLimiters) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiters.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{
				Status:  types.StatusError,
				Error:   "RATE_LIMITED",
				Message: "Rate limit exceeded. Please slow down your requests.",
			})
			return
		}
		c.Next()
	}
}

// RequestLogger writes one zerolog line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// RequestMetrics records request counts and latency by route template
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
