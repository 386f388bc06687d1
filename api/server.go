package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api/types"
	"github.com/killallgit/vidcode-api/internal/database"
	"github.com/killallgit/vidcode-api/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	cfg        *config.Config
	limiters   *ClientLimiters

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server from the server and rate limiting settings
func NewServer(cfg *config.Config) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	maxHeaderBytes := cfg.Server.MaxHeaderBytes
	if maxHeaderBytes <= 0 {
		maxHeaderBytes = 1 << 20 // 1 MB
	}

	return &Server{
		engine:   engine,
		cfg:      cfg,
		limiters: NewClientLimiters(cfg.RateLimiting.RPS, cfg.RateLimiting.Burst, cfg.RateLimiting.TTL),
		httpServer: &http.Server{
			Addr:           net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:        engine,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.ReadTimeout,
			MaxHeaderBytes: maxHeaderBytes,
		},
	}
}

// SetDatabase sets the database connection
func (s *Server) SetDatabase(db *database.DB) {
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	s.dependencies.DB = db
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Dependencies returns the handler dependencies, including services built by Initialize
func (s *Server) Dependencies() *types.Dependencies {
	return s.dependencies
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Initialize sets up middleware, services and routes
func (s *Server) Initialize() error {
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	if s.dependencies.Config == nil {
		s.dependencies.Config = s.cfg
	}

	if err := initializeServices(s.dependencies); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	s.setupMiddleware()

	var limiters *ClientLimiters
	if s.cfg.RateLimiting.Enabled {
		limiters = s.limiters
	}
	return RegisterRoutes(s.engine, s.dependencies, limiters)
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(RequestLogger())
	if s.cfg.Monitoring.Enabled {
		s.engine.Use(RequestMetrics(s.dependencies.Metrics))
	}
	s.engine.Use(CORS(s.cfg.Security.CORSOrigins))

	maxBody := s.cfg.Server.MaxBodyBytes
	if maxBody <= 0 {
		s.engine.Use(RequestSizeLimit())
		return
	}
	s.engine.Use(RequestSizeLimitWithSize(maxBody))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
