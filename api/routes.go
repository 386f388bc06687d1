package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/vidcode-api/api/coding"
	"github.com/killallgit/vidcode-api/api/export"
	"github.com/killallgit/vidcode-api/api/health"
	"github.com/killallgit/vidcode-api/api/projects"
	"github.com/killallgit/vidcode-api/api/types"
	"github.com/killallgit/vidcode-api/api/version"
	_ "github.com/killallgit/vidcode-api/docs/swagger"
	"github.com/killallgit/vidcode-api/internal/metrics"
	"github.com/killallgit/vidcode-api/internal/services/catalog"
	codingService "github.com/killallgit/vidcode-api/internal/services/coding"
	exportService "github.com/killallgit/vidcode-api/internal/services/export"
	projectsService "github.com/killallgit/vidcode-api/internal/services/projects"
	"github.com/killallgit/vidcode-api/internal/services/storage"
)

// RegisterRoutes registers all routes. A nil limiters disables rate limiting.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limiters *ClientLimiters) error {
	if deps == nil || deps.Config == nil {
		return fmt.Errorf("config is nil")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	if deps.Config.Monitoring.Enabled && deps.Metrics != nil {
		path := deps.Config.Monitoring.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	apiGroup := engine.Group("/api")
	if limiters != nil {
		apiGroup.Use(PerClientRateLimit(limiters))
	}

	projects.RegisterRoutes(apiGroup, deps)
	coding.RegisterRoutes(apiGroup, deps)
	export.RegisterRoutes(apiGroup, deps)

	return nil
}

// initializeServices builds any service not already set from the database,
// storage and metrics settings
func initializeServices(deps *types.Dependencies) error {
	if deps.DB == nil || deps.DB.DB == nil {
		return fmt.Errorf("database is not configured")
	}

	if deps.Metrics == nil && deps.Config.Monitoring.Enabled {
		m, err := metrics.New()
		if err != nil {
			return err
		}
		deps.Metrics = m
	}

	store, err := storage.NewFilesystemStorage(deps.Config.Storage.UploadDir)
	if err != nil {
		return err
	}
	loader := catalog.NewLoader(store, deps.Metrics)

	if deps.CodingService == nil {
		deps.CodingService = codingService.NewService(codingService.NewRepository(deps.DB.DB), loader, deps.Metrics)
	}
	if deps.ProjectService == nil {
		deps.ProjectService = projectsService.NewService(projectsService.NewRepository(deps.DB.DB), store, loader, deps.Metrics)
	}
	if deps.ExportService == nil {
		deps.ExportService = exportService.NewService(codingService.NewRepository(deps.DB.DB))
	}
	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Error:   "NOT_FOUND",
			Message: "The requested endpoint was not found",
			Details: map[string]any{"path": c.Request.URL.Path},
		})
	}
}
