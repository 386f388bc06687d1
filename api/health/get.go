package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service and database health. Returns 503 when the database is unreachable.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]any "Service healthy"
// @Failure      503 {object} map[string]any "Database unhealthy"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := getDatabaseStatus(deps)

		status, code := "ok", http.StatusOK
		if dbStatus["status"] == "unhealthy" {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  dbStatus,
		})
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
