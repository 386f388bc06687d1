package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	buildinfo "github.com/killallgit/vidcode-api/pkg/version"
)

// Get handles version requests
// @Summary      Service version
// @Description  Returns the service name and build version
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string "Version information"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        buildinfo.Name,
			"version":     buildinfo.Version,
			"commit":      buildinfo.GitCommit,
			"description": "API for collaborative video content coding",
			"status":      "running",
		})
	}
}
