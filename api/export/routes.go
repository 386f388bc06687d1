package export

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api/types"
)

// RegisterRoutes registers download routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/download-codebook", DownloadCodebook(deps))
	router.GET("/download-results", DownloadResults(deps))
}
