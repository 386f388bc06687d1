package coding

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api/types"
)

// RegisterRoutes registers the coding workflow routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/next-video", NextVideo(deps))
	router.GET("/previous-video", PreviousVideo(deps))
	router.GET("/video-at-index", VideoAtIndex(deps))
	router.POST("/save-progress", SaveProgress(deps))
	router.POST("/submit", Submit(deps))
}
