package projects

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api/types"
)

// RegisterRoutes registers project management routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/projects", CreateProject(deps))
	router.GET("/projects", ListProjects(deps))

	projectGroup := router.Group("/project/:slug")
	{
		projectGroup.GET("", GetProject(deps))
		projectGroup.PUT("", UpdateProject(deps))
		projectGroup.DELETE("", DeleteProject(deps))

		projectGroup.POST("/coders", AddCoder(deps))
		projectGroup.DELETE("/coders/:name", RemoveCoder(deps))

		projectGroup.POST("/files", UploadFile(deps))
		projectGroup.GET("/files", ListFiles(deps))
		projectGroup.DELETE("/files/:id", DeleteFile(deps))

		projectGroup.GET("/results", ListResults(deps))
	}
}
