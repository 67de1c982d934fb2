package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Project endpoints
	projectGroup := router.Group("/projects")
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("/parse", ParseProject)
		projectGroup.PATCH("/:id", UpdateProject)
		projectGroup.POST("/:id/refresh-travel", RefreshTravel)
		projectGroup.DELETE("/:id", DeleteProject)
	}

	// Todo endpoints
	todoGroup := router.Group("/todos")
	{
		todoGroup.GET("", ListTodos)
		todoGroup.POST("", CreateTodo)
		todoGroup.PATCH("/:id", UpdateTodo)
		todoGroup.DELETE("/:id", DeleteTodo)
	}

	// Settings endpoints
	settingGroup := router.Group("/settings")
	{
		settingGroup.GET("/:key", GetSetting)
		settingGroup.PUT("/:key", UpdateSetting)
	}

	// OneDrive endpoints: authenticated provisioning plus the public,
	// share-link-only file gateway
	driveGroup := router.Group("/onedrive")
	{
		driveGroup.POST("/folder-url", GetFolderURL)
		driveGroup.GET("/callback", DriveCallback)
		driveGroup.GET("/public-files/:projectId", GetPublicFiles)
		driveGroup.POST("/public-thumbnails/:projectId", GetPublicThumbnails)
		driveGroup.GET("/public-file-content/:projectId/:fileId", GetPublicFileContent)
	}
}
