package http

import (
	"github.com/gin-gonic/gin"

	"github.com/vinolens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		scan := v1.Group("/scan")
		{
			scan.POST("", handler.ScanTexts)
			scan.POST("/images", handler.ScanImages)
		}

		collection := v1.Group("/collection")
		{
			collection.POST("/match", handler.Match)
			collection.POST("/resolve", handler.ResolveInsertion)
			collection.POST("/cleanup", handler.CleanupCollection)
		}
	}

	return router
}
