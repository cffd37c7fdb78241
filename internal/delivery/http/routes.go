package http

import (
	"github.com/gin-gonic/gin"
	"github.com/labelcheck/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		labels := v1.Group("/labels")
		{
			labels.POST("/verify", handler.VerifyLabel)
			labels.POST("/verify-image", handler.VerifyLabelImage)
			labels.POST("/validate", handler.ValidateSubmission)
		}

		submissions := v1.Group("/submissions")
		{
			submissions.GET("", handler.ListSubmissions)
			submissions.GET("/:id", handler.GetSubmission)
		}
	}

	return router
}
