package http

import (
	"github.com/cartfinder/backend/config"
	"github.com/cartfinder/backend/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, m *metrics.Metrics) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	if m != nil {
		router.Use(MetricsMiddleware(m))
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
	}

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		search := v1.Group("/search")
		{
			search.POST("", handler.SearchStores)
			search.POST("/upload", handler.SearchStoresUpload)
			search.GET("/latest", handler.LatestResult)
		}
	}

	return router
}
