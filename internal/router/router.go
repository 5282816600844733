package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"filinglens/internal/config"
	"filinglens/internal/handler"
	"filinglens/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	logger *zap.Logger,
	documentH *handler.DocumentHandler,
	analysisH *handler.AnalysisHandler,
	cacheH *handler.CacheHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.APIKey(cfg.Server.APIKey))

	// Document routes
	documents := v1.Group("/documents")
	documents.POST("/extract", documentH.Extract)
	documents.GET("/extract", documentH.Extract)

	// Filing analysis
	v1.POST("/filings/analyze", analysisH.Analyze)

	// Result cache
	cache := v1.Group("/cache")
	cache.GET("/entry", cacheH.GetEntry)
	cache.PUT("/entry", cacheH.PutEntry)
	cache.DELETE("", cacheH.Clear)
	cache.GET("/stats", cacheH.Stats)
	cache.GET("/export", cacheH.Export)

	return r
}
