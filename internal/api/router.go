package api

import (
	"github.com/digipark/captionforge/internal/api/handler"
	"github.com/digipark/captionforge/internal/api/middleware"
	"github.com/digipark/captionforge/internal/config"
	"github.com/digipark/captionforge/internal/logger"
	"github.com/digipark/captionforge/internal/presets"
	"github.com/digipark/captionforge/internal/service"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Generation *service.GenerationService
	Batch      *service.BatchService
	History    *service.HistoryService
	Library    *service.LibraryService
	Translate  *service.TranslateService
	Catalog    *presets.Catalog
}

// SetupRouter configures the Gin router with all routes.
func SetupRouter(cfg *config.Config, log *logger.Logger, svcs Services) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))
	r.Use(middleware.Identity())

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	generateHandler := handler.NewGenerateHandler(svcs.Generation, svcs.Batch, svcs.History, svcs.Library)
	historyHandler := handler.NewHistoryHandler(svcs.History)
	libraryHandler := handler.NewLibraryHandler(svcs.Library, svcs.Catalog)
	translateHandler := handler.NewTranslateHandler(svcs.Translate)
	maintenanceHandler := handler.NewMaintenanceHandler(svcs.History)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Generation
		v1.POST("/generate", generateHandler.Generate)
		v1.POST("/generate/batch", generateHandler.GenerateBatch)

		// Presets
		v1.GET("/presets", libraryHandler.Presets)

		// History
		v1.GET("/history", historyHandler.List)
		v1.DELETE("/history/:id", historyHandler.Delete)

		// Library
		v1.GET("/library/keywords", libraryHandler.ListKeywords)
		v1.POST("/library/keywords", libraryHandler.AddKeywords)
		v1.DELETE("/library/keywords/:id", libraryHandler.DeleteKeyword)
		v1.GET("/library/variable-config", libraryHandler.GetVariableConfig)
		v1.PUT("/library/variable-config", libraryHandler.SaveVariableConfig)

		// Helpers
		v1.POST("/translate", translateHandler.Translate)

		// Maintenance (cron only)
		maintenance := v1.Group("/maintenance", middleware.SharedSecret(cfg.Cleanup.Secret))
		maintenance.POST("/cleanup", maintenanceHandler.Cleanup)
	}

	return r
}
