package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/digipark/captionforge/internal/api"
	"github.com/digipark/captionforge/internal/config"
	"github.com/digipark/captionforge/internal/logger"
	"github.com/digipark/captionforge/internal/presets"
	"github.com/digipark/captionforge/internal/provider"
	"github.com/digipark/captionforge/internal/repository"
	"github.com/digipark/captionforge/internal/service"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLog := logger.NewDefault()
	logger.SetDefaultLogger(appLog)
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize database")
	}

	// Initialize repositories
	historyRepo := repository.NewHistoryRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)

	// Initialize provider clients; a backend without an API key stays
	// unregistered and requests routed to it fail cleanly.
	var clients []provider.Client
	if cfg.Providers.Gemini.APIKey != "" {
		clients = append(clients, provider.NewGemini(provider.GeminiConfig{
			APIKey:  cfg.Providers.Gemini.APIKey,
			BaseURL: cfg.Providers.Gemini.BaseURL,
		}))
	}
	if cfg.Providers.OpenAI.APIKey != "" {
		clients = append(clients, provider.NewOpenAICompatible(provider.OpenAIConfig{
			Name:     provider.BackendOpenAI,
			APIKey:   cfg.Providers.OpenAI.APIKey,
			BaseURL:  cfg.Providers.OpenAI.BaseURL,
			JSONMode: true,
		}))
	}
	if cfg.Providers.Grok.APIKey != "" {
		clients = append(clients, provider.NewOpenAICompatible(provider.OpenAIConfig{
			Name:    provider.BackendGrok,
			APIKey:  cfg.Providers.Grok.APIKey,
			BaseURL: cfg.Providers.Grok.BaseURL,
		}))
	}
	if len(clients) == 0 {
		appLog.Warn("No provider API keys configured; generation will fail")
	}
	registry := provider.NewRegistry(clients...)

	// Initialize services
	catalog := presets.Default()
	generationService := service.NewGenerationService(registry, catalog, service.GenerationConfig{
		DefaultModel:   cfg.Generation.DefaultModel,
		Temperature:    cfg.Generation.Temperature,
		Intensity:      cfg.Generation.Intensity,
		SampleKeywords: cfg.Generation.SampleKeywords,
	})
	batchService := service.NewBatchService(generationService, cfg.Generation.MaxBatchSize)
	historyService := service.NewHistoryService(historyRepo, cfg.Cleanup.RetentionDays)
	libraryService := service.NewLibraryService(libraryRepo)
	translateService := service.NewTranslateService(registry, cfg.Generation.DefaultModel)

	// Setup router
	router := api.SetupRouter(cfg, appLog, api.Services{
		Generation: generationService,
		Batch:      batchService,
		History:    historyService,
		Library:    libraryService,
		Translate:  translateService,
		Catalog:    catalog,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLog.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Fatal("Server forced to shutdown")
	}

	appLog.Info("Server exited")
}
