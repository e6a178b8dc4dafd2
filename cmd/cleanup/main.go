// Command cleanup removes generation history older than the retention
// window. It is meant to be run from cron or a one-shot container; the API
// server exposes the same operation at /api/v1/maintenance/cleanup for
// schedulers that prefer HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/digipark/captionforge/internal/config"
	"github.com/digipark/captionforge/internal/logger"
	"github.com/digipark/captionforge/internal/repository"
	"github.com/digipark/captionforge/internal/service"
)

func main() {
	var (
		configPath    = flag.String("config", os.Getenv("CONFIG_PATH"), "path to config file")
		retentionDays = flag.Int("retention-days", 0, "override configured retention window")
		timeout       = flag.Duration("timeout", 2*time.Minute, "cleanup timeout")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog := logger.NewDefault()
	logger.SetDefaultLogger(appLog)
	defer logger.Sync()

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize database")
	}

	days := cfg.Cleanup.RetentionDays
	if *retentionDays > 0 {
		days = *retentionDays
	}

	historyService := service.NewHistoryService(repository.NewHistoryRepository(db), days)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	removed, err := historyService.Cleanup(ctx)
	if err != nil {
		appLog.WithError(err).Fatal("Cleanup failed")
	}

	appLog.WithField("removed", removed).Info("Cleanup finished")
}
