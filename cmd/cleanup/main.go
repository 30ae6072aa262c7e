// Command cleanup deletes detection previews older than the configured
// retention, both the stored preview image and its row. It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres"
	itemrepo "github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres/preview"
	"github.com/heartmarshall/fieldreport-backend/internal/app"
	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/service/detection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	files, _, err := app.NewStorage(ctx, cfg.Storage)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// No detector: cleanup never calls the vision gateway.
	svc := detection.NewService(logger, itemrepo.New(pool), preview.New(pool), files, nil)

	removed, err := svc.CleanupStale(ctx, cfg.Detection.PreviewRetention)
	if err != nil {
		logger.Error("preview cleanup failed",
			slog.String("error", err.Error()),
			slog.Int("removed", removed),
		)
		os.Exit(1)
	}

	logger.Info("preview cleanup completed",
		slog.Int("removed", removed),
		slog.Duration("retention", cfg.Detection.PreviewRetention),
	)
}
