// Command enrich transcribes and extracts entities from audio items that were
// uploaded but never processed, for example because the gateway was down when
// the workspace was processed. It works through the backlog in batches,
// oldest upload first.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres"
	itemrepo "github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/fieldreport-backend/internal/app"
	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/service/enrichment"
)

func main() {
	batchSize := flag.Int("batch", 50, "items claimed per batch")
	maxItems := flag.Int("max", 0, "stop after this many items (0 = whole backlog)")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
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

	gateways, err := app.NewGateways(ctx, cfg.AI, logger)
	if err != nil {
		logger.Error("init gateways", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer gateways.Close()

	items := itemrepo.New(pool)
	svc := enrichment.NewService(logger, items, files, gateways.Transcriber, gateways.Text, cfg.Pipeline.Concurrency)

	total, err := run(ctx, items, svc, *batchSize, *maxItems)
	if err != nil {
		logger.Error("enrichment failed",
			slog.String("error", err.Error()),
			slog.Int("processed", total),
		)
		os.Exit(1)
	}

	logger.Info("enrichment completed", slog.Int("processed", total))
}

func run(ctx context.Context, items *itemrepo.Repo, svc *enrichment.Service, batchSize, maxItems int) (int, error) {
	batchSize = max(batchSize, 1)
	total := 0
	for maxItems <= 0 || total < maxItems {
		limit := batchSize
		if maxItems > 0 {
			limit = min(limit, maxItems-total)
		}

		batch, err := items.ListUnprocessed(ctx, domain.ItemKindAudio, limit)
		if err != nil {
			return total, err
		}
		if len(batch) == 0 {
			break
		}

		n, err := svc.EnrichPending(ctx, batch)
		total += n
		if err != nil {
			return total, err
		}
		// n == 0: the whole batch was claimed elsewhere.
		if n == 0 || len(batch) < limit {
			break
		}
	}
	return total, nil
}
