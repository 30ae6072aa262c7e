package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/fieldreport-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreport-backend/internal/config"
)

// Run is the server entry point. It loads configuration, connects to the
// database and optional Redis, builds the AI gateways and serves HTTP until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		n, err := postgres.MigratePool(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", n))
	}

	files, storagePing, err := NewStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	coord, err := newCoordination(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer coord.stop()

	gateways, err := NewGateways(ctx, cfg.AI, logger)
	if err != nil {
		return fmt.Errorf("gateways: %w", err)
	}
	defer gateways.Close() //nolint:errcheck

	extra := make(map[string]Pinger)
	if coord.redis != nil {
		extra["redis"] = redisPinger{coord.redis}
	}
	if storagePing != nil {
		extra["storage"] = storagePing
	}

	handler := NewHandler(Deps{
		Config:   cfg,
		Logger:   logger,
		Pool:     pool,
		Files:    files,
		Gateways: gateways,
		Locks:    coord.locks,
		Limiter:  coord.limiter,
		Version:  Version,
		Health:   extra,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
