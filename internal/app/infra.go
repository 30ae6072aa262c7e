package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/fieldreport-backend/internal/adapter/lock"
	"github.com/heartmarshall/fieldreport-backend/internal/adapter/ratelimit"
	"github.com/heartmarshall/fieldreport-backend/internal/adapter/storage"
	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/transport/middleware"
)

// FileStore is the storage surface shared by the services.
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Pinger is a dependency probed by the health endpoints.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewStorage opens the configured backend. The returned Pinger is nil for
// the local backend.
func NewStorage(ctx context.Context, cfg config.StorageConfig) (FileStore, Pinger, error) {
	switch cfg.Backend {
	case config.StorageMinio:
		m, err := storage.NewMinioStore(ctx, cfg.Minio)
		if err != nil {
			return nil, nil, fmt.Errorf("minio storage: %w", err)
		}
		return m, m, nil
	default:
		fs, err := storage.NewFileStore(cfg.LocalDir)
		if err != nil {
			return nil, nil, fmt.Errorf("local storage: %w", err)
		}
		return fs, nil, nil
	}
}

// Locker serializes report generation per workspace.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (lock.Release, error)
}

// coordination holds the workspace lock and the auth rate limiter, backed
// by Redis when configured and in-process otherwise.
type coordination struct {
	locks   Locker
	limiter middleware.Limiter
	redis   *redis.Client
	stop    func()
}

func newCoordination(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*coordination, error) {
	if !cfg.Enabled() {
		rl := middleware.NewRateLimiter(time.Minute)
		logger.Warn("redis disabled, using in-process locks and rate limits")
		return &coordination{locks: lock.NewLocal(), limiter: rl, stop: rl.Stop}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info("connected to redis", slog.String("addr", cfg.Addr))
	return &coordination{
		locks:   lock.NewRedis(client, cfg.KeyPrefix),
		limiter: ratelimit.NewRedis(client, cfg.KeyPrefix, logger),
		redis:   client,
		stop:    func() { _ = client.Close() },
	}, nil
}

type redisPinger struct{ c *redis.Client }

func (p redisPinger) Ping(ctx context.Context) error { return p.c.Ping(ctx).Err() }
