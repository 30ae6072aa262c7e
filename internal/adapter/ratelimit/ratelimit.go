// Package ratelimit is a Redis fixed-window request limiter.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// Redis counts requests per key in one-minute windows shared across processes.
type Redis struct {
	client redis.UniversalClient
	prefix string
	window time.Duration
	now    func() time.Time
	log    *slog.Logger
}

// NewRedis creates a limiter with keys under "<prefix>:ratelimit:".
func NewRedis(client redis.UniversalClient, prefix string, logger *slog.Logger) *Redis {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "fieldreport"
	}
	return &Redis{
		client: client,
		prefix: prefix + ":ratelimit",
		window: time.Minute,
		now:    time.Now,
		log:    logger.With("adapter", "ratelimit"),
	}
}

// Allow reports whether key is still within perMinute requests in the
// current window. Redis failures deny the request.
func (l *Redis) Allow(ctx context.Context, key string, perMinute int) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}

	windowMs := l.window.Milliseconds()
	slot := l.now().UTC().UnixMilli() / windowMs
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	count, err := fixedWindowScript.Run(ctx, l.client, []string{redisKey}, windowMs).Int64()
	if err != nil {
		l.log.WarnContext(ctx, "rate limit check failed", slog.String("error", err.Error()))
		return false
	}
	return count <= int64(perMinute)
}
