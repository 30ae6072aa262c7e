// Package lock provides short-lived exclusive locks keyed by name.
// Acquire never blocks: a held key fails with domain.ErrConflict.
package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// Release frees a lock obtained from Acquire.
type Release func(ctx context.Context) error

// ---------------------------------------------------------------------------
// Redis
// ---------------------------------------------------------------------------

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by someone else is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lock shared by every process using the same Redis.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a Redis lock with keys under "<prefix>:lock:".
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "fieldreport"
	}
	return &Redis{client: client, prefix: prefix + ":lock:"}
}

// Acquire sets the key with SET NX PX. The lock expires after ttl even if
// never released.
func (l *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	redisKey := l.prefix + key
	ok, err := l.client.SetNX(ctx, redisKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("lock.Acquire %s: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock %s is held: %w", key, domain.ErrConflict)
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil {
			return fmt.Errorf("lock.Release %s: %w", key, err)
		}
		return nil
	}, nil
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("lock token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ---------------------------------------------------------------------------
// Local
// ---------------------------------------------------------------------------

// Local is an in-process lock used when Redis is not configured.
type Local struct {
	mu   sync.Mutex
	held map[string]time.Time
	now  func() time.Time
}

// NewLocal creates an empty Local lock.
func NewLocal() *Local {
	return &Local{held: make(map[string]time.Time), now: time.Now}
}

// Acquire takes key unless another holder's ttl has not yet passed.
func (l *Local) Acquire(_ context.Context, key string, ttl time.Duration) (Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if exp, ok := l.held[key]; ok && now.Before(exp) {
		return nil, fmt.Errorf("lock %s is held: %w", key, domain.ErrConflict)
	}
	exp := now.Add(ttl)
	l.held[key] = exp

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if cur, ok := l.held[key]; ok && cur.Equal(exp) {
			delete(l.held, key)
		}
		return nil
	}, nil
}
