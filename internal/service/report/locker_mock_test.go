package report

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/fieldreport-backend/internal/adapter/lock"
)

var _ locker = &lockerMock{}

type lockerMock struct {
	AcquireFunc func(ctx context.Context, key string, ttl time.Duration) (lock.Release, error)

	calls struct {
		Acquire []struct {
			Ctx context.Context
			Key string
			Ttl time.Duration
		}
	}
	lockAcquire sync.RWMutex
}

func (mock *lockerMock) Acquire(ctx context.Context, key string, ttl time.Duration) (lock.Release, error) {
	if mock.AcquireFunc == nil {
		panic("lockerMock.AcquireFunc: method is nil but locker.Acquire was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		Ttl time.Duration
	}{Ctx: ctx, Key: key, Ttl: ttl}
	mock.lockAcquire.Lock()
	mock.calls.Acquire = append(mock.calls.Acquire, callInfo)
	mock.lockAcquire.Unlock()
	return mock.AcquireFunc(ctx, key, ttl)
}

func (mock *lockerMock) AcquireCalls() []struct {
	Ctx context.Context
	Key string
	Ttl time.Duration
} {
	mock.lockAcquire.RLock()
	calls := mock.calls.Acquire
	mock.lockAcquire.RUnlock()
	return calls
}
