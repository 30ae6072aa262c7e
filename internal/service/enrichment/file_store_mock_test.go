package enrichment

import (
	"context"
	"io"
	"sync"
)

var _ fileStore = &fileStoreMock{}

type fileStoreMock struct {
	OpenFunc func(ctx context.Context, key string) (io.ReadCloser, error)

	calls struct {
		Open []struct {
			Ctx context.Context
			Key string
		}
	}
	lockOpen sync.RWMutex
}

func (mock *fileStoreMock) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if mock.OpenFunc == nil {
		panic("fileStoreMock.OpenFunc: method is nil but fileStore.Open was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, key)
}

func (mock *fileStoreMock) OpenCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}
