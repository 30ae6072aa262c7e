package item

import (
	"context"
	"io"
	"sync"
)

var _ fileStore = &fileStoreMock{}

type fileStoreMock struct {
	SaveFunc   func(ctx context.Context, key string, r io.Reader, size int64, contentType string) (int64, error)
	OpenFunc   func(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteFunc func(ctx context.Context, key string) error

	calls struct {
		Save []struct {
			Ctx         context.Context
			Key         string
			R           io.Reader
			Size        int64
			ContentType string
		}
		Open []struct {
			Ctx context.Context
			Key string
		}
		Delete []struct {
			Ctx context.Context
			Key string
		}
	}
	lockSave   sync.RWMutex
	lockOpen   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *fileStoreMock) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (int64, error) {
	if mock.SaveFunc == nil {
		panic("fileStoreMock.SaveFunc: method is nil but fileStore.Save was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		R           io.Reader
		Size        int64
		ContentType string
	}{Ctx: ctx, Key: key, R: r, Size: size, ContentType: contentType}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, key, r, size, contentType)
}

func (mock *fileStoreMock) SaveCalls() []struct {
	Ctx         context.Context
	Key         string
	R           io.Reader
	Size        int64
	ContentType string
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
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

func (mock *fileStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("fileStoreMock.DeleteFunc: method is nil but fileStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *fileStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
