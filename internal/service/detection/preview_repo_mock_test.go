package detection

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var _ previewRepo = &previewRepoMock{}

type previewRepoMock struct {
	UpsertFunc        func(ctx context.Context, p *domain.DetectionPreview) error
	GetByItemFunc     func(ctx context.Context, itemID uuid.UUID) (*domain.DetectionPreview, error)
	DeleteFunc        func(ctx context.Context, itemID uuid.UUID) error
	ListOlderThanFunc func(ctx context.Context, cutoff time.Time, limit int) ([]domain.DetectionPreview, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			P   *domain.DetectionPreview
		}
		GetByItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		ListOlderThan []struct {
			Ctx    context.Context
			Cutoff time.Time
			Limit  int
		}
	}
	lockUpsert        sync.RWMutex
	lockGetByItem     sync.RWMutex
	lockDelete        sync.RWMutex
	lockListOlderThan sync.RWMutex
}

func (mock *previewRepoMock) Upsert(ctx context.Context, p *domain.DetectionPreview) error {
	if mock.UpsertFunc == nil {
		panic("previewRepoMock.UpsertFunc: method is nil but previewRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.DetectionPreview
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *previewRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   *domain.DetectionPreview
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *previewRepoMock) GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.DetectionPreview, error) {
	if mock.GetByItemFunc == nil {
		panic("previewRepoMock.GetByItemFunc: method is nil but previewRepo.GetByItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockGetByItem.Lock()
	mock.calls.GetByItem = append(mock.calls.GetByItem, callInfo)
	mock.lockGetByItem.Unlock()
	return mock.GetByItemFunc(ctx, itemID)
}

func (mock *previewRepoMock) GetByItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockGetByItem.RLock()
	calls := mock.calls.GetByItem
	mock.lockGetByItem.RUnlock()
	return calls
}

func (mock *previewRepoMock) Delete(ctx context.Context, itemID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("previewRepoMock.DeleteFunc: method is nil but previewRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, itemID)
}

func (mock *previewRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *previewRepoMock) ListOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.DetectionPreview, error) {
	if mock.ListOlderThanFunc == nil {
		panic("previewRepoMock.ListOlderThanFunc: method is nil but previewRepo.ListOlderThan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
		Limit  int
	}{Ctx: ctx, Cutoff: cutoff, Limit: limit}
	mock.lockListOlderThan.Lock()
	mock.calls.ListOlderThan = append(mock.calls.ListOlderThan, callInfo)
	mock.lockListOlderThan.Unlock()
	return mock.ListOlderThanFunc(ctx, cutoff, limit)
}

func (mock *previewRepoMock) ListOlderThanCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
	Limit  int
} {
	mock.lockListOlderThan.RLock()
	calls := mock.calls.ListOlderThan
	mock.lockListOlderThan.RUnlock()
	return calls
}
