package item

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var _ workspaceRepo = &workspaceRepoMock{}

type workspaceRepoMock struct {
	CreateFunc               func(ctx context.Context, ws *domain.Workspace) error
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	AddItemFunc              func(ctx context.Context, workspaceID uuid.UUID, itemID uuid.UUID) (bool, error)
	TouchFunc                func(ctx context.Context, id uuid.UUID, now time.Time) error
	RemoveItemEverywhereFunc func(ctx context.Context, itemID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Ws  *domain.Workspace
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		AddItem []struct {
			Ctx         context.Context
			WorkspaceID uuid.UUID
			ItemID      uuid.UUID
		}
		Touch []struct {
			Ctx context.Context
			Id  uuid.UUID
			Now time.Time
		}
		RemoveItemEverywhere []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockCreate               sync.RWMutex
	lockGetByID              sync.RWMutex
	lockAddItem              sync.RWMutex
	lockTouch                sync.RWMutex
	lockRemoveItemEverywhere sync.RWMutex
}

func (mock *workspaceRepoMock) Create(ctx context.Context, ws *domain.Workspace) error {
	if mock.CreateFunc == nil {
		panic("workspaceRepoMock.CreateFunc: method is nil but workspaceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ws  *domain.Workspace
	}{Ctx: ctx, Ws: ws}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ws)
}

func (mock *workspaceRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ws  *domain.Workspace
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *workspaceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if mock.GetByIDFunc == nil {
		panic("workspaceRepoMock.GetByIDFunc: method is nil but workspaceRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *workspaceRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *workspaceRepoMock) AddItem(ctx context.Context, workspaceID uuid.UUID, itemID uuid.UUID) (bool, error) {
	if mock.AddItemFunc == nil {
		panic("workspaceRepoMock.AddItemFunc: method is nil but workspaceRepo.AddItem was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		WorkspaceID uuid.UUID
		ItemID      uuid.UUID
	}{Ctx: ctx, WorkspaceID: workspaceID, ItemID: itemID}
	mock.lockAddItem.Lock()
	mock.calls.AddItem = append(mock.calls.AddItem, callInfo)
	mock.lockAddItem.Unlock()
	return mock.AddItemFunc(ctx, workspaceID, itemID)
}

func (mock *workspaceRepoMock) AddItemCalls() []struct {
	Ctx         context.Context
	WorkspaceID uuid.UUID
	ItemID      uuid.UUID
} {
	mock.lockAddItem.RLock()
	calls := mock.calls.AddItem
	mock.lockAddItem.RUnlock()
	return calls
}

func (mock *workspaceRepoMock) Touch(ctx context.Context, id uuid.UUID, now time.Time) error {
	if mock.TouchFunc == nil {
		panic("workspaceRepoMock.TouchFunc: method is nil but workspaceRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Now time.Time
	}{Ctx: ctx, Id: id, Now: now}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, id, now)
}

func (mock *workspaceRepoMock) TouchCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Now time.Time
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

func (mock *workspaceRepoMock) RemoveItemEverywhere(ctx context.Context, itemID uuid.UUID) (int, error) {
	if mock.RemoveItemEverywhereFunc == nil {
		panic("workspaceRepoMock.RemoveItemEverywhereFunc: method is nil but workspaceRepo.RemoveItemEverywhere was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockRemoveItemEverywhere.Lock()
	mock.calls.RemoveItemEverywhere = append(mock.calls.RemoveItemEverywhere, callInfo)
	mock.lockRemoveItemEverywhere.Unlock()
	return mock.RemoveItemEverywhereFunc(ctx, itemID)
}

func (mock *workspaceRepoMock) RemoveItemEverywhereCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockRemoveItemEverywhere.RLock()
	calls := mock.calls.RemoveItemEverywhere
	mock.lockRemoveItemEverywhere.RUnlock()
	return calls
}
