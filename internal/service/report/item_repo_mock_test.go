package report

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.InputItem, error)
	ListByWorkspaceFunc func(ctx context.Context, workspaceID uuid.UUID) ([]domain.InputItem, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListByWorkspace []struct {
			Ctx         context.Context
			WorkspaceID uuid.UUID
		}
	}
	lockGetByID         sync.RWMutex
	lockListByWorkspace sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.InputItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
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

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.InputItem, error) {
	if mock.ListByWorkspaceFunc == nil {
		panic("itemRepoMock.ListByWorkspaceFunc: method is nil but itemRepo.ListByWorkspace was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		WorkspaceID uuid.UUID
	}{Ctx: ctx, WorkspaceID: workspaceID}
	mock.lockListByWorkspace.Lock()
	mock.calls.ListByWorkspace = append(mock.calls.ListByWorkspace, callInfo)
	mock.lockListByWorkspace.Unlock()
	return mock.ListByWorkspaceFunc(ctx, workspaceID)
}

func (mock *itemRepoMock) ListByWorkspaceCalls() []struct {
	Ctx         context.Context
	WorkspaceID uuid.UUID
} {
	mock.lockListByWorkspace.RLock()
	calls := mock.calls.ListByWorkspace
	mock.lockListByWorkspace.RUnlock()
	return calls
}
