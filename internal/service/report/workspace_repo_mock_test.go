package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var _ workspaceRepo = &workspaceRepoMock{}

type workspaceRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	SetStatusFunc func(ctx context.Context, id uuid.UUID, status domain.WorkspaceStatus, now time.Time) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SetStatus []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Status domain.WorkspaceStatus
			Now    time.Time
		}
	}
	lockGetByID   sync.RWMutex
	lockSetStatus sync.RWMutex
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

func (mock *workspaceRepoMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.WorkspaceStatus, now time.Time) error {
	if mock.SetStatusFunc == nil {
		panic("workspaceRepoMock.SetStatusFunc: method is nil but workspaceRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Status domain.WorkspaceStatus
		Now    time.Time
	}{Ctx: ctx, Id: id, Status: status, Now: now}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status, now)
}

func (mock *workspaceRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Status domain.WorkspaceStatus
	Now    time.Time
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}
