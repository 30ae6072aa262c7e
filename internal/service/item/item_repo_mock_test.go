package item

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc              func(ctx context.Context, it *domain.InputItem) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.InputItem, error)
	ListByUserFunc          func(ctx context.Context, userID uuid.UUID, kind domain.ItemKind, limit int, offset int) ([]domain.InputItem, int, error)
	UpdateTranscriptionFunc func(ctx context.Context, id uuid.UUID, text string, now time.Time) error
	UpdateExtractedFunc     func(ctx context.Context, id uuid.UUID, data *domain.ExtractedData, now time.Time) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			It  *domain.InputItem
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Kind   domain.ItemKind
			Limit  int
			Offset int
		}
		UpdateTranscription []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Text string
			Now  time.Time
		}
		UpdateExtracted []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Data *domain.ExtractedData
			Now  time.Time
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockListByUser          sync.RWMutex
	lockUpdateTranscription sync.RWMutex
	lockUpdateExtracted     sync.RWMutex
	lockDelete              sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, it *domain.InputItem) error {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		It  *domain.InputItem
	}{Ctx: ctx, It: it}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, it)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx context.Context
	It  *domain.InputItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *itemRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, kind domain.ItemKind, limit int, offset int) ([]domain.InputItem, int, error) {
	if mock.ListByUserFunc == nil {
		panic("itemRepoMock.ListByUserFunc: method is nil but itemRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Kind   domain.ItemKind
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Kind: kind, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, kind, limit, offset)
}

func (mock *itemRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Kind   domain.ItemKind
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateTranscription(ctx context.Context, id uuid.UUID, text string, now time.Time) error {
	if mock.UpdateTranscriptionFunc == nil {
		panic("itemRepoMock.UpdateTranscriptionFunc: method is nil but itemRepo.UpdateTranscription was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Text string
		Now  time.Time
	}{Ctx: ctx, Id: id, Text: text, Now: now}
	mock.lockUpdateTranscription.Lock()
	mock.calls.UpdateTranscription = append(mock.calls.UpdateTranscription, callInfo)
	mock.lockUpdateTranscription.Unlock()
	return mock.UpdateTranscriptionFunc(ctx, id, text, now)
}

func (mock *itemRepoMock) UpdateTranscriptionCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Text string
	Now  time.Time
} {
	mock.lockUpdateTranscription.RLock()
	calls := mock.calls.UpdateTranscription
	mock.lockUpdateTranscription.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateExtracted(ctx context.Context, id uuid.UUID, data *domain.ExtractedData, now time.Time) error {
	if mock.UpdateExtractedFunc == nil {
		panic("itemRepoMock.UpdateExtractedFunc: method is nil but itemRepo.UpdateExtracted was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Data *domain.ExtractedData
		Now  time.Time
	}{Ctx: ctx, Id: id, Data: data, Now: now}
	mock.lockUpdateExtracted.Lock()
	mock.calls.UpdateExtracted = append(mock.calls.UpdateExtracted, callInfo)
	mock.lockUpdateExtracted.Unlock()
	return mock.UpdateExtractedFunc(ctx, id, data, now)
}

func (mock *itemRepoMock) UpdateExtractedCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Data *domain.ExtractedData
	Now  time.Time
} {
	mock.lockUpdateExtracted.RLock()
	calls := mock.calls.UpdateExtracted
	mock.lockUpdateExtracted.RUnlock()
	return calls
}

func (mock *itemRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
