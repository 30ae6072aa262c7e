package enrichment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	MarkProcessedFunc func(ctx context.Context, id uuid.UUID, transcription string, data *domain.ExtractedData, now time.Time) (bool, error)
	SaveProcessedFunc func(ctx context.Context, id uuid.UUID, transcription string, data *domain.ExtractedData, now time.Time) error

	calls struct {
		MarkProcessed []struct {
			Ctx           context.Context
			Id            uuid.UUID
			Transcription string
			Data          *domain.ExtractedData
			Now           time.Time
		}
		SaveProcessed []struct {
			Ctx           context.Context
			Id            uuid.UUID
			Transcription string
			Data          *domain.ExtractedData
			Now           time.Time
		}
	}
	lockMarkProcessed sync.RWMutex
	lockSaveProcessed sync.RWMutex
}

func (mock *itemRepoMock) MarkProcessed(ctx context.Context, id uuid.UUID, transcription string, data *domain.ExtractedData, now time.Time) (bool, error) {
	if mock.MarkProcessedFunc == nil {
		panic("itemRepoMock.MarkProcessedFunc: method is nil but itemRepo.MarkProcessed was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		Id            uuid.UUID
		Transcription string
		Data          *domain.ExtractedData
		Now           time.Time
	}{Ctx: ctx, Id: id, Transcription: transcription, Data: data, Now: now}
	mock.lockMarkProcessed.Lock()
	mock.calls.MarkProcessed = append(mock.calls.MarkProcessed, callInfo)
	mock.lockMarkProcessed.Unlock()
	return mock.MarkProcessedFunc(ctx, id, transcription, data, now)
}

func (mock *itemRepoMock) MarkProcessedCalls() []struct {
	Ctx           context.Context
	Id            uuid.UUID
	Transcription string
	Data          *domain.ExtractedData
	Now           time.Time
} {
	mock.lockMarkProcessed.RLock()
	calls := mock.calls.MarkProcessed
	mock.lockMarkProcessed.RUnlock()
	return calls
}

func (mock *itemRepoMock) SaveProcessed(ctx context.Context, id uuid.UUID, transcription string, data *domain.ExtractedData, now time.Time) error {
	if mock.SaveProcessedFunc == nil {
		panic("itemRepoMock.SaveProcessedFunc: method is nil but itemRepo.SaveProcessed was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		Id            uuid.UUID
		Transcription string
		Data          *domain.ExtractedData
		Now           time.Time
	}{Ctx: ctx, Id: id, Transcription: transcription, Data: data, Now: now}
	mock.lockSaveProcessed.Lock()
	mock.calls.SaveProcessed = append(mock.calls.SaveProcessed, callInfo)
	mock.lockSaveProcessed.Unlock()
	return mock.SaveProcessedFunc(ctx, id, transcription, data, now)
}

func (mock *itemRepoMock) SaveProcessedCalls() []struct {
	Ctx           context.Context
	Id            uuid.UUID
	Transcription string
	Data          *domain.ExtractedData
	Now           time.Time
} {
	mock.lockSaveProcessed.RLock()
	calls := mock.calls.SaveProcessed
	mock.lockSaveProcessed.RUnlock()
	return calls
}
