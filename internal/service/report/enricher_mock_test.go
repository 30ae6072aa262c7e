package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var _ enricher = &enricherMock{}

type enricherMock struct {
	EnrichPendingFunc func(ctx context.Context, items []domain.InputItem) (int, error)

	calls struct {
		EnrichPending []struct {
			Ctx   context.Context
			Items []domain.InputItem
		}
	}
	lockEnrichPending sync.RWMutex
}

func (mock *enricherMock) EnrichPending(ctx context.Context, items []domain.InputItem) (int, error) {
	if mock.EnrichPendingFunc == nil {
		panic("enricherMock.EnrichPendingFunc: method is nil but enricher.EnrichPending was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []domain.InputItem
	}{Ctx: ctx, Items: items}
	mock.lockEnrichPending.Lock()
	mock.calls.EnrichPending = append(mock.calls.EnrichPending, callInfo)
	mock.lockEnrichPending.Unlock()
	return mock.EnrichPendingFunc(ctx, items)
}

func (mock *enricherMock) EnrichPendingCalls() []struct {
	Ctx   context.Context
	Items []domain.InputItem
} {
	mock.lockEnrichPending.RLock()
	calls := mock.calls.EnrichPending
	mock.lockEnrichPending.RUnlock()
	return calls
}
