package item

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/service/enrichment"
)

var _ enricher = &enricherMock{}

type enricherMock struct {
	ExtractTextFunc  func(ctx context.Context, r io.Reader) (enrichment.Result, bool)
	RetranscribeFunc func(ctx context.Context, item *domain.InputItem) (enrichment.Result, error)

	calls struct {
		ExtractText []struct {
			Ctx context.Context
			R   io.Reader
		}
		Retranscribe []struct {
			Ctx  context.Context
			Item *domain.InputItem
		}
	}
	lockExtractText  sync.RWMutex
	lockRetranscribe sync.RWMutex
}

func (mock *enricherMock) ExtractText(ctx context.Context, r io.Reader) (enrichment.Result, bool) {
	if mock.ExtractTextFunc == nil {
		panic("enricherMock.ExtractTextFunc: method is nil but enricher.ExtractText was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   io.Reader
	}{Ctx: ctx, R: r}
	mock.lockExtractText.Lock()
	mock.calls.ExtractText = append(mock.calls.ExtractText, callInfo)
	mock.lockExtractText.Unlock()
	return mock.ExtractTextFunc(ctx, r)
}

func (mock *enricherMock) ExtractTextCalls() []struct {
	Ctx context.Context
	R   io.Reader
} {
	mock.lockExtractText.RLock()
	calls := mock.calls.ExtractText
	mock.lockExtractText.RUnlock()
	return calls
}

func (mock *enricherMock) Retranscribe(ctx context.Context, item *domain.InputItem) (enrichment.Result, error) {
	if mock.RetranscribeFunc == nil {
		panic("enricherMock.RetranscribeFunc: method is nil but enricher.Retranscribe was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.InputItem
	}{Ctx: ctx, Item: item}
	mock.lockRetranscribe.Lock()
	mock.calls.Retranscribe = append(mock.calls.Retranscribe, callInfo)
	mock.lockRetranscribe.Unlock()
	return mock.RetranscribeFunc(ctx, item)
}

func (mock *enricherMock) RetranscribeCalls() []struct {
	Ctx  context.Context
	Item *domain.InputItem
} {
	mock.lockRetranscribe.RLock()
	calls := mock.calls.Retranscribe
	mock.lockRetranscribe.RUnlock()
	return calls
}
