package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var _ synthesizer = &synthesizerMock{}

type synthesizerMock struct {
	SynthesizeReportFunc func(ctx context.Context, in domain.SynthesisInput) (domain.ReportDraft, error)

	calls struct {
		SynthesizeReport []struct {
			Ctx context.Context
			In  domain.SynthesisInput
		}
	}
	lockSynthesizeReport sync.RWMutex
}

func (mock *synthesizerMock) SynthesizeReport(ctx context.Context, in domain.SynthesisInput) (domain.ReportDraft, error) {
	if mock.SynthesizeReportFunc == nil {
		panic("synthesizerMock.SynthesizeReportFunc: method is nil but synthesizer.SynthesizeReport was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.SynthesisInput
	}{Ctx: ctx, In: in}
	mock.lockSynthesizeReport.Lock()
	mock.calls.SynthesizeReport = append(mock.calls.SynthesizeReport, callInfo)
	mock.lockSynthesizeReport.Unlock()
	return mock.SynthesizeReportFunc(ctx, in)
}

func (mock *synthesizerMock) SynthesizeReportCalls() []struct {
	Ctx context.Context
	In  domain.SynthesisInput
} {
	mock.lockSynthesizeReport.RLock()
	calls := mock.calls.SynthesizeReport
	mock.lockSynthesizeReport.RUnlock()
	return calls
}
