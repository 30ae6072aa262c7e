package enrichment

import (
	"context"
	"sync"

	"github.com/heartmarshall/fieldreport-backend/internal/provider"
)

var _ provider.Transcriber = &TranscriberMock{}

type TranscriberMock struct {
	TranscribeFunc func(ctx context.Context, audio []byte, mimeType string, filename string) (string, error)

	calls struct {
		Transcribe []struct {
			Ctx      context.Context
			Audio    []byte
			MimeType string
			Filename string
		}
	}
	lockTranscribe sync.RWMutex
}

func (mock *TranscriberMock) Transcribe(ctx context.Context, audio []byte, mimeType string, filename string) (string, error) {
	if mock.TranscribeFunc == nil {
		panic("TranscriberMock.TranscribeFunc: method is nil but provider.Transcriber.Transcribe was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Audio    []byte
		MimeType string
		Filename string
	}{Ctx: ctx, Audio: audio, MimeType: mimeType, Filename: filename}
	mock.lockTranscribe.Lock()
	mock.calls.Transcribe = append(mock.calls.Transcribe, callInfo)
	mock.lockTranscribe.Unlock()
	return mock.TranscribeFunc(ctx, audio, mimeType, filename)
}

func (mock *TranscriberMock) TranscribeCalls() []struct {
	Ctx      context.Context
	Audio    []byte
	MimeType string
	Filename string
} {
	mock.lockTranscribe.RLock()
	calls := mock.calls.Transcribe
	mock.lockTranscribe.RUnlock()
	return calls
}
