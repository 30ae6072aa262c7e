package detection

import (
	"context"
	"sync"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/provider"
)

var _ provider.Detector = &DetectorMock{}

type DetectorMock struct {
	DetectEntitiesFunc func(ctx context.Context, image []byte, mimeType string, label string) ([]domain.Box, error)

	calls struct {
		DetectEntities []struct {
			Ctx      context.Context
			Image    []byte
			MimeType string
			Label    string
		}
	}
	lockDetectEntities sync.RWMutex
}

func (mock *DetectorMock) DetectEntities(ctx context.Context, image []byte, mimeType string, label string) ([]domain.Box, error) {
	if mock.DetectEntitiesFunc == nil {
		panic("DetectorMock.DetectEntitiesFunc: method is nil but provider.Detector.DetectEntities was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Image    []byte
		MimeType string
		Label    string
	}{Ctx: ctx, Image: image, MimeType: mimeType, Label: label}
	mock.lockDetectEntities.Lock()
	mock.calls.DetectEntities = append(mock.calls.DetectEntities, callInfo)
	mock.lockDetectEntities.Unlock()
	return mock.DetectEntitiesFunc(ctx, image, mimeType, label)
}

func (mock *DetectorMock) DetectEntitiesCalls() []struct {
	Ctx      context.Context
	Image    []byte
	MimeType string
	Label    string
} {
	mock.lockDetectEntities.RLock()
	calls := mock.calls.DetectEntities
	mock.lockDetectEntities.RUnlock()
	return calls
}
