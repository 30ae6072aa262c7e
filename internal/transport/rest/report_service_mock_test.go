package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/service/report"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	GetFunc              func(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error)
	ListFunc             func(ctx context.Context, input report.ListInput) ([]domain.MaintenanceReport, int, error)
	UpdateFunc           func(ctx context.Context, input report.UpdateInput) (*domain.MaintenanceReport, error)
	FinalizeFunc         func(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	StatsFunc            func(ctx context.Context) (*domain.ReportStats, error)
	AddAnnotationFunc    func(ctx context.Context, input report.AnnotationInput) (*domain.ReportAnnotation, error)
	ListAnnotationsFunc  func(ctx context.Context, reportID uuid.UUID) ([]domain.ReportAnnotation, error)
	DeleteAnnotationFunc func(ctx context.Context, reportID uuid.UUID, annotationID uuid.UUID) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input report.ListInput
		}
		Update []struct {
			Ctx   context.Context
			Input report.UpdateInput
		}
		Finalize []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Stats []struct {
			Ctx context.Context
		}
		AddAnnotation []struct {
			Ctx   context.Context
			Input report.AnnotationInput
		}
		ListAnnotations []struct {
			Ctx      context.Context
			ReportID uuid.UUID
		}
		DeleteAnnotation []struct {
			Ctx          context.Context
			ReportID     uuid.UUID
			AnnotationID uuid.UUID
		}
	}
	lockGet              sync.RWMutex
	lockList             sync.RWMutex
	lockUpdate           sync.RWMutex
	lockFinalize         sync.RWMutex
	lockDelete           sync.RWMutex
	lockStats            sync.RWMutex
	lockAddAnnotation    sync.RWMutex
	lockListAnnotations  sync.RWMutex
	lockDeleteAnnotation sync.RWMutex
}

func (mock *reportServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error) {
	if mock.GetFunc == nil {
		panic("reportServiceMock.GetFunc: method is nil but reportService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *reportServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *reportServiceMock) List(ctx context.Context, input report.ListInput) ([]domain.MaintenanceReport, int, error) {
	if mock.ListFunc == nil {
		panic("reportServiceMock.ListFunc: method is nil but reportService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *reportServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input report.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reportServiceMock) Update(ctx context.Context, input report.UpdateInput) (*domain.MaintenanceReport, error) {
	if mock.UpdateFunc == nil {
		panic("reportServiceMock.UpdateFunc: method is nil but reportService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *reportServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input report.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *reportServiceMock) Finalize(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error) {
	if mock.FinalizeFunc == nil {
		panic("reportServiceMock.FinalizeFunc: method is nil but reportService.Finalize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockFinalize.Lock()
	mock.calls.Finalize = append(mock.calls.Finalize, callInfo)
	mock.lockFinalize.Unlock()
	return mock.FinalizeFunc(ctx, id)
}

func (mock *reportServiceMock) FinalizeCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockFinalize.RLock()
	calls := mock.calls.Finalize
	mock.lockFinalize.RUnlock()
	return calls
}

func (mock *reportServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reportServiceMock.DeleteFunc: method is nil but reportService.Delete was just called")
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

func (mock *reportServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *reportServiceMock) Stats(ctx context.Context) (*domain.ReportStats, error) {
	if mock.StatsFunc == nil {
		panic("reportServiceMock.StatsFunc: method is nil but reportService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *reportServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *reportServiceMock) AddAnnotation(ctx context.Context, input report.AnnotationInput) (*domain.ReportAnnotation, error) {
	if mock.AddAnnotationFunc == nil {
		panic("reportServiceMock.AddAnnotationFunc: method is nil but reportService.AddAnnotation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.AnnotationInput
	}{Ctx: ctx, Input: input}
	mock.lockAddAnnotation.Lock()
	mock.calls.AddAnnotation = append(mock.calls.AddAnnotation, callInfo)
	mock.lockAddAnnotation.Unlock()
	return mock.AddAnnotationFunc(ctx, input)
}

func (mock *reportServiceMock) AddAnnotationCalls() []struct {
	Ctx   context.Context
	Input report.AnnotationInput
} {
	mock.lockAddAnnotation.RLock()
	calls := mock.calls.AddAnnotation
	mock.lockAddAnnotation.RUnlock()
	return calls
}

func (mock *reportServiceMock) ListAnnotations(ctx context.Context, reportID uuid.UUID) ([]domain.ReportAnnotation, error) {
	if mock.ListAnnotationsFunc == nil {
		panic("reportServiceMock.ListAnnotationsFunc: method is nil but reportService.ListAnnotations was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID uuid.UUID
	}{Ctx: ctx, ReportID: reportID}
	mock.lockListAnnotations.Lock()
	mock.calls.ListAnnotations = append(mock.calls.ListAnnotations, callInfo)
	mock.lockListAnnotations.Unlock()
	return mock.ListAnnotationsFunc(ctx, reportID)
}

func (mock *reportServiceMock) ListAnnotationsCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
} {
	mock.lockListAnnotations.RLock()
	calls := mock.calls.ListAnnotations
	mock.lockListAnnotations.RUnlock()
	return calls
}

func (mock *reportServiceMock) DeleteAnnotation(ctx context.Context, reportID uuid.UUID, annotationID uuid.UUID) error {
	if mock.DeleteAnnotationFunc == nil {
		panic("reportServiceMock.DeleteAnnotationFunc: method is nil but reportService.DeleteAnnotation was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ReportID     uuid.UUID
		AnnotationID uuid.UUID
	}{Ctx: ctx, ReportID: reportID, AnnotationID: annotationID}
	mock.lockDeleteAnnotation.Lock()
	mock.calls.DeleteAnnotation = append(mock.calls.DeleteAnnotation, callInfo)
	mock.lockDeleteAnnotation.Unlock()
	return mock.DeleteAnnotationFunc(ctx, reportID, annotationID)
}

func (mock *reportServiceMock) DeleteAnnotationCalls() []struct {
	Ctx          context.Context
	ReportID     uuid.UUID
	AnnotationID uuid.UUID
} {
	mock.lockDeleteAnnotation.RLock()
	calls := mock.calls.DeleteAnnotation
	mock.lockDeleteAnnotation.RUnlock()
	return calls
}
