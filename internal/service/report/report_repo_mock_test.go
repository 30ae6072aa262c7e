package report

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc           func(ctx context.Context, rep *domain.MaintenanceReport) error
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error)
	ListFunc             func(ctx context.Context, f domain.ReportFilter) ([]domain.MaintenanceReport, int, error)
	UpdateFunc           func(ctx context.Context, rep *domain.MaintenanceReport) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	StatsFunc            func(ctx context.Context, userID uuid.UUID) (*domain.ReportStats, error)
	CreateAnnotationFunc func(ctx context.Context, a *domain.ReportAnnotation) error
	GetAnnotationFunc    func(ctx context.Context, id uuid.UUID) (*domain.ReportAnnotation, error)
	ListAnnotationsFunc  func(ctx context.Context, reportID uuid.UUID) ([]domain.ReportAnnotation, error)
	DeleteAnnotationFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Rep *domain.MaintenanceReport
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.ReportFilter
		}
		Update []struct {
			Ctx context.Context
			Rep *domain.MaintenanceReport
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Stats []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CreateAnnotation []struct {
			Ctx context.Context
			A   *domain.ReportAnnotation
		}
		GetAnnotation []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListAnnotations []struct {
			Ctx      context.Context
			ReportID uuid.UUID
		}
		DeleteAnnotation []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockList             sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockStats            sync.RWMutex
	lockCreateAnnotation sync.RWMutex
	lockGetAnnotation    sync.RWMutex
	lockListAnnotations  sync.RWMutex
	lockDeleteAnnotation sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, rep *domain.MaintenanceReport) error {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rep *domain.MaintenanceReport
	}{Ctx: ctx, Rep: rep}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rep)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rep *domain.MaintenanceReport
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reportRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error) {
	if mock.GetByIDFunc == nil {
		panic("reportRepoMock.GetByIDFunc: method is nil but reportRepo.GetByID was just called")
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

func (mock *reportRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reportRepoMock) List(ctx context.Context, f domain.ReportFilter) ([]domain.MaintenanceReport, int, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ReportFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *reportRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ReportFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reportRepoMock) Update(ctx context.Context, rep *domain.MaintenanceReport) error {
	if mock.UpdateFunc == nil {
		panic("reportRepoMock.UpdateFunc: method is nil but reportRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rep *domain.MaintenanceReport
	}{Ctx: ctx, Rep: rep}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rep)
}

func (mock *reportRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rep *domain.MaintenanceReport
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *reportRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reportRepoMock.DeleteFunc: method is nil but reportRepo.Delete was just called")
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

func (mock *reportRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *reportRepoMock) Stats(ctx context.Context, userID uuid.UUID) (*domain.ReportStats, error) {
	if mock.StatsFunc == nil {
		panic("reportRepoMock.StatsFunc: method is nil but reportRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, userID)
}

func (mock *reportRepoMock) StatsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *reportRepoMock) CreateAnnotation(ctx context.Context, a *domain.ReportAnnotation) error {
	if mock.CreateAnnotationFunc == nil {
		panic("reportRepoMock.CreateAnnotationFunc: method is nil but reportRepo.CreateAnnotation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.ReportAnnotation
	}{Ctx: ctx, A: a}
	mock.lockCreateAnnotation.Lock()
	mock.calls.CreateAnnotation = append(mock.calls.CreateAnnotation, callInfo)
	mock.lockCreateAnnotation.Unlock()
	return mock.CreateAnnotationFunc(ctx, a)
}

func (mock *reportRepoMock) CreateAnnotationCalls() []struct {
	Ctx context.Context
	A   *domain.ReportAnnotation
} {
	mock.lockCreateAnnotation.RLock()
	calls := mock.calls.CreateAnnotation
	mock.lockCreateAnnotation.RUnlock()
	return calls
}

func (mock *reportRepoMock) GetAnnotation(ctx context.Context, id uuid.UUID) (*domain.ReportAnnotation, error) {
	if mock.GetAnnotationFunc == nil {
		panic("reportRepoMock.GetAnnotationFunc: method is nil but reportRepo.GetAnnotation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetAnnotation.Lock()
	mock.calls.GetAnnotation = append(mock.calls.GetAnnotation, callInfo)
	mock.lockGetAnnotation.Unlock()
	return mock.GetAnnotationFunc(ctx, id)
}

func (mock *reportRepoMock) GetAnnotationCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetAnnotation.RLock()
	calls := mock.calls.GetAnnotation
	mock.lockGetAnnotation.RUnlock()
	return calls
}

func (mock *reportRepoMock) ListAnnotations(ctx context.Context, reportID uuid.UUID) ([]domain.ReportAnnotation, error) {
	if mock.ListAnnotationsFunc == nil {
		panic("reportRepoMock.ListAnnotationsFunc: method is nil but reportRepo.ListAnnotations was just called")
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

func (mock *reportRepoMock) ListAnnotationsCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
} {
	mock.lockListAnnotations.RLock()
	calls := mock.calls.ListAnnotations
	mock.lockListAnnotations.RUnlock()
	return calls
}

func (mock *reportRepoMock) DeleteAnnotation(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteAnnotationFunc == nil {
		panic("reportRepoMock.DeleteAnnotationFunc: method is nil but reportRepo.DeleteAnnotation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteAnnotation.Lock()
	mock.calls.DeleteAnnotation = append(mock.calls.DeleteAnnotation, callInfo)
	mock.lockDeleteAnnotation.Unlock()
	return mock.DeleteAnnotationFunc(ctx, id)
}

func (mock *reportRepoMock) DeleteAnnotationCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteAnnotation.RLock()
	calls := mock.calls.DeleteAnnotation
	mock.lockDeleteAnnotation.RUnlock()
	return calls
}
