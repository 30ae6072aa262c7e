// Package report implements report synthesis and the operations on
// generated reports and their annotations.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/adapter/lock"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

type workspaceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.WorkspaceStatus, now time.Time) error
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InputItem, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.InputItem, error)
}

type reportRepo interface {
	Create(ctx context.Context, rep *domain.MaintenanceReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error)
	List(ctx context.Context, f domain.ReportFilter) ([]domain.MaintenanceReport, int, error)
	Update(ctx context.Context, rep *domain.MaintenanceReport) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (*domain.ReportStats, error)

	CreateAnnotation(ctx context.Context, a *domain.ReportAnnotation) error
	GetAnnotation(ctx context.Context, id uuid.UUID) (*domain.ReportAnnotation, error)
	ListAnnotations(ctx context.Context, reportID uuid.UUID) ([]domain.ReportAnnotation, error)
	DeleteAnnotation(ctx context.Context, id uuid.UUID) error
}

type enricher interface {
	EnrichPending(ctx context.Context, items []domain.InputItem) (int, error)
}

type synthesizer interface {
	SynthesizeReport(ctx context.Context, in domain.SynthesisInput) (domain.ReportDraft, error)
}

type locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (lock.Release, error)
}

// Service generates reports from workspaces and manages them afterwards.
type Service struct {
	workspaces  workspaceRepo
	items       itemRepo
	reports     reportRepo
	enricher    enricher
	synthesizer synthesizer
	locker      locker
	lockTTL     time.Duration
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new report service. lockTTL bounds how long a
// workspace stays locked if the process dies mid-synthesis.
func NewService(
	log *slog.Logger,
	workspaces workspaceRepo,
	items itemRepo,
	reports reportRepo,
	enricher enricher,
	synthesizer synthesizer,
	locker locker,
	lockTTL time.Duration,
) *Service {
	return &Service{
		workspaces:  workspaces,
		items:       items,
		reports:     reports,
		enricher:    enricher,
		synthesizer: synthesizer,
		locker:      locker,
		lockTTL:     lockTTL,
		log:         log.With("service", "report"),
		now:         time.Now,
	}
}

func (s *Service) ownedWorkspace(ctx context.Context, userID, id uuid.UUID) (*domain.Workspace, error) {
	ws, err := s.workspaces.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	if !ws.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return ws, nil
}

func (s *Service) ownedReport(ctx context.Context, userID, id uuid.UUID) (*domain.MaintenanceReport, error) {
	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	if !rep.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return rep, nil
}

func workspaceLockKey(id uuid.UUID) string {
	return "workspace:" + id.String()
}
