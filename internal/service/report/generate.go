package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

// Generate enriches the workspace's unprocessed audio items, synthesizes a
// report from all members and persists it. Only one synthesis or processing
// run per workspace may be in flight; a second one fails with ErrConflict.
// When synthesis fails the workspace returns to the status it had before.
func (s *Service) Generate(ctx context.Context, workspaceID uuid.UUID) (*domain.MaintenanceReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.ownedWorkspace(ctx, userID, workspaceID); err != nil {
		return nil, fmt.Errorf("report.Generate: %w", err)
	}

	release, err := s.locker.Acquire(ctx, workspaceLockKey(workspaceID), s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("report.Generate: %w", err)
	}
	defer s.release(ctx, release, workspaceID)

	// Status as of lock acquisition; restored if synthesis fails.
	ws, err := s.ownedWorkspace(ctx, userID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("report.Generate: %w", err)
	}
	prev := ws.Status
	if prev == domain.WorkspaceStatusProcessing {
		// Left behind by a run that died before resetting it.
		prev = domain.WorkspaceStatusDraft
	}

	items, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("report.Generate: %w", err)
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("workspace", "no items")
	}

	if err := s.workspaces.SetStatus(ctx, workspaceID, domain.WorkspaceStatusProcessing, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("report.Generate: %w", err)
	}

	rep, err := s.synthesize(ctx, userID, workspaceID, items)
	if err != nil {
		if statusErr := s.workspaces.SetStatus(context.WithoutCancel(ctx), workspaceID, prev, s.now().UTC()); statusErr != nil {
			s.log.ErrorContext(ctx, "restore workspace status failed",
				slog.String("workspace_id", workspaceID.String()),
				slog.String("error", statusErr.Error()),
			)
		}
		return nil, fmt.Errorf("report.Generate: %w", err)
	}

	if err := s.workspaces.SetStatus(ctx, workspaceID, domain.WorkspaceStatusCompleted, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("report.Generate: %w", err)
	}

	s.log.InfoContext(ctx, "report generated",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", workspaceID.String()),
		slog.String("report_id", rep.ID.String()),
		slog.Int("items", len(items)),
	)
	return rep, nil
}

// ProcessWorkspace runs enrichment over the workspace's unprocessed audio
// items without generating a report and returns how many were processed.
func (s *Service) ProcessWorkspace(ctx context.Context, workspaceID uuid.UUID) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if _, err := s.ownedWorkspace(ctx, userID, workspaceID); err != nil {
		return 0, fmt.Errorf("report.ProcessWorkspace: %w", err)
	}

	release, err := s.locker.Acquire(ctx, workspaceLockKey(workspaceID), s.lockTTL)
	if err != nil {
		return 0, fmt.Errorf("report.ProcessWorkspace: %w", err)
	}
	defer s.release(ctx, release, workspaceID)

	items, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("report.ProcessWorkspace: %w", err)
	}
	if len(items) == 0 {
		return 0, domain.NewValidationError("workspace", "no items")
	}

	n, err := s.enricher.EnrichPending(ctx, items)
	if err != nil {
		return n, fmt.Errorf("report.ProcessWorkspace: %w", err)
	}

	s.log.InfoContext(ctx, "workspace processed",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", workspaceID.String()),
		slog.Int("processed", n),
	)
	return n, nil
}

func (s *Service) synthesize(ctx context.Context, userID, workspaceID uuid.UUID, items []domain.InputItem) (*domain.MaintenanceReport, error) {
	if _, err := s.enricher.EnrichPending(ctx, items); err != nil {
		return nil, fmt.Errorf("enrich items: %w", err)
	}

	items, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("reload items: %w", err)
	}

	draft, err := s.synthesizer.SynthesizeReport(ctx, domain.BuildSynthesisInput(items))
	if err != nil {
		s.log.ErrorContext(ctx, "report synthesis failed",
			slog.String("workspace_id", workspaceID.String()),
			slog.String("error", err.Error()),
		)
		if !errors.Is(err, domain.ErrGateway) && ctx.Err() == nil {
			err = domain.NewGatewayError("synthesize report", err)
		}
		return nil, err
	}

	rep := domain.NewReport(userID, workspaceID, draft, s.now().UTC())
	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return rep, nil
}

func (s *Service) release(ctx context.Context, release func(context.Context) error, workspaceID uuid.UUID) {
	if err := release(context.WithoutCancel(ctx)); err != nil {
		s.log.WarnContext(ctx, "release workspace lock failed",
			slog.String("workspace_id", workspaceID.String()),
			slog.String("error", err.Error()),
		)
	}
}
