package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

// Get returns one of the caller's reports.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	rep, err := s.ownedReport(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("report.Get: %w", err)
	}
	return rep, nil
}

// List returns the caller's reports, newest first, and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.MaintenanceReport, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	input = input.normalized()

	list, total, err := s.reports.List(ctx, domain.ReportFilter{
		UserID:      userID,
		WorkspaceID: input.WorkspaceID,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("report.List: %w", err)
	}
	return list, total, nil
}

// Update applies a partial edit. Finalized reports are read-only.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.MaintenanceReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rep, err := s.ownedReport(ctx, userID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("report.Update: %w", err)
	}
	if rep.Finalized {
		return nil, fmt.Errorf("report.Update: report is finalized: %w", domain.ErrConflict)
	}

	input.apply(rep)
	rep.UpdatedAt = s.now().UTC()
	if err := s.reports.Update(ctx, rep); err != nil {
		return nil, fmt.Errorf("report.Update: %w", err)
	}

	s.log.InfoContext(ctx, "report updated",
		slog.String("user_id", userID.String()),
		slog.String("report_id", rep.ID.String()),
	)
	return rep, nil
}

// Finalize locks a report against further edits. An open or in-progress
// report moves to completed. Finalizing twice is a no-op.
func (s *Service) Finalize(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	rep, err := s.ownedReport(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("report.Finalize: %w", err)
	}
	if rep.Finalized {
		return rep, nil
	}

	rep.Finalized = true
	if rep.Status == domain.ReportStatusOpen || rep.Status == domain.ReportStatusInProgress {
		rep.Status = domain.ReportStatusCompleted
	}
	rep.UpdatedAt = s.now().UTC()
	if err := s.reports.Update(ctx, rep); err != nil {
		return nil, fmt.Errorf("report.Finalize: %w", err)
	}

	s.log.InfoContext(ctx, "report finalized",
		slog.String("user_id", userID.String()),
		slog.String("report_id", rep.ID.String()),
	)
	return rep, nil
}

// Delete removes a report and its annotations.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.ownedReport(ctx, userID, id); err != nil {
		return fmt.Errorf("report.Delete: %w", err)
	}
	if err := s.reports.Delete(ctx, id); err != nil {
		return fmt.Errorf("report.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "report deleted",
		slog.String("user_id", userID.String()),
		slog.String("report_id", id.String()),
	)
	return nil
}

// Stats returns dashboard totals for the caller's reports.
func (s *Service) Stats(ctx context.Context) (*domain.ReportStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	stats, err := s.reports.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("report.Stats: %w", err)
	}
	return stats, nil
}
