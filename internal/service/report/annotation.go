package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

// AddAnnotation attaches an annotation to a report. The annotated item must
// belong to the report's owner.
func (s *Service) AddAnnotation(ctx context.Context, input AnnotationInput) (*domain.ReportAnnotation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedReport(ctx, userID, input.ReportID); err != nil {
		return nil, fmt.Errorf("report.AddAnnotation: %w", err)
	}
	it, err := s.items.GetByID(ctx, input.InputItemID)
	if err != nil {
		return nil, fmt.Errorf("report.AddAnnotation: get item: %w", err)
	}
	if !it.OwnedBy(userID) {
		return nil, fmt.Errorf("report.AddAnnotation: %w", domain.ErrForbidden)
	}

	a := &domain.ReportAnnotation{
		ID:          uuid.New(),
		ReportID:    input.ReportID,
		InputItemID: input.InputItemID,
		Type:        input.Type,
		Coordinates: input.Coordinates,
		Note:        strings.TrimSpace(input.Note),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.reports.CreateAnnotation(ctx, a); err != nil {
		return nil, fmt.Errorf("report.AddAnnotation: %w", err)
	}

	s.log.InfoContext(ctx, "annotation added",
		slog.String("user_id", userID.String()),
		slog.String("report_id", a.ReportID.String()),
		slog.String("annotation_id", a.ID.String()),
	)
	return a, nil
}

// ListAnnotations returns a report's annotations, oldest first.
func (s *Service) ListAnnotations(ctx context.Context, reportID uuid.UUID) ([]domain.ReportAnnotation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.ownedReport(ctx, userID, reportID); err != nil {
		return nil, fmt.Errorf("report.ListAnnotations: %w", err)
	}
	list, err := s.reports.ListAnnotations(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("report.ListAnnotations: %w", err)
	}
	return list, nil
}

// DeleteAnnotation removes one annotation of a report. An annotation that
// belongs to a different report is reported as not found.
func (s *Service) DeleteAnnotation(ctx context.Context, reportID, annotationID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.ownedReport(ctx, userID, reportID); err != nil {
		return fmt.Errorf("report.DeleteAnnotation: %w", err)
	}

	a, err := s.reports.GetAnnotation(ctx, annotationID)
	if err != nil {
		return fmt.Errorf("report.DeleteAnnotation: %w", err)
	}
	if a.ReportID != reportID {
		return fmt.Errorf("report.DeleteAnnotation: annotation %s: %w", annotationID, domain.ErrNotFound)
	}
	if err := s.reports.DeleteAnnotation(ctx, annotationID); err != nil {
		return fmt.Errorf("report.DeleteAnnotation: %w", err)
	}

	s.log.InfoContext(ctx, "annotation deleted",
		slog.String("user_id", userID.String()),
		slog.String("report_id", reportID.String()),
		slog.String("annotation_id", annotationID.String()),
	)
	return nil
}
