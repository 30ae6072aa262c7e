package detection

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/imaging"
	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

const maxLabelLen = 100

// Detect asks the detector for every entity matching label, draws the boxes
// onto a copy of the image and stores it as the item's pending preview. The
// original file is not touched. When nothing is found no preview is written.
func (s *Service) Detect(ctx context.Context, itemID uuid.UUID, label string) (*domain.DetectionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, domain.NewValidationError("label", "required")
	}
	if utf8.RuneCountInString(label) > maxLabelLen {
		return nil, domain.NewValidationError("label", "max 100 characters")
	}

	it, err := s.ownedImage(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("detection.Detect: %w", err)
	}

	original, err := s.read(ctx, it.FileKey)
	if err != nil {
		return nil, fmt.Errorf("detection.Detect: read original: %w", err)
	}

	boxes, err := s.detector.DetectEntities(ctx, original, it.MimeType, label)
	if err != nil {
		s.log.WarnContext(ctx, "entity detection failed",
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()),
		)
		if !errors.Is(err, domain.ErrGateway) && ctx.Err() == nil {
			err = domain.NewGatewayError("detect entities", err)
		}
		return nil, fmt.Errorf("detection.Detect: %w", err)
	}

	result := &domain.DetectionResult{
		ItemID:      itemID,
		Label:       label,
		OriginalKey: it.FileKey,
		Detections:  []domain.Detection{},
	}
	if len(boxes) == 0 {
		s.log.InfoContext(ctx, "nothing detected",
			slog.String("user_id", userID.String()),
			slog.String("item_id", itemID.String()),
			slog.String("label", label),
		)
		return result, nil
	}

	annotated, err := imaging.Annotate(original, boxes, label)
	if err != nil {
		return nil, fmt.Errorf("detection.Detect: %w", err)
	}

	ext := ""
	if annotated.Reencoded() {
		ext = annotated.Ext()
	}
	previewKey := domain.PreviewKeyFor(it.FileKey, ext)
	if _, err := s.files.Save(ctx, previewKey, bytes.NewReader(annotated.Data), int64(len(annotated.Data)), annotated.MimeType()); err != nil {
		return nil, fmt.Errorf("detection.Detect: save preview: %w", err)
	}
	if err := s.previews.Upsert(ctx, &domain.DetectionPreview{
		ItemID:     itemID,
		PreviewKey: previewKey,
		Label:      label,
		BoxCount:   len(boxes),
		CreatedAt:  s.now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("detection.Detect: %w", err)
	}

	result.PreviewKey = previewKey
	for i, b := range boxes {
		b = b.Clamp()
		result.Detections = append(result.Detections, domain.Detection{
			Index: i + 1,
			Box:   b,
			Pixel: b.Pixels(annotated.Width, annotated.Height),
		})
	}

	s.log.InfoContext(ctx, "detection preview created",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
		slog.String("label", label),
		slog.Int("count", result.Count()),
	)
	return result, nil
}
