package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

// UpdateTranscription replaces the item's transcription text.
func (s *Service) UpdateTranscription(ctx context.Context, id uuid.UUID, text string) (*domain.InputItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validateTranscription(text); err != nil {
		return nil, err
	}
	it, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("item.UpdateTranscription: %w", err)
	}

	now := s.now().UTC()
	if err := s.items.UpdateTranscription(ctx, id, text, now); err != nil {
		return nil, fmt.Errorf("item.UpdateTranscription: %w", err)
	}
	it.Transcription = text
	it.UpdatedAt = now

	s.log.InfoContext(ctx, "transcription updated",
		slog.String("user_id", userID.String()),
		slog.String("item_id", id.String()),
	)
	return it, nil
}

// UpdateExtractedField edits a single extracted-data field from its text
// form. List fields take comma-separated values.
func (s *Service) UpdateExtractedField(ctx context.Context, id uuid.UUID, field, value string) (*domain.InputItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	it, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("item.UpdateExtractedField: %w", err)
	}

	var current domain.ExtractedData
	if it.Extracted != nil {
		current = *it.Extracted
	}
	next, err := current.WithField(field, value)
	if err != nil {
		return nil, err
	}
	next = next.Normalize()

	if err := s.saveExtracted(ctx, it, &next); err != nil {
		return nil, fmt.Errorf("item.UpdateExtractedField: %w", err)
	}

	s.log.InfoContext(ctx, "extracted field updated",
		slog.String("user_id", userID.String()),
		slog.String("item_id", id.String()),
		slog.String("field", field),
	)
	return it, nil
}

// ReplaceExtractedData overwrites the whole extracted-data document.
func (s *Service) ReplaceExtractedData(ctx context.Context, id uuid.UUID, data domain.ExtractedData) (*domain.InputItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validateExtracted(data); err != nil {
		return nil, err
	}
	it, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("item.ReplaceExtractedData: %w", err)
	}

	data = data.Normalize()
	if err := s.saveExtracted(ctx, it, &data); err != nil {
		return nil, fmt.Errorf("item.ReplaceExtractedData: %w", err)
	}

	s.log.InfoContext(ctx, "extracted data replaced",
		slog.String("user_id", userID.String()),
		slog.String("item_id", id.String()),
	)
	return it, nil
}

// Transcribe re-runs transcription and extraction on an audio item on
// demand and marks it processed. Gateway failures are stored on the item.
func (s *Service) Transcribe(ctx context.Context, id uuid.UUID) (*domain.InputItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	it, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("item.Transcribe: %w", err)
	}
	if it.Kind != domain.ItemKindAudio {
		return nil, domain.NewValidationError("kind", "not an audio item")
	}

	res, err := s.enricher.Retranscribe(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("item.Transcribe: %w", err)
	}
	it.Transcription = res.Transcription
	it.Extracted = res.Extracted
	it.Processed = true
	it.UpdatedAt = s.now().UTC()

	s.log.InfoContext(ctx, "item transcribed",
		slog.String("user_id", userID.String()),
		slog.String("item_id", id.String()),
	)
	return it, nil
}

func (s *Service) saveExtracted(ctx context.Context, it *domain.InputItem, data *domain.ExtractedData) error {
	now := s.now().UTC()
	if err := s.items.UpdateExtracted(ctx, it.ID, data, now); err != nil {
		return err
	}
	it.Extracted = data
	it.UpdatedAt = now
	return nil
}
