package detection

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

const cleanupBatch = 100

// Accept replaces the original image with the pending preview and removes
// the preview. When the preview was written in another format the item moves
// to a key, filename and content type matching it. Without a pending preview
// it fails with ErrNotFound.
func (s *Service) Accept(ctx context.Context, itemID uuid.UUID) (*domain.InputItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	it, err := s.ownedImage(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("detection.Accept: %w", err)
	}
	p, err := s.previews.GetByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("detection.Accept: %w", err)
	}

	data, err := s.read(ctx, p.PreviewKey)
	if err != nil {
		return nil, fmt.Errorf("detection.Accept: read preview: %w", err)
	}
	oldKey := it.FileKey
	if ext := path.Ext(p.PreviewKey); !strings.EqualFold(ext, path.Ext(it.FileKey)) {
		it.FileKey = domain.ReplaceExt(it.FileKey, ext)
		it.Filename = domain.ReplaceExt(it.Filename, ext)
		if ct := mime.TypeByExtension(ext); ct != "" {
			it.MimeType = ct
		}
	}

	size, err := s.files.Save(ctx, it.FileKey, bytes.NewReader(data), int64(len(data)), it.MimeType)
	if err != nil {
		return nil, fmt.Errorf("detection.Accept: overwrite original: %w", err)
	}

	now := s.now().UTC()
	if err := s.items.UpdateFile(ctx, itemID, it.FileKey, it.Filename, it.MimeType, size, now); err != nil {
		return nil, fmt.Errorf("detection.Accept: %w", err)
	}
	if it.FileKey != oldKey {
		if err := s.files.Delete(ctx, oldKey); err != nil {
			s.log.WarnContext(ctx, "delete replaced original failed",
				slog.String("item_id", itemID.String()),
				slog.String("key", oldKey),
				slog.String("error", err.Error()),
			)
		}
	}
	if err := s.discard(ctx, p); err != nil {
		return nil, fmt.Errorf("detection.Accept: %w", err)
	}
	it.FileSize = size
	it.UpdatedAt = now

	s.log.InfoContext(ctx, "detection preview accepted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
		slog.Int64("size", size),
	)
	return it, nil
}

// Reject removes the pending preview and leaves the original untouched.
// Without a pending preview it fails with ErrNotFound.
func (s *Service) Reject(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.ownedImage(ctx, userID, itemID); err != nil {
		return fmt.Errorf("detection.Reject: %w", err)
	}
	p, err := s.previews.GetByItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("detection.Reject: %w", err)
	}
	if err := s.discard(ctx, p); err != nil {
		return fmt.Errorf("detection.Reject: %w", err)
	}

	s.log.InfoContext(ctx, "detection preview rejected",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	)
	return nil
}

// CleanupStale deletes previews created more than olderThan ago and returns
// how many were removed. It runs without a user in context.
func (s *Service) CleanupStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.now().UTC().Add(-olderThan)
	removed := 0

	for {
		batch, err := s.previews.ListOlderThan(ctx, cutoff, cleanupBatch)
		if err != nil {
			return removed, fmt.Errorf("detection.CleanupStale: %w", err)
		}

		progress := 0
		for i := range batch {
			if err := s.discard(ctx, &batch[i]); err != nil {
				s.log.WarnContext(ctx, "discard stale preview failed",
					slog.String("item_id", batch[i].ItemID.String()),
					slog.String("error", err.Error()),
				)
				continue
			}
			progress++
		}
		removed += progress

		if len(batch) < cleanupBatch || progress == 0 {
			break
		}
	}

	s.log.InfoContext(ctx, "stale previews removed", slog.Int("count", removed), slog.Time("cutoff", cutoff))
	return removed, nil
}

// discard deletes the preview file, then its row. A row already removed by a
// concurrent call is not an error.
func (s *Service) discard(ctx context.Context, p *domain.DetectionPreview) error {
	if err := s.files.Delete(ctx, p.PreviewKey); err != nil {
		return fmt.Errorf("delete preview file: %w", err)
	}
	if err := s.previews.Delete(ctx, p.ItemID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete preview: %w", err)
	}
	return nil
}
