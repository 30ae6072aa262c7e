package item

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

// Get returns one of the caller's items.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.InputItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	it, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("item.Get: %w", err)
	}
	return it, nil
}

// List returns the caller's items, newest first, and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.InputItem, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}
	input = input.normalized()

	items, total, err := s.items.ListByUser(ctx, userID, input.Kind, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("item.List: %w", err)
	}
	return items, total, nil
}

// Open returns the item together with a reader over its stored file.
// The caller closes the reader.
func (s *Service) Open(ctx context.Context, id uuid.UUID) (*domain.InputItem, io.ReadCloser, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}
	it, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, nil, fmt.Errorf("item.Open: %w", err)
	}

	rc, err := s.files.Open(ctx, it.FileKey)
	if err != nil {
		return nil, nil, fmt.Errorf("item.Open: %w", err)
	}
	return it, rc, nil
}

// Delete removes the item from every workspace, deletes its row and then its
// stored files. File removal failures are logged, not returned.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	it, err := s.owned(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("item.Delete: %w", err)
	}

	keys := []string{it.FileKey}
	if p, err := s.previews.GetByItem(ctx, id); err == nil {
		keys = append(keys, p.PreviewKey)
	}

	var removed int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if removed, err = s.workspaces.RemoveItemEverywhere(txCtx, id); err != nil {
			return fmt.Errorf("remove memberships: %w", err)
		}
		return s.items.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("item.Delete: %w", err)
	}

	for _, key := range keys {
		if err := s.files.Delete(ctx, key); err != nil {
			s.log.WarnContext(ctx, "delete item file failed",
				slog.String("item_id", id.String()),
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", id.String()),
		slog.Int("workspaces", removed),
	)
	return nil
}
