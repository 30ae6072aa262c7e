package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

// AddItem appends an item to a workspace. Adding an existing member is a
// no-op; updated_at is refreshed either way.
func (s *Service) AddItem(ctx context.Context, workspaceID, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var added bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.owned(txCtx, userID, workspaceID); err != nil {
			return err
		}
		if _, err := s.ownedItem(txCtx, userID, itemID); err != nil {
			return err
		}

		var err error
		if added, err = s.workspaces.AddItem(txCtx, workspaceID, itemID); err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		return s.workspaces.Touch(txCtx, workspaceID, s.now().UTC())
	})
	if err != nil {
		return fmt.Errorf("workspace.AddItem: %w", err)
	}

	s.log.InfoContext(ctx, "workspace item added",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", workspaceID.String()),
		slog.String("item_id", itemID.String()),
		slog.Bool("added", added),
	)
	return nil
}

// RemoveItem drops an item from a workspace. Removing a non-member is a
// no-op. The item itself is never deleted.
func (s *Service) RemoveItem(ctx context.Context, workspaceID, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var removed bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.owned(txCtx, userID, workspaceID); err != nil {
			return err
		}
		if _, err := s.ownedItem(txCtx, userID, itemID); err != nil {
			return err
		}

		var err error
		if removed, err = s.workspaces.RemoveItem(txCtx, workspaceID, itemID); err != nil {
			return fmt.Errorf("remove member: %w", err)
		}
		if !removed {
			return nil
		}
		return s.workspaces.Touch(txCtx, workspaceID, s.now().UTC())
	})
	if err != nil {
		return fmt.Errorf("workspace.RemoveItem: %w", err)
	}

	s.log.InfoContext(ctx, "workspace item removed",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", workspaceID.String()),
		slog.String("item_id", itemID.String()),
		slog.Bool("removed", removed),
	)
	return nil
}

// ResolveMembers returns the workspace's items in membership order.
func (s *Service) ResolveMembers(ctx context.Context, workspaceID uuid.UUID) ([]domain.InputItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.owned(ctx, userID, workspaceID); err != nil {
		return nil, fmt.Errorf("workspace.ResolveMembers: %w", err)
	}

	items, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("workspace.ResolveMembers: %w", err)
	}
	return items, nil
}
