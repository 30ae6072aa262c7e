package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/pkg/ctxutil"
)

// Create creates an empty draft workspace.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Workspace, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = domain.DefaultWorkspaceName(now)
	}

	ws := &domain.Workspace{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Status:    domain.WorkspaceStatusDraft,
		ItemIDs:   []uuid.UUID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.workspaces.Create(ctx, ws); err != nil {
		return nil, fmt.Errorf("workspace.Create: %w", err)
	}

	s.log.InfoContext(ctx, "workspace created",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", ws.ID.String()),
	)
	return ws, nil
}

// Get returns one of the caller's workspaces with its member ids.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	ws, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("workspace.Get: %w", err)
	}
	return ws, nil
}

// List returns the caller's workspaces, most recently updated first, and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Workspace, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	input = input.normalized()

	list, total, err := s.workspaces.ListByUser(ctx, userID, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("workspace.List: %w", err)
	}
	return list, total, nil
}

// Update renames a workspace and/or sets its status.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Workspace, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ws, err := s.owned(ctx, userID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("workspace.Update: %w", err)
	}

	if input.Name != nil {
		ws.Name = strings.TrimSpace(*input.Name)
	}
	if input.Status != nil {
		ws.Status = *input.Status
	}
	ws.UpdatedAt = s.now().UTC()

	if err := s.workspaces.Update(ctx, ws); err != nil {
		return nil, fmt.Errorf("workspace.Update: %w", err)
	}

	s.log.InfoContext(ctx, "workspace updated",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", ws.ID.String()),
	)
	return ws, nil
}

// Delete removes a workspace. Member items and generated reports are kept.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.owned(ctx, userID, id); err != nil {
		return fmt.Errorf("workspace.Delete: %w", err)
	}

	if err := s.workspaces.Delete(ctx, id); err != nil {
		return fmt.Errorf("workspace.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "workspace deleted",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", id.String()),
	)
	return nil
}
