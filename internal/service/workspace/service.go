// Package workspace manages workspaces and the membership of input items in them.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

type workspaceRepo interface {
	Create(ctx context.Context, ws *domain.Workspace) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Workspace, int, error)
	Update(ctx context.Context, ws *domain.Workspace) error
	Touch(ctx context.Context, id uuid.UUID, now time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddItem(ctx context.Context, workspaceID, itemID uuid.UUID) (bool, error)
	RemoveItem(ctx context.Context, workspaceID, itemID uuid.UUID) (bool, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InputItem, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.InputItem, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides workspace operations for the authenticated user.
type Service struct {
	workspaces workspaceRepo
	items      itemRepo
	tx         txManager
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new workspace service.
func NewService(log *slog.Logger, workspaces workspaceRepo, items itemRepo, tx txManager) *Service {
	return &Service{
		workspaces: workspaces,
		items:      items,
		tx:         tx,
		log:        log.With("service", "workspace"),
		now:        time.Now,
	}
}

// owned loads a workspace and checks it belongs to userID.
func (s *Service) owned(ctx context.Context, userID, id uuid.UUID) (*domain.Workspace, error) {
	ws, err := s.workspaces.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	if !ws.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return ws, nil
}

func (s *Service) ownedItem(ctx context.Context, userID, id uuid.UUID) (*domain.InputItem, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if !it.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return it, nil
}
