// Package item handles uploads and the per-item operations on input items.
package item

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/service/enrichment"
)

type itemRepo interface {
	Create(ctx context.Context, it *domain.InputItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InputItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID, kind domain.ItemKind, limit, offset int) ([]domain.InputItem, int, error)
	UpdateTranscription(ctx context.Context, id uuid.UUID, text string, now time.Time) error
	UpdateExtracted(ctx context.Context, id uuid.UUID, data *domain.ExtractedData, now time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type workspaceRepo interface {
	Create(ctx context.Context, ws *domain.Workspace) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	AddItem(ctx context.Context, workspaceID, itemID uuid.UUID) (bool, error)
	Touch(ctx context.Context, id uuid.UUID, now time.Time) error
	RemoveItemEverywhere(ctx context.Context, itemID uuid.UUID) (int, error)
}

type previewRepo interface {
	GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.DetectionPreview, error)
}

type fileStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type enricher interface {
	ExtractText(ctx context.Context, r io.Reader) (enrichment.Result, bool)
	Retranscribe(ctx context.Context, item *domain.InputItem) (enrichment.Result, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides item operations for the authenticated user.
type Service struct {
	items      itemRepo
	workspaces workspaceRepo
	previews   previewRepo
	files      fileStore
	enricher   enricher
	tx         txManager
	limits     config.UploadConfig
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new item service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	workspaces workspaceRepo,
	previews previewRepo,
	files fileStore,
	enricher enricher,
	tx txManager,
	limits config.UploadConfig,
) *Service {
	return &Service{
		items:      items,
		workspaces: workspaces,
		previews:   previews,
		files:      files,
		enricher:   enricher,
		tx:         tx,
		limits:     limits,
		log:        log.With("service", "item"),
		now:        time.Now,
	}
}

func (s *Service) owned(ctx context.Context, userID, id uuid.UUID) (*domain.InputItem, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if !it.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return it, nil
}
