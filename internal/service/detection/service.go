// Package detection previews AI-detected entities on image items and lets
// the owner accept or reject the annotated copy.
package detection

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/provider"
)

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InputItem, error)
	UpdateFile(ctx context.Context, id uuid.UUID, fileKey, filename, mimeType string, size int64, now time.Time) error
}

type previewRepo interface {
	Upsert(ctx context.Context, p *domain.DetectionPreview) error
	GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.DetectionPreview, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
	ListOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.DetectionPreview, error)
}

type fileStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Service runs entity detection on image items.
type Service struct {
	items    itemRepo
	previews previewRepo
	files    fileStore
	detector provider.Detector
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new detection service.
func NewService(log *slog.Logger, items itemRepo, previews previewRepo, files fileStore, detector provider.Detector) *Service {
	return &Service{
		items:    items,
		previews: previews,
		files:    files,
		detector: detector,
		log:      log.With("service", "detection"),
		now:      time.Now,
	}
}

func (s *Service) ownedImage(ctx context.Context, userID, id uuid.UUID) (*domain.InputItem, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if !it.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	if it.Kind != domain.ItemKindImage {
		return nil, domain.NewValidationError("kind", "not an image item")
	}
	return it, nil
}

func (s *Service) read(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.files.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
