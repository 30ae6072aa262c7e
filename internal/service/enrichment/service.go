// Package enrichment runs transcription and entity extraction on input items.
package enrichment

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/provider"
)

type itemRepo interface {
	MarkProcessed(ctx context.Context, id uuid.UUID, transcription string, data *domain.ExtractedData, now time.Time) (bool, error)
	SaveProcessed(ctx context.Context, id uuid.UUID, transcription string, data *domain.ExtractedData, now time.Time) error
}

type fileStore interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Service enriches items through the configured AI gateways.
type Service struct {
	items       itemRepo
	files       fileStore
	transcriber provider.Transcriber
	analyzer    provider.TextAnalyzer
	concurrency int
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new enrichment service. concurrency bounds the number
// of items enriched at once by EnrichPending.
func NewService(
	log *slog.Logger,
	items itemRepo,
	files fileStore,
	transcriber provider.Transcriber,
	analyzer provider.TextAnalyzer,
	concurrency int,
) *Service {
	return &Service{
		items:       items,
		files:       files,
		transcriber: transcriber,
		analyzer:    analyzer,
		concurrency: max(concurrency, 1),
		log:         log.With("service", "enrichment"),
		now:         time.Now,
	}
}

// Result is what one enrichment attempt produced. Extracted is nil when
// transcription failed and extraction was skipped.
type Result struct {
	Transcription string
	Extracted     *domain.ExtractedData
}
