package enrichment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// maxTextBytes caps how much of a text upload is read for extraction.
const maxTextBytes = 1 << 20

// EnrichItem transcribes an unprocessed audio item and extracts entities from
// the transcript, then marks it processed. Gateway failures are recorded on
// the item rather than returned. It reports false when the item needed no
// work or another caller processed it first.
func (s *Service) EnrichItem(ctx context.Context, item *domain.InputItem) (bool, error) {
	if item.Processed || item.Kind != domain.ItemKindAudio {
		return false, nil
	}

	res, err := s.analyzeAudio(ctx, item)
	if err != nil {
		return false, fmt.Errorf("enrichment.EnrichItem: %w", err)
	}

	marked, err := s.items.MarkProcessed(ctx, item.ID, res.Transcription, res.Extracted, s.now().UTC())
	if err != nil {
		return false, fmt.Errorf("enrichment.EnrichItem: %w", err)
	}
	if !marked {
		s.log.InfoContext(ctx, "item already processed", slog.String("item_id", item.ID.String()))
	}
	return marked, nil
}

// EnrichPending runs EnrichItem over items with bounded concurrency and
// returns how many items this call processed. Items are started in slice
// order; the first storage error cancels the rest.
func (s *Service) EnrichPending(ctx context.Context, items []domain.InputItem) (int, error) {
	var processed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range items {
		item := &items[i]
		if item.Processed || item.Kind != domain.ItemKindAudio {
			continue
		}
		g.Go(func() error {
			ok, err := s.EnrichItem(gctx, item)
			if err != nil {
				return err
			}
			if ok {
				processed.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	n := int(processed.Load())
	if err != nil {
		return n, fmt.Errorf("enrichment.EnrichPending: %w", err)
	}

	s.log.InfoContext(ctx, "pending items enriched", slog.Int("processed", n), slog.Int("total", len(items)))
	return n, nil
}

// Retranscribe re-runs transcription and extraction on an audio item whatever
// its processed flag, and stores the outcome.
func (s *Service) Retranscribe(ctx context.Context, item *domain.InputItem) (Result, error) {
	res, err := s.analyzeAudio(ctx, item)
	if err != nil {
		return Result{}, fmt.Errorf("enrichment.Retranscribe: %w", err)
	}
	if err := s.items.SaveProcessed(ctx, item.ID, res.Transcription, res.Extracted, s.now().UTC()); err != nil {
		return Result{}, fmt.Errorf("enrichment.Retranscribe: %w", err)
	}
	return res, nil
}

// ExtractText reads an uploaded text file and extracts entities from it.
// processed is false only when the content could not be read, in which case
// the read error is returned as the transcription.
func (s *Service) ExtractText(ctx context.Context, r io.Reader) (res Result, processed bool) {
	raw, err := io.ReadAll(io.LimitReader(r, maxTextBytes))
	if err != nil {
		return Result{Transcription: "Error reading file: " + err.Error()}, false
	}

	text := string(raw)
	return Result{Transcription: text, Extracted: s.extract(ctx, text)}, true
}

// analyzeAudio returns an error only when ctx is done; every gateway failure
// becomes part of the result.
func (s *Service) analyzeAudio(ctx context.Context, item *domain.InputItem) (Result, error) {
	audio, err := s.readFile(ctx, item.FileKey)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		s.log.WarnContext(ctx, "read audio failed",
			slog.String("item_id", item.ID.String()),
			slog.String("error", err.Error()),
		)
		return Result{Transcription: "Error reading file: " + err.Error()}, nil
	}

	text, err := s.transcriber.Transcribe(ctx, audio, item.MimeType, item.OriginalFilename)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		s.log.WarnContext(ctx, "transcription failed",
			slog.String("item_id", item.ID.String()),
			slog.String("error", err.Error()),
		)
		return Result{Transcription: "Transcription error: " + err.Error()}, nil
	}

	data := s.extract(ctx, text)
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}
	return Result{Transcription: text, Extracted: data}, nil
}

func (s *Service) extract(ctx context.Context, text string) *domain.ExtractedData {
	data, err := s.analyzer.ExtractEntities(ctx, text)
	if err != nil {
		s.log.WarnContext(ctx, "entity extraction failed", slog.String("error", err.Error()))
		return &domain.ExtractedData{
			EquipmentIDs: []string{},
			PartNumbers:  []string{},
			DefectCodes:  []string{},
			Error:        "Entity extraction error: " + err.Error(),
		}
	}
	data = data.Normalize()
	return &data
}

func (s *Service) readFile(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.files.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
