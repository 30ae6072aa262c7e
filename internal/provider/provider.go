// Package provider holds what every AI gateway adapter shares: the gateway
// interfaces, the prompts and the parsing of model output into domain types.
package provider

import (
	"context"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// Transcriber turns recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType, filename string) (string, error)
}

// TextAnalyzer extracts entities from free text and synthesizes reports.
type TextAnalyzer interface {
	ExtractEntities(ctx context.Context, text string) (domain.ExtractedData, error)
	SynthesizeReport(ctx context.Context, in domain.SynthesisInput) (domain.ReportDraft, error)
}

// Detector locates entities of one kind in an image. Boxes are normalized to 0..1.
type Detector interface {
	DetectEntities(ctx context.Context, image []byte, mimeType, label string) ([]domain.Box, error)
}
