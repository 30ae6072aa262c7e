// Package stub is a deterministic offline AI gateway used in development
// and end-to-end tests.
package stub

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

var codePattern = regexp.MustCompile(`\b[A-Z]{1,5}-\d+[A-Z0-9]*\b`)

// Provider implements every gateway interface without network calls.
type Provider struct{}

// New creates a stub Provider.
func New() *Provider { return &Provider{} }

// Transcribe returns the payload itself when it is printable UTF-8 text,
// otherwise a placeholder naming the file.
func (p *Provider) Transcribe(ctx context.Context, audio []byte, mimeType, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.NewGatewayError("stub.Transcribe", err)
	}
	if len(audio) == 0 {
		return "", domain.NewGatewayError("stub.Transcribe", fmt.Errorf("empty audio"))
	}
	if isText(audio) {
		return strings.TrimSpace(string(audio)), nil
	}
	return fmt.Sprintf("[audio %s, %d bytes]", filename, len(audio)), nil
}

// ExtractEntities classifies CODE-123 style tokens: P-/PN- prefixes are part
// numbers, D-/DC-/ERR- prefixes are defect codes, the rest equipment ids.
// Priority comes from keywords.
func (p *Provider) ExtractEntities(ctx context.Context, text string) (domain.ExtractedData, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExtractedData{}, domain.NewGatewayError("stub.ExtractEntities", err)
	}

	var d domain.ExtractedData
	for _, code := range codePattern.FindAllString(text, -1) {
		prefix, _, _ := strings.Cut(code, "-")
		switch prefix {
		case "P", "PN":
			d.PartNumbers = append(d.PartNumbers, code)
		case "D", "DC", "ERR":
			d.DefectCodes = append(d.DefectCodes, code)
		default:
			d.EquipmentIDs = append(d.EquipmentIDs, code)
		}
	}
	d.Priority = priorityOf(text)
	d.Description = firstSentence(text)
	return d.Normalize(), nil
}

// SynthesizeReport builds a report from the merged entities.
func (p *Provider) SynthesizeReport(ctx context.Context, in domain.SynthesisInput) (domain.ReportDraft, error) {
	if err := ctx.Err(); err != nil {
		return domain.ReportDraft{}, domain.NewGatewayError("stub.SynthesizeReport", err)
	}

	draft := domain.ReportDraft{
		Description: in.CombinedText,
		PartNumbers: in.PartNumbers,
		DefectCodes: in.DefectCodes,
		PartsUsed:   in.PartNumbers,
		Priority:    priorityOf(in.CombinedText),
	}
	if len(in.EquipmentIDs) > 0 {
		draft.EquipmentID = in.EquipmentIDs[0]
		draft.Title = "Maintenance of " + strings.Join(in.EquipmentIDs, ", ")
	}
	if len(in.DefectCodes) > 0 {
		draft.CorrectiveAction = "Inspect and resolve " + strings.Join(in.DefectCodes, ", ")
	}
	if len(in.Descriptions) > 0 && draft.Description == "" {
		draft.Description = strings.Join(in.Descriptions, "\n")
	}
	return draft.WithDefaults(), nil
}

// DetectEntities reports one centered box for any non-blank label.
func (p *Provider) DetectEntities(ctx context.Context, image []byte, mimeType, label string) ([]domain.Box, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewGatewayError("stub.DetectEntities", err)
	}
	if strings.TrimSpace(label) == "" || len(image) == 0 {
		return nil, nil
	}
	return []domain.Box{{XMin: 0.25, YMin: 0.25, XMax: 0.75, YMax: 0.75}}, nil
}

func isText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func priorityOf(text string) domain.Priority {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "critical") || strings.Contains(t, "emergency"):
		return domain.PriorityCritical
	case strings.Contains(t, "urgent") || strings.Contains(t, "leak"):
		return domain.PriorityHigh
	case strings.Contains(t, "routine") || strings.Contains(t, "cosmetic"):
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, ".!?\n"); i >= 0 {
		text = text[:i]
	}
	if r := []rune(text); len(r) > 200 {
		text = string(r[:200])
	}
	return strings.TrimSpace(text)
}
