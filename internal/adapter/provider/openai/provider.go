// Package openai implements transcription (Whisper), extraction and report
// synthesis against any OpenAI-compatible API.
package openai

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/provider"
)

const temperature = 0.3

// Provider is both a provider.Transcriber and a provider.TextAnalyzer.
type Provider struct {
	baseURL            string
	apiKey             string
	chatModel          string
	transcriptionModel string
	httpClient         *http.Client
	log                *slog.Logger
}

// NewProvider creates a Provider. baseURL includes the /v1 prefix.
func NewProvider(cfg config.OpenAIConfig, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:            strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:             strings.TrimSpace(cfg.APIKey),
		chatModel:          cfg.ChatModel,
		transcriptionModel: cfg.TranscriptionModel,
		httpClient:         &http.Client{Timeout: timeout},
		log:                logger.With("adapter", "openai"),
	}
}

// ExtractEntities pulls structured fields out of free text.
func (p *Provider) ExtractEntities(ctx context.Context, text string) (domain.ExtractedData, error) {
	reply, err := p.chat(ctx, provider.ExtractionSystemPrompt, provider.ExtractionPrompt(text))
	if err != nil {
		return domain.ExtractedData{}, domain.NewGatewayError("openai.ExtractEntities", err)
	}

	data, err := provider.ParseExtraction(reply)
	if err != nil {
		return domain.ExtractedData{}, domain.NewGatewayError("openai.ExtractEntities", err)
	}
	return data, nil
}

// SynthesizeReport turns the combined workspace payload into a report draft.
func (p *Provider) SynthesizeReport(ctx context.Context, in domain.SynthesisInput) (domain.ReportDraft, error) {
	reply, err := p.chat(ctx, provider.SynthesisSystemPrompt, provider.SynthesisPrompt(in))
	if err != nil {
		return domain.ReportDraft{}, domain.NewGatewayError("openai.SynthesizeReport", err)
	}

	draft, err := provider.ParseReport(reply)
	if err != nil {
		return domain.ReportDraft{}, domain.NewGatewayError("openai.SynthesizeReport", err)
	}
	return draft, nil
}

func (p *Provider) authorize(req *http.Request) {
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}
}
