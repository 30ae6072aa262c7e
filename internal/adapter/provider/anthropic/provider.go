// Package anthropic implements text extraction and report synthesis on the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/provider"
)

const temperature = 0.3

// Provider is a provider.TextAnalyzer backed by Claude.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewProvider creates a Provider. Calls are never retried by the client.
func NewProvider(cfg config.AnthropicConfig, timeout time.Duration, logger *slog.Logger) *Provider {
	return newProvider(cfg, logger,
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	)
}

// NewProviderWithURL creates a Provider against a custom base URL (for testing).
func NewProviderWithURL(baseURL string, cfg config.AnthropicConfig, logger *slog.Logger) *Provider {
	return newProvider(cfg, logger,
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
}

func newProvider(cfg config.AnthropicConfig, logger *slog.Logger, opts ...option.RequestOption) *Provider {
	return &Provider{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// ExtractEntities pulls equipment ids, part numbers, defect codes, priority
// and a summary out of free text.
func (p *Provider) ExtractEntities(ctx context.Context, text string) (domain.ExtractedData, error) {
	reply, err := p.complete(ctx, provider.ExtractionSystemPrompt, provider.ExtractionPrompt(text))
	if err != nil {
		return domain.ExtractedData{}, domain.NewGatewayError("anthropic.ExtractEntities", err)
	}

	data, err := provider.ParseExtraction(reply)
	if err != nil {
		return domain.ExtractedData{}, domain.NewGatewayError("anthropic.ExtractEntities", err)
	}
	return data, nil
}

// SynthesizeReport turns the combined workspace payload into a report draft.
func (p *Provider) SynthesizeReport(ctx context.Context, in domain.SynthesisInput) (domain.ReportDraft, error) {
	reply, err := p.complete(ctx, provider.SynthesisSystemPrompt, provider.SynthesisPrompt(in))
	if err != nil {
		return domain.ReportDraft{}, domain.NewGatewayError("anthropic.SynthesizeReport", err)
	}

	draft, err := provider.ParseReport(reply)
	if err != nil {
		return domain.ReportDraft{}, domain.NewGatewayError("anthropic.SynthesizeReport", err)
	}
	return draft, nil
}

func (p *Provider) complete(ctx context.Context, system, prompt string) (string, error) {
	start := time.Now()

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   p.maxTokens,
		Temperature: anthropic.Float(temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			p.log.ErrorContext(ctx, "anthropic request failed", slog.Int("status", apiErr.StatusCode))
		}
		return "", fmt.Errorf("messages api call: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("empty response")
	}

	p.log.DebugContext(ctx, "anthropic response",
		slog.String("model", p.model),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)
	return b.String(), nil
}
