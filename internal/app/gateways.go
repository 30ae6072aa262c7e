package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/fieldreport-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/fieldreport-backend/internal/adapter/provider/gcp"
	"github.com/heartmarshall/fieldreport-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/fieldreport-backend/internal/adapter/provider/stub"
	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/provider"
)

// Gateways holds the AI adapters selected by configuration.
type Gateways struct {
	Text        provider.TextAnalyzer
	Transcriber provider.Transcriber
	Detector    provider.Detector

	closers []io.Closer
}

// NewGateways builds one adapter per AI concern. Providers shared between
// concerns (openai, stub) are constructed once.
func NewGateways(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (*Gateways, error) {
	g := &Gateways{}

	var (
		oa *openai.Provider
		st *stub.Provider
	)
	openAI := func() *openai.Provider {
		if oa == nil {
			oa = openai.NewProvider(cfg.OpenAI, cfg.RequestTimeout, logger)
		}
		return oa
	}
	stubbed := func() *stub.Provider {
		if st == nil {
			st = stub.New()
		}
		return st
	}

	switch cfg.TextProvider {
	case config.ProviderAnthropic:
		g.Text = anthropic.NewProvider(cfg.Anthropic, cfg.RequestTimeout, logger)
	case config.ProviderOpenAI:
		g.Text = openAI()
	case config.ProviderStub:
		g.Text = stubbed()
	default:
		return nil, fmt.Errorf("unknown text provider %q", cfg.TextProvider)
	}

	switch cfg.TranscriptionProvider {
	case config.ProviderOpenAI:
		g.Transcriber = openAI()
	case config.ProviderGCP:
		sp, err := gcp.NewSpeech(ctx, cfg.GCP, logger)
		if err != nil {
			return nil, err
		}
		g.closers = append(g.closers, sp)
		g.Transcriber = sp
	case config.ProviderStub:
		g.Transcriber = stubbed()
	default:
		return nil, fmt.Errorf("unknown transcription provider %q", cfg.TranscriptionProvider)
	}

	switch cfg.DetectionProvider {
	case config.ProviderGCP:
		v, err := gcp.NewVision(ctx, cfg.GCP, logger)
		if err != nil {
			_ = g.Close()
			return nil, err
		}
		g.closers = append(g.closers, v)
		g.Detector = v
	case config.ProviderStub:
		g.Detector = stubbed()
	default:
		_ = g.Close()
		return nil, fmt.Errorf("unknown detection provider %q", cfg.DetectionProvider)
	}

	logger.Info("ai gateways ready",
		slog.String("text", cfg.TextProvider),
		slog.String("transcription", cfg.TranscriptionProvider),
		slog.String("detection", cfg.DetectionProvider),
	)
	return g, nil
}

// Close releases gRPC connections held by cloud adapters.
func (g *Gateways) Close() error {
	var errs []error
	for _, c := range g.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
