package gcp

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"

	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// Speech is a provider.Transcriber backed by Speech-to-Text.
type Speech struct {
	client   *speech.Client
	language string
	log      *slog.Logger
}

// NewSpeech dials the Speech-to-Text API.
func NewSpeech(ctx context.Context, cfg config.GCPConfig, logger *slog.Logger) (*Speech, error) {
	c, err := speech.NewClient(ctx, ClientOptions(cfg.Credentials)...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	return &Speech{
		client:   c,
		language: cfg.SpeechLanguage,
		log:      logger.With("adapter", "gcp.speech"),
	}, nil
}

// Close releases the underlying connection.
func (s *Speech) Close() error {
	return s.client.Close()
}

// Transcribe runs a long-running recognition on inline audio and waits for it.
func (s *Speech) Transcribe(ctx context.Context, audio []byte, mimeType, filename string) (string, error) {
	if len(audio) == 0 {
		return "", domain.NewGatewayError("gcp.Transcribe", fmt.Errorf("empty audio"))
	}

	req := &speechpb.LongRunningRecognizeRequest{
		Config: recognitionConfig(s.language, mimeType, filename),
		Audio:  &speechpb.RecognitionAudio{AudioSource: &speechpb.RecognitionAudio_Content{Content: audio}},
	}

	op, err := s.client.LongRunningRecognize(ctx, req)
	if err != nil {
		s.log.ErrorContext(ctx, "speech recognize failed", slog.String("error", err.Error()))
		return "", domain.NewGatewayError("gcp.Transcribe", err)
	}
	resp, err := op.Wait(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "speech operation failed", slog.String("error", err.Error()))
		return "", domain.NewGatewayError("gcp.Transcribe", err)
	}

	text := joinTranscripts(resp)
	s.log.DebugContext(ctx, "speech transcribed",
		slog.String("filename", filename),
		slog.Int("results", len(resp.GetResults())),
	)
	return text, nil
}

func recognitionConfig(language, mimeType, filename string) *speechpb.RecognitionConfig {
	if language == "" {
		language = "en-US"
	}
	return &speechpb.RecognitionConfig{
		LanguageCode:               language,
		Encoding:                   inferSpeechEncoding(mimeType, filename),
		EnableAutomaticPunctuation: true,
	}
}

func inferSpeechEncoding(mimeType, filename string) speechpb.RecognitionConfig_AudioEncoding {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case strings.Contains(m, "wav") || ext == ".wav":
		return speechpb.RecognitionConfig_LINEAR16
	case strings.Contains(m, "flac") || ext == ".flac":
		return speechpb.RecognitionConfig_FLAC
	case strings.Contains(m, "mp3") || strings.Contains(m, "mpeg") || ext == ".mp3":
		return speechpb.RecognitionConfig_MP3
	case strings.Contains(m, "webm") || ext == ".webm":
		return speechpb.RecognitionConfig_WEBM_OPUS
	case strings.Contains(m, "ogg") || ext == ".ogg" || ext == ".opus":
		return speechpb.RecognitionConfig_OGG_OPUS
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED
	}
}

// joinTranscripts concatenates the top alternative of every result.
func joinTranscripts(resp *speechpb.LongRunningRecognizeResponse) string {
	parts := make([]string, 0, len(resp.GetResults()))
	for _, r := range resp.GetResults() {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if t := strings.TrimSpace(alts[0].GetTranscript()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
