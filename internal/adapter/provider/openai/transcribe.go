package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe sends audio to the /audio/transcriptions endpoint.
func (p *Provider) Transcribe(ctx context.Context, audio []byte, mimeType, filename string) (string, error) {
	text, err := p.transcribe(ctx, audio, mimeType, filename)
	if err != nil {
		return "", domain.NewGatewayError("openai.Transcribe", err)
	}
	return text, nil
}

func (p *Provider) transcribe(ctx context.Context, audio []byte, mimeType, filename string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio")
	}
	if filename == "" {
		filename = "audio"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if mimeType != "" {
		h.Set("Content-Type", mimeType)
	} else {
		h.Set("Content-Type", "application/octet-stream")
	}
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("write file part: %w", err)
	}
	if err := mw.WriteField("model", p.transcriptionModel); err != nil {
		return "", fmt.Errorf("write model field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	p.authorize(req)

	p.log.DebugContext(ctx, "transcription request",
		slog.String("filename", filename),
		slog.Int("bytes", len(audio)),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "transcription request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", decodeError(resp)
	}

	var out transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode transcription: %w", err)
	}
	return strings.TrimSpace(out.Text), nil
}
