package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/service/item"
)

// multipartMemory is the part of a multipart form kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

type itemService interface {
	Upload(ctx context.Context, input item.UploadInput) (*item.UploadResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.InputItem, error)
	List(ctx context.Context, input item.ListInput) ([]domain.InputItem, int, error)
	Open(ctx context.Context, id uuid.UUID) (*domain.InputItem, io.ReadCloser, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateTranscription(ctx context.Context, id uuid.UUID, text string) (*domain.InputItem, error)
	UpdateExtractedField(ctx context.Context, id uuid.UUID, field, value string) (*domain.InputItem, error)
	ReplaceExtractedData(ctx context.Context, id uuid.UUID, data domain.ExtractedData) (*domain.InputItem, error)
	Transcribe(ctx context.Context, id uuid.UUID) (*domain.InputItem, error)
}

// ItemHandler serves /uploads and /items endpoints.
type ItemHandler struct {
	svc    itemService
	limits config.UploadConfig
	log    *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, limits config.UploadConfig, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, limits: limits, log: logger.With("handler", "item")}
}

// Upload handles POST /uploads (multipart: files[], workspace_id?).
func (h *ItemHandler) Upload(w http.ResponseWriter, r *http.Request) {
	limit := h.limits.MaxBytes*int64(h.limits.MaxFiles) + multipartMemory
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	var input item.UploadInput
	if raw := r.FormValue("workspace_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid workspace_id")
			return
		}
		input.WorkspaceID = &id
	}

	headers := append(r.MultipartForm.File["files[]"], r.MultipartForm.File["files"]...)
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable file "+fh.Filename)
			return
		}
		defer f.Close()
		input.Files = append(input.Files, item.UploadFile{
			Filename:    fh.Filename,
			ContentType: partContentType(fh),
			Size:        fh.Size,
			Content:     f,
		})
	}

	res, err := h.svc.Upload(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUploadResponse(res))
}

func partContentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// List handles GET /items?kind=&limit=&offset=.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.svc.List(r.Context(), item.ListInput{
		Kind:   domain.ItemKind(r.URL.Query().Get("kind")),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[itemResponse]{Items: toItemResponses(items), Total: total})
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// File handles GET /items/{id}/file and streams the stored content.
func (h *ItemHandler) File(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	it, rc, err := h.svc.Open(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", it.MimeType)
	w.Header().Set("Content-Disposition", "inline; filename="+strconv.Quote(it.OriginalFilename))
	if it.FileSize > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(it.FileSize, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.log.WarnContext(r.Context(), "file stream interrupted",
			slog.String("item_id", id.String()),
			slog.String("error", err.Error()),
		)
	}
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type transcriptionRequest struct {
	Transcription string `json:"transcription"`
}

// UpdateTranscription handles PUT /items/{id}/transcription.
func (h *ItemHandler) UpdateTranscription(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req transcriptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	it, err := h.svc.UpdateTranscription(r.Context(), id, req.Transcription)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}

type extractedFieldRequest struct {
	Value string `json:"value"`
}

// UpdateExtractedField handles PUT /items/{id}/extracted/{field}. List fields
// take comma-separated text.
func (h *ItemHandler) UpdateExtractedField(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req extractedFieldRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	it, err := h.svc.UpdateExtractedField(r.Context(), id, r.PathValue("field"), req.Value)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}

type extractedDataRequest struct {
	EquipmentIDs []string `json:"equipment_ids"`
	PartNumbers  []string `json:"part_numbers"`
	DefectCodes  []string `json:"defect_codes"`
	Priority     string   `json:"priority"`
	Description  string   `json:"description"`
}

// ReplaceExtracted handles PUT /items/{id}/extracted.
func (h *ItemHandler) ReplaceExtracted(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req extractedDataRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	it, err := h.svc.ReplaceExtractedData(r.Context(), id, domain.ExtractedData{
		EquipmentIDs: req.EquipmentIDs,
		PartNumbers:  req.PartNumbers,
		DefectCodes:  req.DefectCodes,
		Priority:     domain.Priority(req.Priority),
		Description:  req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// Transcribe handles POST /items/{id}/transcribe.
func (h *ItemHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	it, err := h.svc.Transcribe(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}
