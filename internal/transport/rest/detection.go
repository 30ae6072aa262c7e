package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

type detectionService interface {
	Detect(ctx context.Context, itemID uuid.UUID, label string) (*domain.DetectionResult, error)
	Accept(ctx context.Context, itemID uuid.UUID) (*domain.InputItem, error)
	Reject(ctx context.Context, itemID uuid.UUID) error
}

// DetectionHandler serves /items/{id}/detect endpoints.
type DetectionHandler struct {
	svc detectionService
	log *slog.Logger
}

// NewDetectionHandler creates a DetectionHandler.
func NewDetectionHandler(svc detectionService, logger *slog.Logger) *DetectionHandler {
	return &DetectionHandler{svc: svc, log: logger.With("handler", "detection")}
}

type detectRequest struct {
	Entity string `json:"entity"`
}

// Detect handles POST /items/{id}/detect.
func (h *DetectionHandler) Detect(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req detectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.Detect(r.Context(), id, req.Entity)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDetectionResponse(res))
}

// Accept handles POST /items/{id}/detect/accept.
func (h *DetectionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	it, err := h.svc.Accept(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// Reject handles POST /items/{id}/detect/reject.
func (h *DetectionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Reject(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
