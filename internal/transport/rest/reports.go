package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/service/report"
)

type reportService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error)
	List(ctx context.Context, input report.ListInput) ([]domain.MaintenanceReport, int, error)
	Update(ctx context.Context, input report.UpdateInput) (*domain.MaintenanceReport, error)
	Finalize(ctx context.Context, id uuid.UUID) (*domain.MaintenanceReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*domain.ReportStats, error)
	AddAnnotation(ctx context.Context, input report.AnnotationInput) (*domain.ReportAnnotation, error)
	ListAnnotations(ctx context.Context, reportID uuid.UUID) ([]domain.ReportAnnotation, error)
	DeleteAnnotation(ctx context.Context, reportID, annotationID uuid.UUID) error
}

// ReportHandler serves /reports endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// List handles GET /reports?workspace_id=&limit=&offset=.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	input := report.ListInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	if raw := r.URL.Query().Get("workspace_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid workspace_id")
			return
		}
		input.WorkspaceID = &id
	}

	list, total, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[reportResponse]{Items: toReportResponses(list), Total: total})
}

// Stats handles GET /reports/stats.
func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// Get handles GET /reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rep, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

type updateReportRequest struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	EquipmentID      *string   `json:"equipment_id"`
	PartNumbers      *[]string `json:"part_numbers"`
	DefectCodes      *[]string `json:"defect_codes"`
	CorrectiveAction *string   `json:"corrective_action"`
	PartsUsed        *[]string `json:"parts_used"`
	NextServiceDate  *string   `json:"next_service_date"`
	Priority         *string   `json:"priority"`
	Status           *string   `json:"status"`
}

func joined(values *[]string) *string {
	if values == nil {
		return nil
	}
	s := domain.JoinList(*values)
	return &s
}

// Update handles PATCH /reports/{id}.
func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rep, err := h.svc.Update(r.Context(), report.UpdateInput{
		ID:               id,
		Title:            req.Title,
		Description:      req.Description,
		EquipmentID:      req.EquipmentID,
		PartNumbers:      joined(req.PartNumbers),
		DefectCodes:      joined(req.DefectCodes),
		CorrectiveAction: req.CorrectiveAction,
		PartsUsed:        joined(req.PartsUsed),
		NextServiceDate:  req.NextServiceDate,
		Priority:         req.Priority,
		Status:           req.Status,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// Finalize handles POST /reports/{id}/finalize.
func (h *ReportHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rep, err := h.svc.Finalize(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// Delete handles DELETE /reports/{id}.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Annotations handles GET /reports/{id}/annotations.
func (h *ReportHandler) Annotations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListAnnotations(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]annotationResponse, len(list))
	for i := range list {
		out[i] = toAnnotationResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, listResponse[annotationResponse]{Items: out, Total: len(out)})
}

type annotationRequest struct {
	InputItemID string             `json:"input_item_id"`
	Type        string             `json:"type"`
	Coordinates domain.Coordinates `json:"coordinates"`
	Note        string             `json:"note"`
}

// AddAnnotation handles POST /reports/{id}/annotations.
func (h *ReportHandler) AddAnnotation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req annotationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	itemID, err := uuid.Parse(req.InputItemID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid input_item_id")
		return
	}

	a, err := h.svc.AddAnnotation(r.Context(), report.AnnotationInput{
		ReportID:    id,
		InputItemID: itemID,
		Type:        domain.AnnotationType(req.Type),
		Coordinates: req.Coordinates,
		Note:        req.Note,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnnotationResponse(a))
}

// DeleteAnnotation handles DELETE /reports/{id}/annotations/{annotationID}.
func (h *ReportHandler) DeleteAnnotation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	annID, ok := pathUUID(w, r, "annotationID")
	if !ok {
		return
	}
	if err := h.svc.DeleteAnnotation(r.Context(), id, annID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
