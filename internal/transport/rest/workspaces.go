package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/service/workspace"
)

type workspaceService interface {
	Create(ctx context.Context, input workspace.CreateInput) (*domain.Workspace, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	List(ctx context.Context, input workspace.ListInput) ([]domain.Workspace, int, error)
	Update(ctx context.Context, input workspace.UpdateInput) (*domain.Workspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, workspaceID, itemID uuid.UUID) error
	RemoveItem(ctx context.Context, workspaceID, itemID uuid.UUID) error
	ResolveMembers(ctx context.Context, workspaceID uuid.UUID) ([]domain.InputItem, error)
}

type pipelineService interface {
	Generate(ctx context.Context, workspaceID uuid.UUID) (*domain.MaintenanceReport, error)
	ProcessWorkspace(ctx context.Context, workspaceID uuid.UUID) (int, error)
}

// WorkspaceHandler serves /workspaces endpoints.
type WorkspaceHandler struct {
	svc      workspaceService
	pipeline pipelineService
	log      *slog.Logger
}

// NewWorkspaceHandler creates a WorkspaceHandler.
func NewWorkspaceHandler(svc workspaceService, pipeline pipelineService, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{svc: svc, pipeline: pipeline, log: logger.With("handler", "workspace")}
}

type createWorkspaceRequest struct {
	Name string `json:"name"`
}

type updateWorkspaceRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// Create handles POST /workspaces.
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWorkspaceRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	ws, err := h.svc.Create(r.Context(), workspace.CreateInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkspaceResponse(ws))
}

// List handles GET /workspaces?limit=&offset=.
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	list, total, err := h.svc.List(r.Context(), workspace.ListInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]workspaceResponse, len(list))
	for i := range list {
		out[i] = toWorkspaceResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, listResponse[workspaceResponse]{Items: out, Total: total})
}

// Get handles GET /workspaces/{id}.
func (h *WorkspaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	ws, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

// Update handles PATCH /workspaces/{id}.
func (h *WorkspaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateWorkspaceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	input := workspace.UpdateInput{ID: id, Name: req.Name}
	if req.Status != nil {
		st := domain.WorkspaceStatus(*req.Status)
		input.Status = &st
	}
	ws, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

// Delete handles DELETE /workspaces/{id}. Member items are kept.
func (h *WorkspaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Items handles GET /workspaces/{id}/items.
func (h *WorkspaceHandler) Items(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	items, err := h.svc.ResolveMembers(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[itemResponse]{Items: toItemResponses(items), Total: len(items)})
}

// AddItem handles PUT /workspaces/{id}/items/{itemID}. Adding a member twice is a no-op.
func (h *WorkspaceHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.svc.AddItem)
}

// RemoveItem handles DELETE /workspaces/{id}/items/{itemID}.
func (h *WorkspaceHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.svc.RemoveItem)
}

func (h *WorkspaceHandler) membership(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID, uuid.UUID) error) {
	wsID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	if err := op(r.Context(), wsID, itemID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ws, err := h.svc.Get(r.Context(), wsID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

type processResponse struct {
	Processed int `json:"processed"`
}

// Process handles POST /workspaces/{id}/process: enrichment only, no report.
func (h *WorkspaceHandler) Process(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	n, err := h.pipeline.ProcessWorkspace(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, processResponse{Processed: n})
}

// Report handles POST /workspaces/{id}/report.
func (h *WorkspaceHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rep, err := h.pipeline.Generate(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReportResponse(rep))
}
