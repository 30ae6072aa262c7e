package rest

import (
	"net/http"

	"github.com/heartmarshall/fieldreport-backend/internal/transport/middleware"
)

// Handlers bundles every REST handler served by the router.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Items      *ItemHandler
	Detection  *DetectionHandler
	Workspaces *WorkspaceHandler
	Reports    *ReportHandler
}

// NewRouter registers all routes. authLimit, when non-nil, wraps the
// unauthenticated auth endpoints; every other route except health requires a user, which the
// outer Auth middleware must have put on the context.
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	limit := middleware.Chain(authLimit)
	limited := func(f http.HandlerFunc) http.Handler { return limit(f) }
	mux.Handle("POST /auth/register", limited(h.Auth.Register))
	mux.Handle("POST /auth/login", limited(h.Auth.Login))
	mux.Handle("POST /auth/refresh", limited(h.Auth.Refresh))

	user := func(pattern string, f http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireUser(f))
	}

	user("POST /auth/logout", h.Auth.Logout)

	user("POST /uploads", h.Items.Upload)
	user("GET /items", h.Items.List)
	user("GET /items/{id}", h.Items.Get)
	user("GET /items/{id}/file", h.Items.File)
	user("DELETE /items/{id}", h.Items.Delete)
	user("PUT /items/{id}/transcription", h.Items.UpdateTranscription)
	user("PUT /items/{id}/extracted/{field}", h.Items.UpdateExtractedField)
	user("PUT /items/{id}/extracted", h.Items.ReplaceExtracted)
	user("POST /items/{id}/transcribe", h.Items.Transcribe)
	user("POST /items/{id}/detect", h.Detection.Detect)
	user("POST /items/{id}/detect/accept", h.Detection.Accept)
	user("POST /items/{id}/detect/reject", h.Detection.Reject)

	user("POST /workspaces", h.Workspaces.Create)
	user("GET /workspaces", h.Workspaces.List)
	user("GET /workspaces/{id}", h.Workspaces.Get)
	user("PATCH /workspaces/{id}", h.Workspaces.Update)
	user("DELETE /workspaces/{id}", h.Workspaces.Delete)
	user("GET /workspaces/{id}/items", h.Workspaces.Items)
	user("PUT /workspaces/{id}/items/{itemID}", h.Workspaces.AddItem)
	user("DELETE /workspaces/{id}/items/{itemID}", h.Workspaces.RemoveItem)
	user("POST /workspaces/{id}/process", h.Workspaces.Process)
	user("POST /workspaces/{id}/report", h.Workspaces.Report)

	user("GET /reports", h.Reports.List)
	user("GET /reports/stats", h.Reports.Stats)
	user("GET /reports/{id}", h.Reports.Get)
	user("PATCH /reports/{id}", h.Reports.Update)
	user("POST /reports/{id}/finalize", h.Reports.Finalize)
	user("DELETE /reports/{id}", h.Reports.Delete)
	user("GET /reports/{id}/annotations", h.Reports.Annotations)
	user("POST /reports/{id}/annotations", h.Reports.AddAnnotation)
	user("DELETE /reports/{id}/annotations/{annotationID}", h.Reports.DeleteAnnotation)

	return mux
}
