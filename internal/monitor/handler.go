package monitor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"duewatch/pkg/middleware"
	"duewatch/pkg/response"
)

// Handler exposes on-demand scans over HTTP
type Handler struct {
	emitter *Emitter
}

// NewHandler creates a new monitor handler
func NewHandler(emitter *Emitter) *Handler {
	return &Handler{emitter: emitter}
}

// Routes returns the router for monitoring endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/scan", h.Scan)

	return r
}

// Scan handles POST /monitor/scan
//
//	@Summary	Run a notification scan for the tenant now
//	@Tags		monitor
//	@Success	200	{object}	response.APIResponse
//	@Router		/monitor/scan [post]
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		response.Unauthorized(w, "Tenant not resolved")
		return
	}

	result := h.emitter.Scan(r.Context(), tenantID)
	response.JSON(w, http.StatusOK, result)
}
