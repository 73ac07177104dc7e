package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"duewatch/internal/obligation"
	"duewatch/pkg/middleware"
	"duewatch/pkg/response"
)

// Handler handles HTTP requests for report generation
type Handler struct {
	service *Service
}

// NewHandler creates a new report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for report endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/{kind}", h.Generate)

	return r
}

// Generate handles POST /reports/{kind}
//
//	@Summary	Generate a report view-model
//	@Tags		reports
//	@Param		kind	path	string	true	"payables or receivables"
//	@Param		request	body	Request	true	"Report request"
//	@Success	200	{object}	response.APIResponse
//	@Router		/reports/{kind} [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		response.Unauthorized(w, "Tenant not resolved")
		return
	}

	var kind obligation.Kind
	switch chi.URLParam(r, "kind") {
	case "payables":
		kind = obligation.KindPayable
	case "receivables":
		kind = obligation.KindReceivable
	default:
		response.BadRequest(w, "Report kind must be payables or receivables")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	envelope, err := h.service.Generate(r.Context(), tenantID, kind, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownReportType),
			errors.Is(err, ErrInvalidPeriod),
			errors.Is(err, ErrInvalidStatus):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to generate report")
		}
		return
	}

	response.JSON(w, http.StatusOK, envelope)
}
