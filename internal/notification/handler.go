package notification

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"duewatch/pkg/middleware"
	"duewatch/pkg/response"
)

// Handler handles HTTP requests for notification operations
type Handler struct {
	service *Service
}

// NewHandler creates a new notification handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for notification endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/unread-count", h.UnreadCount)
	r.Post("/read", h.MarkRead)
	r.Post("/read-all", h.MarkAllRead)
	r.Delete("/{id}", h.Delete)

	return r
}

// NotificationResponse represents the response for a notification
type NotificationResponse struct {
	ID        string `json:"id"`
	RelatedID string `json:"related_id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Icon      string `json:"icon"`
	IconClass string `json:"icon_class"`
	Link      string `json:"link"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

func toResponse(n *Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		RelatedID: n.RelatedID,
		Type:      string(n.Type),
		Message:   n.Message,
		Icon:      n.Icon,
		IconClass: n.IconClass,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// List handles GET /notifications
//
//	@Summary	List notifications for the tenant
//	@Tags		notifications
//	@Param		page		query	int		false	"Page number"
//	@Param		per_page	query	int		false	"Page size"
//	@Param		unread_only	query	bool	false	"Only unread notifications"
//	@Success	200	{object}	response.APIResponse
//	@Router		/notifications [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		response.Unauthorized(w, "Tenant not resolved")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	unreadOnly := r.URL.Query().Get("unread_only") == "true"

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	notifications, total, err := h.service.List(r.Context(), tenantID, page, perPage, unreadOnly)
	if err != nil {
		response.InternalError(w, "Failed to list notifications")
		return
	}

	notificationResponses := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		notificationResponses[i] = toResponse(n)
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, notificationResponses, meta)
}

// UnreadCount handles GET /notifications/unread-count
//
//	@Summary	Count unread notifications
//	@Tags		notifications
//	@Success	200	{object}	response.APIResponse
//	@Router		/notifications/unread-count [get]
func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		response.Unauthorized(w, "Tenant not resolved")
		return
	}

	count, err := h.service.UnreadCount(r.Context(), tenantID)
	if err != nil {
		response.InternalError(w, "Failed to get unread count")
		return
	}

	response.JSON(w, http.StatusOK, map[string]int{"unread_count": count})
}

// MarkReadRequest represents the request to mark notifications as read
type MarkReadRequest struct {
	IDs []string `json:"ids"`
}

// MarkRead handles POST /notifications/read
//
//	@Summary	Mark notifications as read
//	@Tags		notifications
//	@Param		request	body	MarkReadRequest	true	"Notification ids"
//	@Success	200	{object}	response.APIResponse
//	@Router		/notifications/read [post]
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		response.Unauthorized(w, "Tenant not resolved")
		return
	}

	var req MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		response.BadRequest(w, "At least one notification id is required")
		return
	}

	if err := h.service.MarkRead(r.Context(), tenantID, req.IDs); err != nil {
		response.InternalError(w, "Failed to mark notifications as read")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Notifications marked as read"})
}

// MarkAllRead handles POST /notifications/read-all
//
//	@Summary	Mark all notifications as read
//	@Tags		notifications
//	@Success	200	{object}	response.APIResponse
//	@Router		/notifications/read-all [post]
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		response.Unauthorized(w, "Tenant not resolved")
		return
	}

	if err := h.service.MarkAllRead(r.Context(), tenantID); err != nil {
		response.InternalError(w, "Failed to mark all notifications as read")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "All notifications marked as read"})
}

// Delete handles DELETE /notifications/{id}
//
//	@Summary	Delete a notification
//	@Tags		notifications
//	@Param		id	path	string	true	"Notification id"
//	@Success	200	{object}	response.APIResponse
//	@Router		/notifications/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		response.Unauthorized(w, "Tenant not resolved")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invalid notification ID")
		return
	}

	if err := h.service.Delete(r.Context(), tenantID, id); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete notification")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Notification deleted"})
}
