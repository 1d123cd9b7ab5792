package handler

import (
	"context"
	"net/http"

	"github.com/slyouthjobs/api/internal/middleware"
	"github.com/slyouthjobs/api/internal/model"
	"github.com/slyouthjobs/api/internal/service"
)

// ApplicationService defines the application operations the handler needs
type ApplicationService interface {
	Apply(ctx context.Context, user *model.User, req service.ApplyRequest) (*model.Application, error)
	ListForUser(ctx context.Context, userID string) ([]*model.ApplicationWithJob, error)
}

// ApplicationHandler handles job application endpoints
type ApplicationHandler struct {
	appService ApplicationService
	users      UserGetter
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(appService ApplicationService, users UserGetter) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
		users:      users,
	}
}

// ApplyRequest represents the application request body
type ApplyRequest struct {
	JobID       string `json:"job_id"`
	CoverLetter string `json:"cover_letter,omitempty"`
}

// Apply handles POST /api/applications
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, model.NewMethodNotAllowedError("POST"))
		return
	}

	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req ApplyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.users.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	app, err := h.appService.Apply(r.Context(), user, service.ApplyRequest{
		JobID:       req.JobID,
		CoverLetter: req.CoverLetter,
	})

	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, app, map[string]string{
		"job":  "/api/jobs/" + app.JobID,
		"self": "/api/my-applications",
	})
}

// MyApplications handles GET /api/my-applications
func (h *ApplicationHandler) MyApplications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, model.NewMethodNotAllowedError("GET"))
		return
	}

	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	apps, err := h.appService.ListForUser(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, apps, nil, map[string]string{
		"self": "/api/my-applications",
	})
}
