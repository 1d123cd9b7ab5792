package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/slyouthjobs/api/internal/middleware"
	"github.com/slyouthjobs/api/internal/model"
	"github.com/slyouthjobs/api/internal/service"
)

// maxSearchLimit caps an explicitly requested result window. Searches
// without a limit parameter return every matching job.
const maxSearchLimit = 100

// JobService defines the job operations the handler needs
type JobService interface {
	Create(ctx context.Context, employer *model.User, req service.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.JobDetail, error)
	Search(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error)
}

// UserGetter loads the authenticated user's record
type UserGetter interface {
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
}

// JobHandler handles job board endpoints
type JobHandler struct {
	jobService JobService
	users      UserGetter
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService JobService, users UserGetter) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		users:      users,
	}
}

// CreateJobRequest represents the job posting request body
type CreateJobRequest struct {
	Title           string `json:"title"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	District        string `json:"district"`
	Type            string `json:"type"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	SalaryRange     string `json:"salary_range,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	Requirements    string `json:"requirements,omitempty"`
	IsRemote        bool   `json:"is_remote,omitempty"`
	IsGreenJob      bool   `json:"is_green_job,omitempty"`
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, model.NewMethodNotAllowedError("POST"))
		return
	}

	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req CreateJobRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	employer, err := h.users.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	job, err := h.jobService.Create(r.Context(), employer, service.CreateJobRequest{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		District:        req.District,
		Type:            req.Type,
		Category:        req.Category,
		Description:     req.Description,
		SalaryRange:     req.SalaryRange,
		ExperienceLevel: req.ExperienceLevel,
		Requirements:    req.Requirements,
		IsRemote:        req.IsRemote,
		IsGreenJob:      req.IsGreenJob,
	})

	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, job, map[string]string{
		"self": "/api/jobs/" + job.ID,
	})
}

// Get handles GET /api/jobs/{jobId}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, model.NewMethodNotAllowedError("GET"))
		return
	}

	jobID := r.PathValue("jobId")
	if jobID == "" {
		WriteError(w, model.NewNotFoundError("job"))
		return
	}

	detail, err := h.jobService.GetByID(r.Context(), jobID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, detail, map[string]string{
		"self": "/api/jobs/" + detail.ID,
	})
}

// Search handles GET /api/jobs
func (h *JobHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, model.NewMethodNotAllowedError("GET"))
		return
	}

	filters, pd := parseJobFilters(r)
	if pd != nil {
		WriteError(w, pd)
		return
	}

	jobs, err := h.jobService.Search(r.Context(), filters)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	// The full result set is the default; the pagination block appears
	// only when the caller asked for a window.
	var pagination *PaginationInfo
	if filters.Limit > 0 {
		pagination = &PaginationInfo{
			Limit:   filters.Limit,
			Offset:  filters.Offset,
			HasMore: len(jobs) == filters.Limit,
		}
	}

	WriteCollection(w, http.StatusOK, jobs, pagination, map[string]string{
		"self": "/api/jobs",
	})
}

// parseJobFilters reads search filters from query parameters. All filters
// are optional and combine conjunctively.
func parseJobFilters(r *http.Request) (*model.JobFilters, *model.ProblemDetails) {
	q := r.URL.Query()

	filters := &model.JobFilters{}

	if v := q.Get("q"); v != "" {
		filters.Query = &v
	}
	if v := q.Get("district"); v != "" {
		filters.District = &v
	}
	if v := q.Get("category"); v != "" {
		filters.Category = &v
	}
	if v := q.Get("type"); v != "" {
		filters.Type = &v
	}
	if v := q.Get("experience"); v != "" {
		filters.Experience = &v
	}

	if v := q.Get("is_remote"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, model.NewBadRequestError("is_remote must be true or false")
		}
		filters.IsRemote = &b
	}
	if v := q.Get("is_green_job"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, model.NewBadRequestError("is_green_job must be true or false")
		}
		filters.IsGreenJob = &b
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, model.NewBadRequestError("limit must be a positive integer")
		}
		if n > maxSearchLimit {
			n = maxSearchLimit
		}
		filters.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, model.NewBadRequestError("offset must be a non-negative integer")
		}
		filters.Offset = n
	}

	return filters, nil
}
