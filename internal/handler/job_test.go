package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/slyouthjobs/api/internal/model"
	"github.com/slyouthjobs/api/internal/service"
)

// ============================================================================
// Mocks
// ============================================================================

type mockJobService struct {
	createFunc  func(ctx context.Context, employer *model.User, req service.CreateJobRequest) (*model.Job, error)
	getByIDFunc func(ctx context.Context, id string) (*model.JobDetail, error)
	searchFunc  func(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error)
}

func (m *mockJobService) Create(ctx context.Context, employer *model.User, req service.CreateJobRequest) (*model.Job, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, employer, req)
	}
	return nil, nil
}

func (m *mockJobService) GetByID(ctx context.Context, id string) (*model.JobDetail, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, service.ErrJobNotFound
}

func (m *mockJobService) Search(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, filters)
	}
	return nil, nil
}

type mockUserGetter struct {
	user *model.User
	err  error
}

func (m *mockUserGetter) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func newTestJob() *model.Job {
	return &model.Job{
		ID:          "job:1",
		Title:       "Solar Panel Installer",
		Company:     "Freetown Solar Ltd",
		Location:    "Freetown",
		District:    "Western Area Urban (Freetown)",
		Type:        "full-time",
		Category:    "energy",
		Description: "Install and maintain rooftop solar systems.",
		IsGreenJob:  true,
		EmployerID:  "user:employer1",
		ExpiresAt:   time.Now().Add(30 * 24 * time.Hour),
		CreatedOn:   time.Now(),
	}
}

// ============================================================================
// Create Tests
// ============================================================================

func TestCreateJob_AsEmployer_ReturnsCreated(t *testing.T) {
	t.Parallel()

	mockSvc := &mockJobService{
		createFunc: func(ctx context.Context, employer *model.User, req service.CreateJobRequest) (*model.Job, error) {
			if employer.ID != "user:employer1" {
				t.Errorf("expected employer user:employer1, got %s", employer.ID)
			}
			return newTestJob(), nil
		},
	}
	handler := NewJobHandler(mockSvc, &mockUserGetter{user: newTestEmployer()})

	req := makeJSONRequest(http.MethodPost, "/api/jobs", CreateJobRequest{
		Title:       "Solar Panel Installer",
		Company:     "Freetown Solar Ltd",
		Location:    "Freetown",
		District:    "Western Area Urban (Freetown)",
		Type:        "full-time",
		Category:    "energy",
		Description: "Install and maintain rooftop solar systems.",
		IsGreenJob:  true,
	})
	req = withUserContext(req, "user:employer1")
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	data := parseDataResponse(t, rr.Body.Bytes())
	if data["title"] != "Solar Panel Installer" {
		t.Errorf("expected job title in response, got %v", data["title"])
	}
}

func TestCreateJob_AsJobseeker_ReturnsForbidden(t *testing.T) {
	t.Parallel()

	mockSvc := &mockJobService{
		createFunc: func(ctx context.Context, employer *model.User, req service.CreateJobRequest) (*model.Job, error) {
			return nil, service.ErrEmployerOnly
		},
	}
	handler := NewJobHandler(mockSvc, &mockUserGetter{user: newTestJobseeker()})

	req := makeJSONRequest(http.MethodPost, "/api/jobs", CreateJobRequest{Title: "X"})
	req = withUserContext(req, "user:seeker1")
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}

func TestCreateJob_Unauthenticated_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()

	handler := NewJobHandler(&mockJobService{}, &mockUserGetter{})
	req := makeJSONRequest(http.MethodPost, "/api/jobs", CreateJobRequest{Title: "X"})
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestCreateJob_MissingTitle_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	mockSvc := &mockJobService{
		createFunc: func(ctx context.Context, employer *model.User, req service.CreateJobRequest) (*model.Job, error) {
			return nil, service.ErrTitleRequired
		},
	}
	handler := NewJobHandler(mockSvc, &mockUserGetter{user: newTestEmployer()})

	req := makeJSONRequest(http.MethodPost, "/api/jobs", CreateJobRequest{})
	req = withUserContext(req, "user:employer1")
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
	problem := parseErrorResponse(t, rr.Body.Bytes())
	if len(problem.Errors) == 0 || problem.Errors[0].Field != "title" {
		t.Errorf("expected field error on title, got %+v", problem.Errors)
	}
}

// ============================================================================
// Get Tests
// ============================================================================

func TestGetJob_Found_ReturnsDetail(t *testing.T) {
	t.Parallel()

	mockSvc := &mockJobService{
		getByIDFunc: func(ctx context.Context, id string) (*model.JobDetail, error) {
			return &model.JobDetail{
				Job:          *newTestJob(),
				EmployerName: "Freetown Solar Ltd",
				ContactEmail: "hr@example.com",
			}, nil
		},
	}
	handler := NewJobHandler(mockSvc, &mockUserGetter{})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/job:1", nil)
	req.SetPathValue("jobId", "job:1")
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	data := parseDataResponse(t, rr.Body.Bytes())
	if data["contact_email"] != "hr@example.com" {
		t.Errorf("expected contact email in detail, got %v", data["contact_email"])
	}
}

func TestGetJob_NotFound_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	handler := NewJobHandler(&mockJobService{}, &mockUserGetter{})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/job:ghost", nil)
	req.SetPathValue("jobId", "job:ghost")
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

// ============================================================================
// Search Tests
// ============================================================================

func TestSearchJobs_NoFilters_ReturnsCollection(t *testing.T) {
	t.Parallel()

	mockSvc := &mockJobService{
		searchFunc: func(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error) {
			if filters.Limit != 0 {
				t.Errorf("search without a limit parameter should not truncate, got limit %d", filters.Limit)
			}
			return []*model.Job{newTestJob()}, nil
		},
	}
	handler := NewJobHandler(mockSvc, &mockUserGetter{})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	rr := httptest.NewRecorder()

	handler.Search(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestSearchJobs_PassesFilters(t *testing.T) {
	t.Parallel()

	var got *model.JobFilters
	mockSvc := &mockJobService{
		searchFunc: func(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error) {
			got = filters
			return nil, nil
		},
	}
	handler := NewJobHandler(mockSvc, &mockUserGetter{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/jobs?q=solar&district=Bo&type=full-time&experience=entry&is_green_job=true&limit=10&offset=20", nil)
	rr := httptest.NewRecorder()

	handler.Search(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if got == nil {
		t.Fatal("expected search to be called")
	}
	if got.Query == nil || *got.Query != "solar" {
		t.Errorf("expected query filter solar, got %v", got.Query)
	}
	if got.District == nil || *got.District != "Bo" {
		t.Errorf("expected district filter Bo, got %v", got.District)
	}
	if got.Experience == nil || *got.Experience != "entry" {
		t.Errorf("expected experience filter entry, got %v", got.Experience)
	}
	if got.IsGreenJob == nil || !*got.IsGreenJob {
		t.Error("expected is_green_job filter true")
	}
	if got.Limit != 10 || got.Offset != 20 {
		t.Errorf("expected limit 10 offset 20, got %d %d", got.Limit, got.Offset)
	}
}

func TestSearchJobs_InvalidBool_ReturnsBadRequest(t *testing.T) {
	t.Parallel()

	handler := NewJobHandler(&mockJobService{}, &mockUserGetter{})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?is_remote=maybe", nil)
	rr := httptest.NewRecorder()

	handler.Search(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestSearchJobs_UnknownDistrict_ReturnsEmptyCollection(t *testing.T) {
	t.Parallel()

	mockSvc := &mockJobService{
		searchFunc: func(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error) {
			if filters.District == nil || *filters.District != "Monrovia" {
				t.Errorf("expected district filter passed through, got %v", filters.District)
			}
			return []*model.Job{}, nil
		},
	}
	handler := NewJobHandler(mockSvc, &mockUserGetter{})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?district=Monrovia", nil)
	rr := httptest.NewRecorder()

	handler.Search(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestSearchJobs_LimitCapped(t *testing.T) {
	t.Parallel()

	mockSvc := &mockJobService{
		searchFunc: func(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error) {
			if filters.Limit != maxSearchLimit {
				t.Errorf("expected limit capped at %d, got %d", maxSearchLimit, filters.Limit)
			}
			return nil, nil
		},
	}
	handler := NewJobHandler(mockSvc, &mockUserGetter{})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?limit=1000", nil)
	rr := httptest.NewRecorder()

	handler.Search(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}
