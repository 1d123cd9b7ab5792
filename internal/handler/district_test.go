package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slyouthjobs/api/internal/model"
)

type mockDistrictService struct {
	listFunc      func(ctx context.Context) ([]*model.District, error)
	jobCountsFunc func(ctx context.Context) ([]*model.DistrictJobCount, error)
}

func (m *mockDistrictService) List(ctx context.Context) ([]*model.District, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockDistrictService) JobCounts(ctx context.Context) ([]*model.DistrictJobCount, error) {
	if m.jobCountsFunc != nil {
		return m.jobCountsFunc(ctx)
	}
	return nil, nil
}

func TestListDistricts_ReturnsCollection(t *testing.T) {
	t.Parallel()

	mockSvc := &mockDistrictService{
		listFunc: func(ctx context.Context) ([]*model.District, error) {
			return []*model.District{
				{Name: "Bo", Region: "Southern", Coordinates: "7.964, -11.739"},
				{Name: "Bombali", Region: "Northern", Coordinates: "9.276, -12.058"},
			}, nil
		},
	}
	handler := NewDistrictHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/districts", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp CollectionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	items, ok := resp.Data.([]interface{})
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 districts, got %v", resp.Data)
	}
	first := items[0].(map[string]interface{})
	if first["coordinates"] != "7.964, -11.739" {
		t.Errorf("expected district coordinates in response, got %v", first["coordinates"])
	}
}

func TestListDistricts_ServiceError_ReturnsInternal(t *testing.T) {
	t.Parallel()

	mockSvc := &mockDistrictService{
		listFunc: func(ctx context.Context) ([]*model.District, error) {
			return nil, errors.New("connection refused")
		},
	}
	handler := NewDistrictHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/districts", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
}

func TestDistrictStats_ReturnsCounts(t *testing.T) {
	t.Parallel()

	mockSvc := &mockDistrictService{
		jobCountsFunc: func(ctx context.Context) ([]*model.DistrictJobCount, error) {
			return []*model.DistrictJobCount{
				{District: "Western Area Urban (Freetown)", JobCount: 12},
				{District: "Bo", JobCount: 3},
				{District: "Falaba", JobCount: 0},
			}, nil
		},
	}
	handler := NewDistrictHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/districts", nil)
	rr := httptest.NewRecorder()

	handler.Stats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp CollectionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	items, ok := resp.Data.([]interface{})
	if !ok || len(items) != 3 {
		t.Fatalf("expected 3 entries, got %v", resp.Data)
	}
	first := items[0].(map[string]interface{})
	if first["district"] != "Western Area Urban (Freetown)" {
		t.Errorf("expected highest count first, got %v", first["district"])
	}
}

func TestDistrictStats_WrongMethod_ReturnsMethodNotAllowed(t *testing.T) {
	t.Parallel()

	handler := NewDistrictHandler(&mockDistrictService{})
	req := httptest.NewRequest(http.MethodPost, "/api/stats/districts", nil)
	rr := httptest.NewRecorder()

	handler.Stats(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}
