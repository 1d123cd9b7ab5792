package handler

import (
	"context"
	"net/http"

	"github.com/slyouthjobs/api/internal/model"
)

// DistrictService defines the district operations the handler needs
type DistrictService interface {
	List(ctx context.Context) ([]*model.District, error)
	JobCounts(ctx context.Context) ([]*model.DistrictJobCount, error)
}

// DistrictHandler handles district reference and stats endpoints
type DistrictHandler struct {
	districtService DistrictService
}

// NewDistrictHandler creates a new district handler
func NewDistrictHandler(districtService DistrictService) *DistrictHandler {
	return &DistrictHandler{
		districtService: districtService,
	}
}

// List handles GET /api/districts
func (h *DistrictHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, model.NewMethodNotAllowedError("GET"))
		return
	}

	districts, err := h.districtService.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, districts, nil, map[string]string{
		"self":  "/api/districts",
		"stats": "/api/stats/districts",
	})
}

// Stats handles GET /api/stats/districts
func (h *DistrictHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, model.NewMethodNotAllowedError("GET"))
		return
	}

	counts, err := h.districtService.JobCounts(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, counts, nil, map[string]string{
		"self": "/api/stats/districts",
	})
}
