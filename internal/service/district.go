package service

import (
	"context"
	"sort"

	"github.com/slyouthjobs/api/internal/model"
)

// DistrictRepository defines the interface for district reference data
type DistrictRepository interface {
	Seed(ctx context.Context, districts []model.District) error
	List(ctx context.Context) ([]*model.District, error)
	Count(ctx context.Context) (int, error)
}

// DistrictService handles district reference data and per-district stats
type DistrictService struct {
	districtRepo DistrictRepository
	jobRepo      JobRepository
}

// DistrictServiceConfig holds configuration for the district service
type DistrictServiceConfig struct {
	DistrictRepo DistrictRepository
	JobRepo      JobRepository
}

// NewDistrictService creates a new district service
func NewDistrictService(cfg DistrictServiceConfig) *DistrictService {
	return &DistrictService{
		districtRepo: cfg.DistrictRepo,
		jobRepo:      cfg.JobRepo,
	}
}

// List returns all districts in alphabetical order.
func (s *DistrictService) List(ctx context.Context) ([]*model.District, error) {
	return s.districtRepo.List(ctx)
}

// JobCounts returns a job count for every district, including zeros for
// districts with no postings. Sorted by count descending; ties keep
// alphabetical order.
func (s *DistrictService) JobCounts(ctx context.Context) ([]*model.DistrictJobCount, error) {
	counts, err := s.jobRepo.CountByDistrict(ctx)
	if err != nil {
		return nil, err
	}

	// Zero-fill over the canonical district list so every district
	// appears even with no jobs.
	result := make([]*model.DistrictJobCount, 0, len(model.Districts))
	for _, d := range model.Districts {
		result = append(result, &model.DistrictJobCount{
			District: d.Name,
			JobCount: counts[d.Name],
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].JobCount > result[j].JobCount
	})

	return result, nil
}
