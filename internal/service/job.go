package service

import (
	"context"
	"strings"
	"time"

	"github.com/slyouthjobs/api/internal/model"
)

// JobRepository defines the interface for job storage
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id string) (*model.Job, error)
	Search(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error)
	CountByDistrict(ctx context.Context) (map[string]int, error)
}

// JobService handles job posting operations
type JobService struct {
	jobRepo  JobRepository
	userRepo UserRepository
	now      func() time.Time
}

// JobServiceConfig holds configuration for the job service
type JobServiceConfig struct {
	JobRepo  JobRepository
	UserRepo UserRepository
	Now      func() time.Time // defaults to time.Now
}

// NewJobService creates a new job service
func NewJobService(cfg JobServiceConfig) *JobService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &JobService{
		jobRepo:  cfg.JobRepo,
		userRepo: cfg.UserRepo,
		now:      now,
	}
}

// CreateJobRequest represents a job posting request
type CreateJobRequest struct {
	Title           string
	Company         string
	Location        string
	District        string
	Type            string
	Category        string
	Description     string
	SalaryRange     string
	ExperienceLevel string
	Requirements    string
	IsRemote        bool
	IsGreenJob      bool
}

// Create validates and stores a new job posting for the given employer.
func (s *JobService) Create(ctx context.Context, employer *model.User, req CreateJobRequest) (*model.Job, error) {
	if !CanPostJob(employer.Role) {
		return nil, ErrEmployerOnly
	}

	if err := validateJobRequest(req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	job := &model.Job{
		Title:           strings.TrimSpace(req.Title),
		Company:         strings.TrimSpace(req.Company),
		Location:        strings.TrimSpace(req.Location),
		District:        strings.TrimSpace(req.District),
		Type:            strings.TrimSpace(req.Type),
		Category:        strings.TrimSpace(req.Category),
		Description:     strings.TrimSpace(req.Description),
		SalaryRange:     stringPtr(strings.TrimSpace(req.SalaryRange)),
		ExperienceLevel: stringPtr(strings.TrimSpace(req.ExperienceLevel)),
		Requirements:    stringPtr(strings.TrimSpace(req.Requirements)),
		IsRemote:        req.IsRemote,
		IsGreenJob:      req.IsGreenJob,
		EmployerID:      employer.ID,
		ExpiresAt:       now.Add(model.ExpiryDays * 24 * time.Hour),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// GetByID returns a job with its employer's public contact info.
func (s *JobService) GetByID(ctx context.Context, id string) (*model.JobDetail, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	detail := &model.JobDetail{Job: *job}

	employer, err := s.userRepo.GetByID(ctx, job.EmployerID)
	if err != nil {
		return nil, err
	}
	if employer != nil {
		detail.EmployerName = employer.Name
		detail.ContactEmail = employer.Email
	}

	return detail, nil
}

// Search returns jobs matching all set filters, newest first. The district
// filter is plain string equality; an unknown name simply matches nothing.
func (s *JobService) Search(ctx context.Context, filters *model.JobFilters) ([]*model.Job, error) {
	return s.jobRepo.Search(ctx, filters)
}

func validateJobRequest(req CreateJobRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(req.Company) == "" {
		return ErrCompanyRequired
	}
	if strings.TrimSpace(req.Location) == "" {
		return ErrLocationRequired
	}
	district := strings.TrimSpace(req.District)
	if district == "" {
		return ErrDistrictRequired
	}
	if !model.ValidDistrict(district) {
		return ErrInvalidDistrict
	}
	if strings.TrimSpace(req.Type) == "" {
		return ErrTypeRequired
	}
	if strings.TrimSpace(req.Category) == "" {
		return ErrCategoryRequired
	}
	if strings.TrimSpace(req.Description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}
