package service

import (
	"context"
	"errors"
	"strings"

	"github.com/slyouthjobs/api/internal/database"
	"github.com/slyouthjobs/api/internal/model"
)

// ApplicationRepository defines the interface for application storage
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	Exists(ctx context.Context, jobID, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Application, error)
}

// ApplicationService handles job application operations
type ApplicationService struct {
	appRepo ApplicationRepository
	jobRepo JobRepository
}

// ApplicationServiceConfig holds configuration for the application service
type ApplicationServiceConfig struct {
	AppRepo ApplicationRepository
	JobRepo JobRepository
}

// NewApplicationService creates a new application service
func NewApplicationService(cfg ApplicationServiceConfig) *ApplicationService {
	return &ApplicationService{
		appRepo: cfg.AppRepo,
		jobRepo: cfg.JobRepo,
	}
}

// ApplyRequest represents a job application request
type ApplyRequest struct {
	JobID       string
	CoverLetter string
}

// Apply records a jobseeker's application. The pre-check gives a friendly
// error on the common path; the composite unique index on (job_id, user_id)
// is what actually prevents duplicates under concurrent requests.
func (s *ApplicationService) Apply(ctx context.Context, user *model.User, req ApplyRequest) (*model.Application, error) {
	if !CanApply(user.Role) {
		return nil, ErrJobseekerOnly
	}

	jobID := strings.TrimSpace(req.JobID)
	if jobID == "" {
		return nil, ErrJobNotFound
	}

	exists, err := s.appRepo.Exists(ctx, jobID, user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	app := &model.Application{
		JobID:       jobID,
		UserID:      user.ID,
		CoverLetter: stringPtr(strings.TrimSpace(req.CoverLetter)),
		Status:      model.ApplicationStatusPending,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	return app, nil
}

// ListForUser returns the user's applications joined with job summaries,
// newest first. Applications whose job has since disappeared still appear,
// with empty job fields.
func (s *ApplicationService) ListForUser(ctx context.Context, userID string) ([]*model.ApplicationWithJob, error) {
	apps, err := s.appRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*model.ApplicationWithJob, 0, len(apps))
	for _, app := range apps {
		entry := &model.ApplicationWithJob{Application: *app}

		job, err := s.jobRepo.GetByID(ctx, app.JobID)
		if err != nil {
			return nil, err
		}
		if job != nil {
			entry.JobTitle = job.Title
			entry.JobCompany = job.Company
			entry.JobLocation = job.Location
			entry.JobDistrict = job.District
		}

		result = append(result, entry)
	}

	return result, nil
}
