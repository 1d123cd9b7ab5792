package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slyouthjobs/api/internal/model"
)

// SeederService populates reference data and optional demo content for
// development environments.
type SeederService struct {
	districtRepo DistrictRepository
	userRepo     UserRepository
	authService  *AuthService
	jobService   *JobService
}

// SeederServiceConfig holds configuration for the seeder service
type SeederServiceConfig struct {
	DistrictRepo DistrictRepository
	UserRepo     UserRepository
	AuthService  *AuthService
	JobService   *JobService
}

// NewSeederService creates a new seeder service
func NewSeederService(cfg SeederServiceConfig) *SeederService {
	return &SeederService{
		districtRepo: cfg.DistrictRepo,
		userRepo:     cfg.UserRepo,
		authService:  cfg.AuthService,
		jobService:   cfg.JobService,
	}
}

// SeedDistricts upserts the canonical 16-district list. Safe to run at
// every startup.
func (s *SeederService) SeedDistricts(ctx context.Context) error {
	if err := s.districtRepo.Seed(ctx, model.Districts); err != nil {
		return fmt.Errorf("seeding districts: %w", err)
	}
	slog.Info("district reference data seeded", "count", len(model.Districts))
	return nil
}

// Demo accounts created by SeedDemoData. Passwords are development-only.
type demoAccount struct {
	email    string
	password string
	name     string
	role     string
	district string
	skills   []string
}

var demoAccounts = []demoAccount{
	{
		email:    "demo.employer@slyouthjobs.org",
		password: "demo-employer-1",
		name:     "Freetown Solar Ltd",
		role:     string(model.UserRoleEmployer),
		district: "Western Area Urban (Freetown)",
	},
	{
		email:    "demo.jobseeker@slyouthjobs.org",
		password: "demo-jobseeker-1",
		name:     "Fatmata Conteh",
		role:     string(model.UserRoleJobseeker),
		district: "Bo",
		skills:   []string{"customer service", "solar installation"},
	},
}

var demoJobs = []CreateJobRequest{
	{
		Title:       "Solar Panel Installation Technician",
		Company:     "Freetown Solar Ltd",
		Location:    "Freetown",
		District:    "Western Area Urban (Freetown)",
		Type:        model.JobTypeFullTime,
		Category:    "energy",
		Description: "Install and maintain rooftop solar systems across the Western Area.",
		SalaryRange: "SLE 3,000 - 4,500 / month",
		IsGreenJob:  true,
	},
	{
		Title:       "Community Outreach Officer",
		Company:     "Freetown Solar Ltd",
		Location:    "Bo Town",
		District:    "Bo",
		Type:        model.JobTypeContract,
		Category:    "community",
		Description: "Run village information sessions on off-grid solar products.",
		IsRemote:    false,
		IsGreenJob:  true,
	},
	{
		Title:       "Junior Data Clerk",
		Company:     "Freetown Solar Ltd",
		Location:    "Remote",
		District:    "Western Area Urban (Freetown)",
		Type:        model.JobTypePartTime,
		Category:    "administration",
		Description: "Enter installation and warranty records into the tracking system.",
		IsRemote:    true,
	},
}

// SeedDemoData creates a demo employer, a demo jobseeker, and a few job
// postings. It is a no-op when any user accounts already exist, so it never
// touches real data.
func (s *SeederService) SeedDemoData(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking existing users: %w", err)
	}
	if count > 0 {
		slog.Info("demo seed skipped, users already exist", "count", count)
		return nil
	}

	var employer *model.User
	for _, acct := range demoAccounts {
		result, err := s.authService.Register(ctx, RegisterRequest{
			Email:    acct.email,
			Password: acct.password,
			Name:     acct.name,
			Role:     acct.role,
			District: acct.district,
			Skills:   acct.skills,
		})
		if err != nil {
			return fmt.Errorf("seeding demo account %s: %w", acct.email, err)
		}
		if result.User.Role == model.UserRoleEmployer {
			employer = result.User
		}
	}
	if employer == nil {
		return fmt.Errorf("demo seed has no employer account")
	}

	for _, req := range demoJobs {
		if _, err := s.jobService.Create(ctx, employer, req); err != nil {
			return fmt.Errorf("seeding demo job %q: %w", req.Title, err)
		}
	}

	slog.Info("demo data seeded", "accounts", len(demoAccounts), "jobs", len(demoJobs))
	return nil
}
