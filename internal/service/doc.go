// Package service implements the business logic layer for the SL Youth
// Jobs API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrJobNotFound    = errors.New("job not found")
//	    ErrAlreadyApplied = errors.New("already applied to this job")
//	)
//
// # Example Usage
//
//	service := NewJobService(JobServiceConfig{
//	    JobRepo:  jobRepository,
//	    UserRepo: userRepository,
//	})
//	job, err := service.Create(ctx, employer, CreateJobRequest{
//	    Title: "Solar Technician",
//	})
package service
