package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidRole        = errors.New("role must be jobseeker or employer")
)

// ===== Authorization Errors =====
var (
	ErrEmployerOnly  = errors.New("only employers can post jobs")
	ErrJobseekerOnly = errors.New("only jobseekers can apply to jobs")
)

// ===== Job Errors =====
var (
	ErrJobNotFound         = errors.New("job not found")
	ErrTitleRequired       = errors.New("job title is required")
	ErrCompanyRequired     = errors.New("company is required")
	ErrLocationRequired    = errors.New("location is required")
	ErrDistrictRequired    = errors.New("district is required")
	ErrInvalidDistrict     = errors.New("not a Sierra Leone district")
	ErrTypeRequired        = errors.New("job type is required")
	ErrCategoryRequired    = errors.New("category is required")
	ErrDescriptionRequired = errors.New("description is required")
)

// ===== Application Errors =====
var (
	ErrAlreadyApplied = errors.New("already applied to this job")
)
