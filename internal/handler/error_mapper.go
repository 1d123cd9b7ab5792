package handler

import (
	"errors"

	"github.com/slyouthjobs/api/internal/model"
	"github.com/slyouthjobs/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// ===== Authentication Errors → 401 =====
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrEmployerOnly),
		errors.Is(err, service.ErrJobseekerOnly):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrJobNotFound):
		return model.NewNotFoundError("job")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrAlreadyApplied):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})

	case errors.Is(err, service.ErrNameRequired):
		return model.NewValidationError([]model.FieldError{{Field: "name", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidRole):
		return model.NewValidationError([]model.FieldError{{Field: "role", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidDistrict),
		errors.Is(err, service.ErrDistrictRequired):
		return model.NewValidationError([]model.FieldError{{Field: "district", Message: err.Error()}})

	case errors.Is(err, service.ErrTitleRequired):
		return model.NewValidationError([]model.FieldError{{Field: "title", Message: err.Error()}})
	case errors.Is(err, service.ErrCompanyRequired):
		return model.NewValidationError([]model.FieldError{{Field: "company", Message: err.Error()}})
	case errors.Is(err, service.ErrLocationRequired):
		return model.NewValidationError([]model.FieldError{{Field: "location", Message: err.Error()}})
	case errors.Is(err, service.ErrTypeRequired):
		return model.NewValidationError([]model.FieldError{{Field: "type", Message: err.Error()}})
	case errors.Is(err, service.ErrCategoryRequired):
		return model.NewValidationError([]model.FieldError{{Field: "category", Message: err.Error()}})
	case errors.Is(err, service.ErrDescriptionRequired):
		return model.NewValidationError([]model.FieldError{{Field: "description", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails response
// with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
