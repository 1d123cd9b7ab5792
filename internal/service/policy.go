package service

import "github.com/slyouthjobs/api/internal/model"

// Role policy. Pure functions so handlers and services share one source of
// truth for who may do what.

// CanPostJob reports whether a user with the given role may create job postings.
func CanPostJob(role model.UserRole) bool {
	return role == model.UserRoleEmployer
}

// CanApply reports whether a user with the given role may apply to jobs.
func CanApply(role model.UserRole) bool {
	return role == model.UserRoleJobseeker
}
