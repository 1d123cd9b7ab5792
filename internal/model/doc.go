// Package model defines domain entities and data structures for the SL Youth
// Jobs API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Account with a role (jobseeker, employer, admin)
//   - Job: Posting created by an employer, scoped to a district
//   - Application: A jobseeker's application to a job (one per job per user)
//   - District: One of Sierra Leone's 16 administrative districts
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Job struct {
//	    ID       string `json:"id"`
//	    Title    string `json:"title"`
//	    District string `json:"district"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
