// Package handler provides HTTP request handlers for the SL Youth Jobs API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the dependencies needed to serve
// requests for a specific feature area (authentication, jobs, applications,
// districts).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the services it depends on
//     as small interfaces, which keeps handlers testable in isolation
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses via
//     MapServiceError
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources with optional pagination
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Write endpoints require authentication via JWT tokens. The auth middleware
// extracts the user ID and role and makes them available via
// middleware.GetUserID and middleware.GetUserRole.
//
// # Example Usage
//
//	handler := NewJobHandler(jobService, authService)
//	mux.HandleFunc("GET /api/jobs", handler.Search)
//	mux.HandleFunc("POST /api/jobs", handler.Create)
package handler
