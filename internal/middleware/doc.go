// Package middleware provides HTTP middleware for the SL Youth Jobs API.
//
// The middleware package contains reusable middleware components for
// authentication, rate limiting, and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: JWT token validation and user extraction
//   - RateLimit: Request rate limiting per client IP
//   - Idempotency: Idempotent handling of retried write requests
//   - RequestID, Logger, Recovery, CORS, Compress: request plumbing
//
// # Authentication
//
// The auth middleware validates JWT tokens and extracts user information:
//
//	handler = middleware.Auth(authService)(handler)
//
// After authentication, handlers can access user info from the request
// context:
//
//	userID := middleware.GetUserID(r.Context())
//	role := middleware.GetUserRole(r.Context())
//
// # Composition
//
// Middleware composes with Chain, applied outermost-first:
//
//	handler = middleware.Chain(
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//	)(mux)
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUserRole(ctx): Returns authenticated user role
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
