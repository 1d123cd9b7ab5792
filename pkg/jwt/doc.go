// Package jwt provides JSON Web Token utilities for the SL Youth Jobs API.
//
// The jwt package handles token generation, validation, and claims
// extraction for authentication. Tokens are RSA-signed (RS256) and carry
// the user's id, email, and role.
//
// # Token Generation
//
// Generate tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "./keys/private.pem",
//	    PublicKeyPath:  "./keys/public.pem",
//	    Issuer:         "api.slyouthjobs.org",
//	    ExpirationMins: 1440,
//	})
//
//	token, err := service.Sign(jwt.Claims{UserID: user.ID, Email: user.Email, Role: string(user.Role)})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
//
// # Claims
//
// Standard JWT claims are supported alongside the custom ones:
//
//	type Claims struct {
//	    Issuer    string // Token issuer
//	    Subject   string // User ID
//	    IssuedAt  int64  // Token creation time
//	    ExpiresAt int64  // Token expiration
//	    Email     string
//	    UserID    string
//	    Role      string // jobseeker, employer, admin
//	}
package jwt
