package service

import (
	"github.com/slyouthjobs/api/internal/model"
	"github.com/slyouthjobs/api/pkg/jwt"
)

// Error definitions moved to errors.go

// TokenService issues and validates access tokens. Tokens are stateless
// JWTs; there is no refresh flow, clients log in again after expiry.
type TokenService struct {
	jwtService *jwt.Service
}

// TokenServiceConfig holds configuration for the token service
type TokenServiceConfig struct {
	JWTService *jwt.Service
}

// NewTokenService creates a new token service
func NewTokenService(cfg TokenServiceConfig) *TokenService {
	return &TokenService{
		jwtService: cfg.JWTService,
	}
}

// AccessToken represents an issued access token
type AccessToken struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// IssueToken creates a signed access token carrying the user's identity and role
func (s *TokenService) IssueToken(user *model.User) (*AccessToken, error) {
	claims := jwt.Claims{
		Subject: user.ID,
		UserID:  user.ID,
		Email:   user.Email,
		Role:    string(user.Role),
	}

	token, err := s.jwtService.Sign(claims)
	if err != nil {
		return nil, err
	}

	return &AccessToken{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(s.jwtService.GetExpiration().Seconds()),
	}, nil
}

// ValidateAccessToken validates an access token and returns the claims
func (s *TokenService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.jwtService.Validate(token)
}
