package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for issuing and validating the admin
// access token. This abstracts the token format from the session store.
type TokenService interface {
	// GenerateAdminToken creates a signed access token for the given subject.
	GenerateAdminToken(subject string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
