package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mercado/config"
	"mercado/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface for
// the admin access token.
type jwtService struct {
	secret    string
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: time.Hour * 12, // an admin working day
	}, nil
}

// GenerateAdminToken creates a signed token carrying the admin role.
func (s *jwtService) GenerateAdminToken(subject string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.accessTTL).Unix(),
		"role": "admin",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
}
