package middleware

import (
	"strings"

	"mercado/internal/delivery/http/response"
	"mercado/internal/domain/service"
	"mercado/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the admin routes with the access token issued at
// login. The persisted session flag is checked as well so a logout
// invalidates tokens still in flight.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	session  usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, session usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, session: session}
}

// Authenticate validates the Bearer token and the admin role claim.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Failed to parse token claims")
		}

		role, _ := claims["role"].(string)
		if role != "admin" {
			return response.Forbidden(c, "FORBIDDEN", "Admin role required")
		}

		if !m.session.IsAuthenticated() {
			return response.Unauthorized(c, "SESSION_EXPIRED", "Session is no longer active")
		}

		if subject, ok := claims["sub"].(string); ok {
			c.Set("adminUser", subject)
		}

		return next(c)
	}
}
