package handler

import (
	"net/http"

	"mercado/internal/delivery/http/response"
	"mercado/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the admin login flow.
type AuthHandler struct {
	session usecase.SessionUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(session usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{session: session}
}

// Login handles the admin login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.session.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout clears the admin session.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}
