package handler

import (
	"net/http"

	"mercado/internal/delivery/http/response"
	"mercado/internal/domain/entity"
	"mercado/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ViewHandler exposes the session view state.
type ViewHandler struct {
	session usecase.SessionUsecase
}

// NewViewHandler is the constructor for ViewHandler, injected by Fx.
func NewViewHandler(session usecase.SessionUsecase) *ViewHandler {
	return &ViewHandler{session: session}
}

type setViewInput struct {
	View string `json:"view" validate:"required"`
}

// GetView returns the active view and the admin flag.
func (h *ViewHandler) GetView(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"view":             h.session.View(),
		"is_authenticated": h.session.IsAuthenticated(),
	}, "")
}

// SetView switches the active view.
func (h *ViewHandler) SetView(c echo.Context) error {
	var input setViewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid view input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.session.SetView(entity.View(input.View)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"view": h.session.View()}, "View updated")
}
