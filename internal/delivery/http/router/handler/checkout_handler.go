package handler

import (
	"net/http"

	"mercado/internal/delivery/http/response"
	"mercado/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler turns the cart into a WhatsApp order hand-off.
type CheckoutHandler struct {
	order usecase.OrderUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(order usecase.OrderUsecase) *CheckoutHandler {
	return &CheckoutHandler{order: order}
}

// Checkout composes the order and returns the deep link the client opens.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.order.Checkout(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Order composed")
}
