package handler

import (
	"net/http"

	"mercado/internal/delivery/http/response"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler exposes the cart store over HTTP.
type CartHandler struct {
	cart    usecase.CartUsecase
	catalog usecase.CatalogUsecase
	session usecase.SessionUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, catalog usecase.CatalogUsecase, session usecase.SessionUsecase) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog, session: session}
}

type addItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

type updateItemInput struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) cartPayload() map[string]any {
	return map[string]any{
		"items":   h.cart.Items(),
		"total":   h.cart.Total(),
		"is_open": h.session.IsCartOpen(),
	}
}

// GetCart returns the cart contents and total.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartPayload(), "")
}

// AddItem puts one unit of a catalog product in the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input addItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, ok := h.catalog.FindByID(input.ProductID)
	if !ok {
		return errors.WithStack(domainerrors.ErrProductNotFound)
	}

	h.cart.Add(c.Request().Context(), product)

	return response.Success(c, http.StatusOK, h.cartPayload(), "Item added")
}

// UpdateItem sets the quantity of a cart line. Zero or below removes it.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Invalid product ID")
	}

	var input updateItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	h.cart.UpdateQuantity(c.Request().Context(), productID, input.Quantity)

	return response.Success(c, http.StatusOK, h.cartPayload(), "Quantity updated")
}

// RemoveItem drops a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Invalid product ID")
	}

	h.cart.Remove(c.Request().Context(), productID)

	return response.Success(c, http.StatusOK, h.cartPayload(), "Item removed")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	h.cart.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, h.cartPayload(), "Cart cleared")
}

// ToggleCart flips the cart drawer.
func (h *CartHandler) ToggleCart(c echo.Context) error {
	open := h.session.ToggleCart()

	return response.Success(c, http.StatusOK, map[string]bool{"is_open": open}, "")
}
