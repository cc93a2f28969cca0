package handler

import (
	"net/http"

	"mercado/internal/delivery/http/response"
	"mercado/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StoreConfigHandler exposes the store branding.
type StoreConfigHandler struct {
	storeConfig usecase.StoreConfigUsecase
}

// NewStoreConfigHandler is the constructor for StoreConfigHandler, injected by Fx.
func NewStoreConfigHandler(storeConfig usecase.StoreConfigUsecase) *StoreConfigHandler {
	return &StoreConfigHandler{storeConfig: storeConfig}
}

// GetStoreConfig returns the current branding.
func (h *StoreConfigHandler) GetStoreConfig(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.storeConfig.Config(), "")
}

// UpdateStoreConfig merges a partial branding update. Admin only.
func (h *StoreConfigHandler) UpdateStoreConfig(c echo.Context) error {
	var input usecase.UpdateStoreConfigInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store config input")
	}

	updated := h.storeConfig.Update(c.Request().Context(), &input)

	return response.Success(c, http.StatusOK, updated, "Store config updated")
}
