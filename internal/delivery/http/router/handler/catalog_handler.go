package handler

import (
	"net/http"

	"mercado/internal/delivery/http/response"
	"mercado/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the customer-facing product listing.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts returns the snapshot filtered with the storefront predicate.
// Both query parameters are optional.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	query := c.QueryParam("q")
	category := c.QueryParam("category")

	return response.Success(c, http.StatusOK, map[string]any{
		"products": h.catalog.Search(query, category),
		"loading":  h.catalog.Loading(),
	}, "")
}

// ListCategories returns the distinct categories of the snapshot.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.Categories(), "")
}
