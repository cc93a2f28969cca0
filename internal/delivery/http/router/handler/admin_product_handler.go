package handler

import (
	"net/http"

	"mercado/internal/delivery/http/response"
	"mercado/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminProductHandler exposes catalog management to the admin panel.
type AdminProductHandler struct {
	catalog usecase.CatalogUsecase
}

// NewAdminProductHandler is the constructor for AdminProductHandler, injected by Fx.
func NewAdminProductHandler(catalog usecase.CatalogUsecase) *AdminProductHandler {
	return &AdminProductHandler{catalog: catalog}
}

// ListProducts returns the snapshot filtered with the admin predicate.
func (h *AdminProductHandler) ListProducts(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"products": h.catalog.AdminSearch(c.QueryParam("q")),
		"loading":  h.catalog.Loading(),
	}, "")
}

// CreateProduct inserts a new catalog entry.
func (h *AdminProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.catalog.AddProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// UpdateProduct replaces an existing catalog entry.
func (h *AdminProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Invalid product ID")
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.catalog.UpdateProduct(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct removes a catalog entry.
func (h *AdminProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Invalid product ID")
	}

	if err := h.catalog.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// ReloadCatalog refreshes the snapshot from the remote collection.
func (h *AdminProductHandler) ReloadCatalog(c echo.Context) error {
	if err := h.catalog.Load(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"count": len(h.catalog.Products()),
	}, "Catalog reloaded")
}
