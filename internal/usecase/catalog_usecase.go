package usecase

import (
	"context"

	"mercado/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput carries the fields for a new catalog entry. The ID is
// assigned server-side.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// UpdateProductInput carries the full replacement state for an existing entry.
type UpdateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// CatalogUsecase is the product catalog store: a cached snapshot of the remote
// collection plus the mutations that keep the two in sync.
type CatalogUsecase interface {
	// Load refreshes the cached snapshot from the remote collection. On
	// failure the previous snapshot is kept.
	Load(ctx context.Context) error

	// Products returns the cached snapshot in catalog order.
	Products() []*entity.Product

	// Loading reports whether a Load round-trip is in flight.
	Loading() bool

	// Categories returns the distinct categories of the snapshot, sorted.
	Categories() []string

	// Search filters the snapshot with the storefront predicate.
	Search(query, category string) []*entity.Product

	// AdminSearch filters the snapshot with the admin predicate.
	AdminSearch(query string) []*entity.Product

	// FindByID looks a product up in the snapshot.
	FindByID(id uuid.UUID) (*entity.Product, bool)

	// AddProduct persists a new product and appends it to the snapshot on
	// success.
	AddProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct persists changed fields and patches the snapshot on
	// success.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes the product remotely and drops it from the
	// snapshot on success.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
