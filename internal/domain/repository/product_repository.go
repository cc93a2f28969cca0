// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mercado/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is
// not found in the remote collection.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations against the remote products
// collection. The catalog store depends on this interface, not the concrete
// implementation.
type ProductRepository interface {
	// ListByName retrieves all products ordered by name ascending. This
	// ordering fixes the catalog display order for the session.
	ListByName(ctx context.Context) ([]*entity.Product, error)

	// Create inserts a new product and fills in the server-assigned ID.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product keyed by its ID.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
