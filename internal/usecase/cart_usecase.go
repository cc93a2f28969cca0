package usecase

import (
	"context"

	"mercado/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase is the shopping cart store. Every mutation re-persists the
// whole item sequence.
type CartUsecase interface {
	// Items returns a copy of the cart contents in insertion order.
	Items() []entity.CartItem

	// Add puts one unit of the product in the cart, merging with an
	// existing line for the same product.
	Add(ctx context.Context, product *entity.Product)

	// UpdateQuantity sets the quantity of a line; zero or negative removes
	// the line.
	UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int)

	// Remove drops the line for the product. Absent product is a no-op.
	Remove(ctx context.Context, productID uuid.UUID)

	// Clear empties the cart.
	Clear(ctx context.Context)

	// Total returns the sum of line subtotals.
	Total() float64
}
