package impl

import (
	"context"
	"log/slog"
	"sync"

	"mercado/internal/domain/entity"
	"mercado/internal/infra/kvstore"
	"mercado/internal/usecase"

	"github.com/google/uuid"
)

// cartService keeps the cart lines in memory and mirrors every mutation to
// the key-value adapter. The in-memory sequence is authoritative; a failed
// write only costs durability across restarts.
type cartService struct {
	mu    sync.RWMutex
	items []entity.CartItem

	store  kvstore.Store
	logger *slog.Logger
}

// NewCartService creates the cart store, hydrated from the adapter.
func NewCartService(store kvstore.Store, logger *slog.Logger) usecase.CartUsecase {
	svc := &cartService{
		store:  store,
		logger: logger,
	}
	svc.items = kvstore.GetOr(context.Background(), store, kvstore.KeyCart, []entity.CartItem(nil))
	if len(svc.items) > 0 {
		logger.Info("Cart restored", slog.Int("items", len(svc.items)))
	}

	return svc
}

// Items returns a copy of the cart contents in insertion order.
func (s *cartService) Items() []entity.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entity.CartItem, len(s.items))
	copy(items, s.items)

	return items
}

// Add puts one unit of the product in the cart. A product already present
// has its line quantity incremented instead of gaining a second line.
func (s *cartService) Add(ctx context.Context, product *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			s.persistLocked(ctx)

			return
		}
	}

	s.items = append(s.items, entity.CartItem{Product: *product, Quantity: 1})
	s.persistLocked(ctx)
}

// UpdateQuantity sets the quantity of the product's line. A quantity of zero
// or below removes the line entirely.
func (s *cartService) UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, productID)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			s.persistLocked(ctx)

			return
		}
	}
}

// Remove drops the product's line. Removing an absent product is a no-op.
func (s *cartService) Remove(ctx context.Context, productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.Product.ID == productID {
			removed = true

			continue
		}
		kept = append(kept, item)
	}
	s.items = kept

	if removed {
		s.persistLocked(ctx)
	}
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked(ctx)
}

// Total returns the sum of line subtotals.
func (s *cartService) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.items {
		total += item.Subtotal()
	}

	return total
}

// persistLocked writes the whole sequence under the cart key. Callers must
// hold the write lock.
func (s *cartService) persistLocked(ctx context.Context) {
	s.store.Set(ctx, kvstore.KeyCart, s.items)
}
