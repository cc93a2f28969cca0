package impl

import (
	"context"
	"log/slog"
	"sync"

	"mercado/internal/domain/catalog"
	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/domain/repository"
	"mercado/internal/errors"
	"mercado/internal/usecase"

	"github.com/google/uuid"
)

// catalogService caches the remote product collection and reconciles the
// cache with the outcome of each remote mutation. The cache is only ever
// touched in the success branch; a failed round-trip leaves it exactly as it
// was, with no optimistic update and no retry.
type catalogService struct {
	mu       sync.RWMutex
	products []*entity.Product
	loading  bool

	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCatalogService creates the catalog store. The snapshot starts empty;
// call Load to populate it.
func NewCatalogService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Load refreshes the snapshot from the remote collection. On failure the
// previous snapshot survives so the storefront keeps rendering stale data
// rather than nothing.
func (s *catalogService) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	products, err := s.productRepo.ListByName(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.logger.Error("Failed to load product catalog", slog.Any("error", err))

		return domainerrors.ErrCatalogLoadFailed.WrapMessage(err.Error())
	}

	s.products = products
	s.logger.Info("Product catalog loaded", slog.Int("count", len(products)))

	return nil
}

// Products returns the cached snapshot in catalog order.
func (s *catalogService) Products() []*entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// Loading reports whether a Load round-trip is in flight.
func (s *catalogService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// Categories returns the distinct categories of the snapshot, sorted.
func (s *catalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return catalog.Categories(s.products)
}

// Search filters the snapshot with the storefront predicate.
func (s *catalogService) Search(query, category string) []*entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return catalog.FilterStorefront(s.snapshotLocked(), query, category)
}

// AdminSearch filters the snapshot with the admin predicate.
func (s *catalogService) AdminSearch(query string) []*entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return catalog.FilterAdmin(s.snapshotLocked(), query)
}

// FindByID looks a product up in the snapshot.
func (s *catalogService) FindByID(id uuid.UUID) (*entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.products {
		if product.ID == id {
			return product, true
		}
	}

	return nil, false
}

// AddProduct persists a new product and appends it to the snapshot only
// after the insert succeeded.
func (s *catalogService) AddProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		Category:    input.Category,
		Tags:        entity.TagList(input.Tags),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product",
			slog.String("name", input.Name),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.mu.Lock()
	s.products = append(s.products, product)
	s.mu.Unlock()

	return product, nil
}

// UpdateProduct persists the replacement state and patches the snapshot only
// after the update succeeded.
func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          id,
		Name:        input.Name,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		Category:    input.Category,
		Tags:        entity.TagList(input.Tags),
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		s.logger.Error("Failed to update product",
			slog.String("id", id.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.mu.Lock()
	for i, cached := range s.products {
		if cached.ID == id {
			s.products[i] = product

			break
		}
	}
	s.mu.Unlock()

	return product, nil
}

// DeleteProduct removes the product remotely and drops it from the snapshot
// only after the delete succeeded.
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		s.logger.Error("Failed to delete product",
			slog.String("id", id.String()),
			slog.Any("error", err),
		)

		return err
	}

	s.mu.Lock()
	kept := s.products[:0]
	for _, cached := range s.products {
		if cached.ID != id {
			kept = append(kept, cached)
		}
	}
	s.products = kept
	s.mu.Unlock()

	return nil
}

// snapshotLocked copies the product slice so callers can iterate without
// holding the lock. Callers must hold at least the read lock.
func (s *catalogService) snapshotLocked() []*entity.Product {
	snapshot := make([]*entity.Product, len(s.products))
	copy(snapshot, s.products)

	return snapshot
}
