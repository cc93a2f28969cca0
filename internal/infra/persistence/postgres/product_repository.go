// Package postgres contains the concrete implementation of the persistence
// layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/domain/repository"
	"mercado/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ListByName retrieves all products ordered by name ascending. The catalog
// display order is fixed here at fetch time.
func (repo *productRepository) ListByName(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product and backfills the server-assigned ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductCreateFailed.WrapMessage("missing required product fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// Update modifies an existing product keyed by its ID.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        productM.Name,
			"price":       productM.Price,
			"image_url":   productM.ImageURL,
			"description": productM.Description,
			"category":    productM.Category,
			"tags":        productM.Tags,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes the product with the given ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
// Tags tolerate the legacy comma-joined encoding; NULL maps to no tags.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	var category string
	if data.Category != nil {
		category = *data.Category
	}

	var tags entity.TagList
	if data.Tags != nil {
		tags = entity.ParseTags(*data.Tags)
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Description: data.Description,
		Category:    category,
		Tags:        tags,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
// An empty tag list is stored as NULL, matching the legacy rows.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	var category *string
	if data.Category != "" {
		category = &data.Category
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Description: data.Description,
		Category:    category,
		Tags:        data.Tags.Join(),
	}
}
