package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a product by ID. Returns nil without error when no
// product matches.
func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by id %s: %w", id, err)
	}
	return &product, nil
}

// Create persists a new product.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) (string, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return "", fmt.Errorf("failed to create product %s: %w", product.Name, err)
	}
	return product.ID, nil
}

// Delete removes a product by ID.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}
