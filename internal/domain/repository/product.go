package repository

import (
	"context"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	// FindByID retrieves a product by ID. Returns nil without error when no
	// product matches.
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	// Create persists a new product. Returns the ID of the created product.
	Create(ctx context.Context, product *entity.Product) (string, error)
	// Delete removes a product by ID.
	Delete(ctx context.Context, id string) error
}
