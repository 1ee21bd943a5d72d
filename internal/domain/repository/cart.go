package repository

import (
	"context"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// CartRepository defines the interface for cart item data operations.
type CartRepository interface {
	// FindByUserIDAndProductID retrieves the cart item for the user/product
	// pair. Returns nil without error when none exists.
	FindByUserIDAndProductID(ctx context.Context, userID, productID string) (*entity.CartItem, error)
	// FindByUserID retrieves all cart items for a user.
	FindByUserID(ctx context.Context, userID string) ([]*entity.CartItem, error)
	// Create persists a new cart item. Returns the ID of the created item.
	Create(ctx context.Context, item *entity.CartItem) (string, error)
	// Update persists changes to an existing cart item.
	Update(ctx context.Context, item *entity.CartItem) error
	// DeleteByUserIDAndProductID removes the cart item for the user/product pair.
	DeleteByUserIDAndProductID(ctx context.Context, userID, productID string) error
	// DeleteByUserID removes all cart items for a user.
	DeleteByUserID(ctx context.Context, userID string) error
}
