package repository

import (
	"context"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// WishlistRepository defines the interface for wishlist item data operations.
type WishlistRepository interface {
	// ExistsByUserIDAndProductID reports whether the product is already on
	// the user's wishlist.
	ExistsByUserIDAndProductID(ctx context.Context, userID, productID string) (bool, error)
	// FindByUserID retrieves all wishlist items for a user.
	FindByUserID(ctx context.Context, userID string) ([]*entity.WishlistItem, error)
	// Create persists a new wishlist item. Returns the ID of the created item.
	Create(ctx context.Context, item *entity.WishlistItem) (string, error)
	// DeleteByUserIDAndProductID removes the wishlist item for the user/product pair.
	DeleteByUserIDAndProductID(ctx context.Context, userID, productID string) error
	// DeleteByUserID removes all wishlist items for a user.
	DeleteByUserID(ctx context.Context, userID string) error
}
