package service

import (
	"context"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// WishlistService defines the wishlist operations exposed to the API layer.
type WishlistService interface {
	// AddToWishlist saves a product to the user's wishlist and schedules a
	// best-effort wishlist reminder. Adding a product that is already on the
	// wishlist is an error.
	AddToWishlist(ctx context.Context, userID, productID string) (*entity.WishlistItem, error)
	// RemoveFromWishlist removes a product from the user's wishlist.
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
	// GetUserWishlist retrieves all wishlist items for a user.
	GetUserWishlist(ctx context.Context, userID string) ([]*entity.WishlistItem, error)
	// ClearWishlist removes all wishlist items for a user.
	ClearWishlist(ctx context.Context, userID string) error
	// IsInWishlist reports whether the product is on the user's wishlist.
	IsInWishlist(ctx context.Context, userID, productID string) (bool, error)
}
