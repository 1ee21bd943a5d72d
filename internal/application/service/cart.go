package service

import (
	"context"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// CartService defines the cart operations exposed to the API layer.
type CartService interface {
	// AddToCart places a product in the user's cart, incrementing the
	// quantity when it is already there. Adding a new item schedules a
	// best-effort cart reminder.
	AddToCart(ctx context.Context, userID, productID string, quantity int) (*entity.CartItem, error)
	// UpdateQuantity sets the quantity of an existing cart item.
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*entity.CartItem, error)
	// RemoveFromCart removes a product from the user's cart.
	RemoveFromCart(ctx context.Context, userID, productID string) error
	// GetUserCart retrieves all cart items for a user.
	GetUserCart(ctx context.Context, userID string) ([]*entity.CartItem, error)
	// ClearCart removes all cart items for a user.
	ClearCart(ctx context.Context, userID string) error
}
