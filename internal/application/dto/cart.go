package dto

import (
	"time"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// AddCartRequest is the DTO for adding a product to a cart.
type AddCartRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gt=0"`
}

// UpdateCartRequest is the DTO for changing the quantity of a cart item.
type UpdateCartRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CartItemResponse is the DTO for sending cart item information to the client.
type CartItemResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// ToCartItemResponse converts an entity.CartItem to a CartItemResponse DTO.
func ToCartItemResponse(item *entity.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		AddedAt:   item.AddedAt,
	}
}

// ToCartItemResponseList converts a slice of entity.CartItem to response DTOs.
func ToCartItemResponseList(items []*entity.CartItem) []CartItemResponse {
	list := make([]CartItemResponse, len(items))
	for i, item := range items {
		list[i] = ToCartItemResponse(item)
	}
	return list
}
