package dto

import (
	"time"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// AddWishlistRequest is the DTO for saving a product to a wishlist.
type AddWishlistRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
}

// WishlistItemResponse is the DTO for sending wishlist item information to the client.
type WishlistItemResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// ToWishlistItemResponse converts an entity.WishlistItem to a WishlistItemResponse DTO.
func ToWishlistItemResponse(item *entity.WishlistItem) WishlistItemResponse {
	return WishlistItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		AddedAt:   item.AddedAt,
	}
}

// ToWishlistItemResponseList converts a slice of entity.WishlistItem to response DTOs.
func ToWishlistItemResponseList(items []*entity.WishlistItem) []WishlistItemResponse {
	list := make([]WishlistItemResponse, len(items))
	for i, item := range items {
		list[i] = ToWishlistItemResponse(item)
	}
	return list
}
