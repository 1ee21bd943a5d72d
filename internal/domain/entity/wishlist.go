package entity

import "time"

// WishlistItem represents a product saved to a user's wishlist.
type WishlistItem struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;index"`
	ProductID string    `gorm:"column:product_id;index"`
	AddedAt   time.Time `gorm:"column:added_at"`
}

// TableName specifies the table name for the WishlistItem entity.
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
