package entity

import "time"

// CartItem represents a product placed in a user's shopping cart.
type CartItem struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;index"`
	ProductID string    `gorm:"column:product_id;index"`
	Quantity  int       `gorm:"column:quantity"`
	AddedAt   time.Time `gorm:"column:added_at"`
}

// TableName specifies the table name for the CartItem entity.
func (CartItem) TableName() string {
	return "cart_items"
}
