package entity

import "time"

// Product represents a catalog item.
type Product struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Description   string    `gorm:"column:description;type:text"`
	CategoryID    string    `gorm:"column:category_id;index"`
	Price         float64   `gorm:"column:price"`
	StockQuantity int       `gorm:"column:stock_quantity"`
	Color         string    `gorm:"column:color"`
	Size          string    `gorm:"column:size"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for the Product entity.
func (Product) TableName() string {
	return "products"
}
