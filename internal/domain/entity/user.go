package entity

import (
	"time"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/constant"
)

// User represents a customer account.
type User struct {
	ID           string        `gorm:"column:id;primaryKey"`
	Email        string        `gorm:"column:email;uniqueIndex"`
	PasswordHash string        `gorm:"column:password_hash"`
	FullName     string        `gorm:"column:full_name"`
	Phone        string        `gorm:"column:phone"`
	Role         constant.Role `gorm:"column:role"`
	CreatedAt    time.Time     `gorm:"column:created_at"`
	Addresses    []Address     `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// DefaultAddress returns the user's default delivery address, falling back to
// the first one. Returns nil when the user has no addresses.
func (u *User) DefaultAddress() *Address {
	for i := range u.Addresses {
		if u.Addresses[i].IsDefault {
			return &u.Addresses[i]
		}
	}
	if len(u.Addresses) > 0 {
		return &u.Addresses[0]
	}
	return nil
}

// Address is a delivery address attached to a user account.
type Address struct {
	ID          string `gorm:"column:id;primaryKey"`
	UserID      string `gorm:"column:user_id;index"`
	AddressLine string `gorm:"column:address_line"`
	City        string `gorm:"column:city"`
	State       string `gorm:"column:state"`
	PostalCode  string `gorm:"column:postal_code"`
	Country     string `gorm:"column:country"`
	IsDefault   bool   `gorm:"column:is_default"`
}

// TableName specifies the table name for the Address entity.
func (Address) TableName() string {
	return "addresses"
}
