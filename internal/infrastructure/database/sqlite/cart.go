package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new instance of CartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUserIDAndProductID retrieves the cart item for the user/product pair.
// Returns nil without error when none exists.
func (r *cartRepository) FindByUserIDAndProductID(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find cart item for user %s, product %s: %w", userID, productID, err)
	}
	return &item, nil
}

// FindByUserID retrieves all cart items for a user.
func (r *cartRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	var items []*entity.CartItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find cart items for user %s: %w", userID, err)
	}
	return items, nil
}

// Create persists a new cart item.
func (r *cartRepository) Create(ctx context.Context, item *entity.CartItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return "", fmt.Errorf("failed to create cart item for user %s: %w", item.UserID, err)
	}
	return item.ID, nil
}

// Update persists changes to an existing cart item.
func (r *cartRepository) Update(ctx context.Context, item *entity.CartItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("failed to update cart item %s: %w", item.ID, err)
	}
	return nil
}

// DeleteByUserIDAndProductID removes the cart item for the user/product pair.
func (r *cartRepository) DeleteByUserIDAndProductID(ctx context.Context, userID, productID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&entity.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cart item for user %s, product %s: %w", userID, productID, err)
	}
	return nil
}

// DeleteByUserID removes all cart items for a user.
func (r *cartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete cart items for user %s: %w", userID, err)
	}
	return nil
}
