package sqlite

import (
	"context"
	"fmt"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new instance of WishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// ExistsByUserIDAndProductID reports whether the product is already on the
// user's wishlist.
func (r *wishlistRepository) ExistsByUserIDAndProductID(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check wishlist for user %s, product %s: %w", userID, productID, err)
	}
	return count > 0, nil
}

// FindByUserID retrieves all wishlist items for a user.
func (r *wishlistRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	var items []*entity.WishlistItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find wishlist items for user %s: %w", userID, err)
	}
	return items, nil
}

// Create persists a new wishlist item.
func (r *wishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return "", fmt.Errorf("failed to create wishlist item for user %s: %w", item.UserID, err)
	}
	return item.ID, nil
}

// DeleteByUserIDAndProductID removes the wishlist item for the user/product pair.
func (r *wishlistRepository) DeleteByUserIDAndProductID(ctx context.Context, userID, productID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&entity.WishlistItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete wishlist item for user %s, product %s: %w", userID, productID, err)
	}
	return nil
}

// DeleteByUserID removes all wishlist items for a user.
func (r *wishlistRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.WishlistItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete wishlist items for user %s: %w", userID, err)
	}
	return nil
}
