package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rak-Code/swiftcart-backend/internal/config"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/repository"
	appErrors "github.com/Rak-Code/swiftcart-backend/internal/pkg/errors"
	"github.com/Rak-Code/swiftcart-backend/internal/pkg/logger"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	reminderSvc  ReminderSchedulerService
	cfg          config.Reminder
	log          logger.Logger
}

// NewWishlistService creates a new instance of WishlistService implementation.
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	reminderSvc ReminderSchedulerService,
	cfg config.Reminder,
	log logger.Logger,
) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		reminderSvc:  reminderSvc,
		cfg:          cfg,
		log:          log,
	}
}

// AddToWishlist saves a product to the user's wishlist.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	exists, err := s.wishlistRepo.ExistsByUserIDAndProductID(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	if exists {
		return nil, appErrors.ErrDuplicateWishlistItem
	}

	item := &entity.WishlistItem{
		UserID:    userID,
		ProductID: productID,
		AddedAt:   time.Now(),
	}
	if _, err := s.wishlistRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}

	// Scheduling is best effort: the wishlist mutation has already succeeded
	// and must not fail because the reminder could not be stored.
	if err := s.reminderSvc.ScheduleWishlistReminder(ctx, userID, productID, s.cfg.WishlistDelayMinutes); err != nil {
		s.log.Error(fmt.Sprintf("Failed to schedule wishlist reminder for user %s, product %s", userID, productID), err)
	}

	return item, nil
}

// RemoveFromWishlist removes a product from the user's wishlist.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	if err := s.wishlistRepo.DeleteByUserIDAndProductID(ctx, userID, productID); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	return nil
}

// GetUserWishlist retrieves all wishlist items for a user.
func (s *wishlistService) GetUserWishlist(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	items, err := s.wishlistRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	return items, nil
}

// ClearWishlist removes all wishlist items for a user.
func (s *wishlistService) ClearWishlist(ctx context.Context, userID string) error {
	if err := s.wishlistRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	return nil
}

// IsInWishlist reports whether the product is on the user's wishlist.
func (s *wishlistService) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	exists, err := s.wishlistRepo.ExistsByUserIDAndProductID(ctx, userID, productID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	return exists, nil
}
