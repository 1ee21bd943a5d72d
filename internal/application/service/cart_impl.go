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

type cartService struct {
	cartRepo    repository.CartRepository
	reminderSvc ReminderSchedulerService
	cfg         config.Reminder
	log         logger.Logger
}

// NewCartService creates a new instance of CartService implementation.
func NewCartService(
	cartRepo repository.CartRepository,
	reminderSvc ReminderSchedulerService,
	cfg config.Reminder,
	log logger.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		reminderSvc: reminderSvc,
		cfg:         cfg,
		log:         log,
	}
}

// AddToCart places a product in the user's cart. When the product is already
// in the cart only the quantity changes and no new reminder is scheduled.
func (s *cartService) AddToCart(ctx context.Context, userID, productID string, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", appErrors.ErrValidation)
	}

	existing, err := s.cartRepo.FindByUserIDAndProductID(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	if existing != nil {
		existing.Quantity += quantity
		if err := s.cartRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
		}
		return existing, nil
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	if _, err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}

	// Scheduling is best effort: the cart mutation has already succeeded and
	// must not fail because the reminder could not be stored.
	if err := s.reminderSvc.ScheduleCartReminder(ctx, userID, productID, s.cfg.CartDelayMinutes); err != nil {
		s.log.Error(fmt.Sprintf("Failed to schedule cart reminder for user %s, product %s", userID, productID), err)
	}

	return item, nil
}

// UpdateQuantity sets the quantity of an existing cart item.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", appErrors.ErrValidation)
	}

	item, err := s.cartRepo.FindByUserIDAndProductID(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: cart item for user %s and product %s", appErrors.ErrNotFound, userID, productID)
	}

	item.Quantity = quantity
	if err := s.cartRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	return item, nil
}

// RemoveFromCart removes a product from the user's cart. Any pending reminder
// for the pair is left alone; cancellation is a separate, caller-driven call.
func (s *cartService) RemoveFromCart(ctx context.Context, userID, productID string) error {
	if err := s.cartRepo.DeleteByUserIDAndProductID(ctx, userID, productID); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	return nil
}

// GetUserCart retrieves all cart items for a user.
func (s *cartService) GetUserCart(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	items, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	return items, nil
}

// ClearCart removes all cart items for a user.
func (s *cartService) ClearCart(ctx context.Context, userID string) error {
	if err := s.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	return nil
}
