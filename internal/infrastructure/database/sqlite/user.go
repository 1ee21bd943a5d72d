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

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user with their addresses. Returns nil without error
// when no user matches.
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Preload("Addresses").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by id %s: %w", id, err)
	}
	return &user, nil
}

// Create persists a new user and their addresses.
func (r *userRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	for i := range user.Addresses {
		if user.Addresses[i].ID == "" {
			user.Addresses[i].ID = uuid.NewString()
		}
		user.Addresses[i].UserID = user.ID
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return "", fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}
	return user.ID, nil
}

// Delete removes a user and their addresses by ID.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", id).Delete(&entity.Address{}).Error; err != nil {
		return fmt.Errorf("failed to delete addresses for user %s: %w", id, err)
	}
	if err := r.db.WithContext(ctx).Delete(&entity.User{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}
