package repository

import (
	"context"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// FindByID retrieves a user with their addresses. Returns nil without
	// error when no user matches.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// Create persists a new user. Returns the ID of the created user.
	Create(ctx context.Context, user *entity.User) (string, error)
	// Delete removes a user by ID.
	Delete(ctx context.Context, id string) error
}
