package repository

import (
	"context"
	"time"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/constant"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// ReminderScheduleRepository defines the interface for reminder schedule data operations.
type ReminderScheduleRepository interface {
	// Create persists a new reminder schedule. Returns the ID of the created record.
	Create(ctx context.Context, reminder *entity.ReminderSchedule) (string, error)
	// FindPending retrieves the pending reminder for the exact
	// (user, product, type) tuple. Returns nil without error when none exists.
	FindPending(ctx context.Context, userID, productID string, reminderType constant.ReminderType) (*entity.ReminderSchedule, error)
	// FindDue retrieves all pending reminders whose scheduled time is not
	// after the given instant, oldest first.
	FindDue(ctx context.Context, before time.Time) ([]*entity.ReminderSchedule, error)
	// Update persists status and timestamp changes to an existing record.
	Update(ctx context.Context, reminder *entity.ReminderSchedule) error
	// DeleteByKey removes all records for the (user, product, type) tuple
	// regardless of status. Deleting zero records is not an error.
	DeleteByKey(ctx context.Context, userID, productID string, reminderType constant.ReminderType) error
}
