package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/constant"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reminderScheduleRepository struct {
	db *gorm.DB
}

// NewReminderScheduleRepository creates a new instance of ReminderScheduleRepository.
func NewReminderScheduleRepository(db *gorm.DB) repository.ReminderScheduleRepository {
	return &reminderScheduleRepository{db: db}
}

// Create persists a new reminder schedule, assigning an ID when none is set.
func (r *reminderScheduleRepository) Create(ctx context.Context, reminder *entity.ReminderSchedule) (string, error) {
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return "", fmt.Errorf("failed to create reminder schedule for user %s: %w", reminder.UserID, err)
	}
	return reminder.ID, nil
}

// FindPending retrieves the pending reminder for the exact (user, product, type)
// tuple. Returns nil without error when none exists.
func (r *reminderScheduleRepository) FindPending(ctx context.Context, userID, productID string, reminderType constant.ReminderType) (*entity.ReminderSchedule, error) {
	var reminder entity.ReminderSchedule
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND type = ? AND status = ?",
			userID, productID, reminderType, constant.ReminderStatusPending).
		First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find pending reminder for user %s, product %s: %w", userID, productID, err)
	}
	return &reminder, nil
}

// FindDue retrieves all pending reminders whose scheduled time is not after
// the given instant, oldest first so the longest-waiting reminders go out first.
func (r *reminderScheduleRepository) FindDue(ctx context.Context, before time.Time) ([]*entity.ReminderSchedule, error) {
	var reminders []*entity.ReminderSchedule
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", constant.ReminderStatusPending, before).
		Order("scheduled_at asc").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find due reminders before %v: %w", before, err)
	}
	return reminders, nil
}

// Update persists status and timestamp changes to an existing record.
func (r *reminderScheduleRepository) Update(ctx context.Context, reminder *entity.ReminderSchedule) error {
	if err := r.db.WithContext(ctx).Save(reminder).Error; err != nil {
		return fmt.Errorf("failed to update reminder schedule %s: %w", reminder.ID, err)
	}
	return nil
}

// DeleteByKey removes all records for the tuple regardless of status.
func (r *reminderScheduleRepository) DeleteByKey(ctx context.Context, userID, productID string, reminderType constant.ReminderType) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND type = ?", userID, productID, reminderType).
		Delete(&entity.ReminderSchedule{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete reminders for user %s, product %s: %w", userID, productID, err)
	}
	return nil
}
