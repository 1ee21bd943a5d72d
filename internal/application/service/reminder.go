package service

import (
	"context"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/constant"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// ReminderSchedulerService schedules, cancels and dispatches deferred cart
// and wishlist reminders.
type ReminderSchedulerService interface {
	// ScheduleCartReminder schedules a cart follow-up reminder. Scheduling a
	// tuple that already has a pending reminder is a no-op.
	ScheduleCartReminder(ctx context.Context, userID, productID string, delayMinutes int) error
	// ScheduleWishlistReminder schedules a wishlist follow-up reminder with
	// the same dedup behavior.
	ScheduleWishlistReminder(ctx context.Context, userID, productID string, delayMinutes int) error
	// CancelReminder removes all reminders for the tuple regardless of
	// status. Cancelling a tuple with no reminders is not an error.
	CancelReminder(ctx context.Context, userID, productID string, reminderType constant.ReminderType) error
	// ProcessPendingReminders runs one sweep over the due reminders,
	// dispatching each and advancing its status. Invoked by the cron
	// scheduler; it has no caller awaiting a result, so failures are logged
	// rather than returned.
	ProcessPendingReminders(ctx context.Context)
}

// ReminderNotifier delivers reminder notifications to customers. A send
// failure must surface as an error so the sweep can leave the record pending
// and retry it on the next firing.
type ReminderNotifier interface {
	SendCartReminder(ctx context.Context, user *entity.User, product *entity.Product) error
	SendWishlistReminder(ctx context.Context, user *entity.User, product *entity.Product) error
}
