package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Rak-Code/swiftcart-backend/internal/config"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/constant"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/repository"
	appErrors "github.com/Rak-Code/swiftcart-backend/internal/pkg/errors"
	"github.com/Rak-Code/swiftcart-backend/internal/pkg/logger"
)

type reminderSchedulerService struct {
	reminderRepo repository.ReminderScheduleRepository
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	notifier     ReminderNotifier
	cfg          config.Reminder
	log          logger.Logger
	now          func() time.Time
	sweepMu      sync.Mutex // at most one sweep runs at a time
}

// NewReminderSchedulerService creates a new instance of ReminderSchedulerService implementation.
func NewReminderSchedulerService(
	reminderRepo repository.ReminderScheduleRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	notifier ReminderNotifier,
	cfg config.Reminder,
	log logger.Logger,
) ReminderSchedulerService {
	return &reminderSchedulerService{
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
		notifier:     notifier,
		cfg:          cfg,
		log:          log,
		now:          time.Now,
	}
}

// ScheduleCartReminder schedules a cart follow-up reminder.
func (s *reminderSchedulerService) ScheduleCartReminder(ctx context.Context, userID, productID string, delayMinutes int) error {
	return s.scheduleReminder(ctx, userID, productID, constant.ReminderTypeCart, delayMinutes)
}

// ScheduleWishlistReminder schedules a wishlist follow-up reminder.
func (s *reminderSchedulerService) ScheduleWishlistReminder(ctx context.Context, userID, productID string, delayMinutes int) error {
	return s.scheduleReminder(ctx, userID, productID, constant.ReminderTypeWishlist, delayMinutes)
}

func (s *reminderSchedulerService) scheduleReminder(ctx context.Context, userID, productID string, reminderType constant.ReminderType, delayMinutes int) error {
	if userID == "" || productID == "" {
		return fmt.Errorf("%w: user id and product id are required", appErrors.ErrValidation)
	}
	if delayMinutes < 0 {
		return fmt.Errorf("%w: delay must not be negative", appErrors.ErrValidation)
	}
	if !reminderType.Valid() {
		return fmt.Errorf("%w: unknown reminder type %q", appErrors.ErrValidation, reminderType)
	}

	// The existence check and the insert are not atomic: two concurrent
	// calls for the same tuple can both pass the check and both insert, and
	// both copies then fire on the same sweep.
	existing, err := s.reminderRepo.FindPending(ctx, userID, productID, reminderType)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	if existing != nil {
		s.log.Info(fmt.Sprintf("Reminder already scheduled for user %s, product %s, type %s", userID, productID, reminderType))
		return nil
	}

	now := s.now()
	reminder := &entity.ReminderSchedule{
		UserID:      userID,
		ProductID:   productID,
		Type:        reminderType,
		Status:      constant.ReminderStatusPending,
		ScheduledAt: now.Add(time.Duration(delayMinutes) * time.Minute),
		CreatedAt:   now,
	}
	if _, err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}

	s.log.Info(fmt.Sprintf("Scheduled %s reminder for user %s, product %s in %d minutes", reminderType, userID, productID, delayMinutes))
	return nil
}

// CancelReminder removes all reminders for the tuple regardless of status.
func (s *reminderSchedulerService) CancelReminder(ctx context.Context, userID, productID string, reminderType constant.ReminderType) error {
	if err := s.reminderRepo.DeleteByKey(ctx, userID, productID, reminderType); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrStorage, err)
	}
	s.log.Info(fmt.Sprintf("Cancelled %s reminder for user %s, product %s", reminderType, userID, productID))
	return nil
}

// ProcessPendingReminders runs one sweep over the due reminders. Invocations
// never overlap: a firing that arrives while the previous sweep is still
// running is skipped, and its work is picked up by the next firing, which
// re-queries the full due set.
func (s *reminderSchedulerService) ProcessPendingReminders(ctx context.Context) {
	if !s.sweepMu.TryLock() {
		s.log.Warn("Previous reminder sweep still running, skipping this firing")
		return
	}
	defer s.sweepMu.Unlock()

	due, err := s.reminderRepo.FindDue(ctx, s.now())
	if err != nil {
		s.log.Error("Failed to query due reminders", err)
		return
	}
	if len(due) == 0 {
		return
	}

	s.log.Info(fmt.Sprintf("Processing %d pending reminders", len(due)))
	for _, reminder := range due {
		s.sendReminder(ctx, reminder)
	}
}

// sendReminder dispatches a single due reminder. Failures are contained to
// this record: a storage or send error here never aborts the rest of the batch.
func (s *reminderSchedulerService) sendReminder(ctx context.Context, reminder *entity.ReminderSchedule) {
	user, err := s.userRepo.FindByID(ctx, reminder.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to resolve user %s for reminder %s", reminder.UserID, reminder.ID), err)
		return
	}
	product, err := s.productRepo.FindByID(ctx, reminder.ProductID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to resolve product %s for reminder %s", reminder.ProductID, reminder.ID), err)
		return
	}

	// Weak references: either side may have been deleted since scheduling.
	if user == nil || product == nil {
		s.log.Warn(fmt.Sprintf("User or product not found for reminder %s, cancelling", reminder.ID))
		reminder.Status = constant.ReminderStatusCancelled
		if err := s.reminderRepo.Update(ctx, reminder); err != nil {
			s.log.Error(fmt.Sprintf("Failed to cancel reminder %s", reminder.ID), err)
		}
		return
	}

	// Bound each send so one hanging notifier call cannot stall the batch.
	sendCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.SendTimeoutSeconds)*time.Second)
	defer cancel()

	var sendErr error
	if reminder.Type == constant.ReminderTypeCart {
		sendErr = s.notifier.SendCartReminder(sendCtx, user, product)
	} else {
		sendErr = s.notifier.SendWishlistReminder(sendCtx, user, product)
	}
	if sendErr != nil {
		// The record stays PENDING with its scheduledAt untouched, so it is
		// still due and retried on every subsequent sweep.
		s.log.Error(fmt.Sprintf("Failed to send %s reminder %s to %s", reminder.Type, reminder.ID, user.Email),
			fmt.Errorf("%w: %v", appErrors.ErrNotification, sendErr))
		return
	}

	sentAt := s.now()
	reminder.Status = constant.ReminderStatusSent
	reminder.SentAt = &sentAt
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to mark reminder %s as sent", reminder.ID), err)
		return
	}
	s.log.Info(fmt.Sprintf("Sent %s reminder to user %s", reminder.Type, user.Email))
}
