package entity

import (
	"time"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/constant"
)

// ReminderSchedule is a one-shot follow-up notification tied to a user, a
// product and the interaction (cart or wishlist) that produced it. UserID and
// ProductID are weak references: either entity may be gone by the time the
// reminder becomes due, in which case the record is cancelled instead of sent.
type ReminderSchedule struct {
	ID          string                  `gorm:"column:id;primaryKey"`
	UserID      string                  `gorm:"column:user_id;index"`
	ProductID   string                  `gorm:"column:product_id;index"`
	Type        constant.ReminderType   `gorm:"column:type"`
	Status      constant.ReminderStatus `gorm:"column:status;index"`
	ScheduledAt time.Time               `gorm:"column:scheduled_at;index"`
	SentAt      *time.Time              `gorm:"column:sent_at"` // set only on transition to SENT
	CreatedAt   time.Time               `gorm:"column:created_at"`
}

// TableName specifies the table name for the ReminderSchedule entity.
func (ReminderSchedule) TableName() string {
	return "reminder_schedules"
}
