package dto

// CancelReminderRequest is the DTO for cancelling the reminders of a
// (user, product, type) tuple.
type CancelReminderRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=CART WISHLIST"`
}
