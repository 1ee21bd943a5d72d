package constant

// ReminderType identifies which customer interaction produced a reminder.
type ReminderType string

const (
	// ReminderTypeCart is a reminder for a product left in the cart.
	ReminderTypeCart ReminderType = "CART"
	// ReminderTypeWishlist is a reminder for a product saved to the wishlist.
	ReminderTypeWishlist ReminderType = "WISHLIST"
)

// Valid reports whether t is a known reminder type.
func (t ReminderType) Valid() bool {
	return t == ReminderTypeCart || t == ReminderTypeWishlist
}

func (t ReminderType) String() string {
	return string(t)
}

// ReminderStatus is the lifecycle state of a reminder schedule.
// PENDING records are the only ones the sweep considers; SENT and
// CANCELLED are terminal.
type ReminderStatus string

const (
	ReminderStatusPending   ReminderStatus = "PENDING"
	ReminderStatusSent      ReminderStatus = "SENT"
	ReminderStatusCancelled ReminderStatus = "CANCELLED"
)

func (s ReminderStatus) String() string {
	return string(s)
}
