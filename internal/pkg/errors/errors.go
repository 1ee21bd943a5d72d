package errors

import "errors"

// Custom application errors
var (
	ErrStorage               = errors.New("storage operation failed")
	ErrNotFound              = errors.New("resource not found")
	ErrNotification          = errors.New("notification delivery failed")
	ErrValidation            = errors.New("request validation failed")
	ErrDuplicateWishlistItem = errors.New("product already in wishlist")
	ErrInternalServer        = errors.New("internal server error")
)
