package config

import (
	"os"
	"strconv"
)

// Reminder holds the tuning values for the deferred reminder subsystem.
// The struct is passed explicitly into the services so the subsystem can be
// constructed and tested without ambient configuration.
type Reminder struct {
	// CartDelayMinutes is how long after a cart add the reminder fires.
	CartDelayMinutes int
	// WishlistDelayMinutes is how long after a wishlist add the reminder fires.
	WishlistDelayMinutes int
	// SweepIntervalSeconds is the period of the due-reminder sweep.
	SweepIntervalSeconds int
	// SendTimeoutSeconds bounds a single notifier call during a sweep.
	SendTimeoutSeconds int
}

// LoadReminder reads the reminder configuration from the environment,
// falling back to the defaults.
func LoadReminder() Reminder {
	return Reminder{
		CartDelayMinutes:     intEnv("REMINDER_CART_DELAY_MINUTES", 30),
		WishlistDelayMinutes: intEnv("REMINDER_WISHLIST_DELAY_MINUTES", 60),
		SweepIntervalSeconds: intEnv("REMINDER_SWEEP_INTERVAL_SECONDS", 60),
		SendTimeoutSeconds:   intEnv("REMINDER_SEND_TIMEOUT_SECONDS", 10),
	}
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
