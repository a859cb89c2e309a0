package domain

import "errors"

// Sentinel errors for the notification domain. Use errors.Is() to check these.
var (
	// ErrNotificationNotFound indicates the notification id is unknown or the
	// notification was already dismissed or expired.
	ErrNotificationNotFound = errors.New("notification not found")
)
