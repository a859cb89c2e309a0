package models

import "time"

// Severity classifies a notification and drives its presentation and
// auto-dismiss behavior.
type Severity string

// Known severities.
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// AutoDismissAfter returns how long a notification of this severity stays
// active before expiring on its own. Zero means it never expires and must be
// dismissed explicitly; errors demand attention, everything else fades.
func (s Severity) AutoDismissAfter() time.Duration {
	switch s {
	case SeveritySuccess, SeverityInfo:
		return 5 * time.Second
	case SeverityWarning:
		return 10 * time.Second
	default:
		return 0
	}
}

// Notification is one entry in the notification feed. The wire keys match
// what the toast client renders: "type" for severity and "timestamp" for
// creation time.
type Notification struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	Severity    Severity  `json:"type"`
	CreatedAt   time.Time `json:"timestamp"`
	AutoDismiss bool      `json:"autoDismiss"`
	// ExpiresAt is set only when AutoDismiss is true.
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}
