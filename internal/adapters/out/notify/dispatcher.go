// Package notify implements the notification dispatch boundary. The real
// delivery channels (email, SMS) live outside the workflow engine; this
// implementation records every dispatch through structured logging so an
// operator can trace what would have been sent.
package notify

import (
	"log/slog"
)

// SlogDispatcher logs dispatched notifications instead of delivering them.
type SlogDispatcher struct {
	logger *slog.Logger
}

// NewSlogDispatcher creates a dispatcher backed by the given logger.
func NewSlogDispatcher(logger *slog.Logger) *SlogDispatcher {
	return &SlogDispatcher{
		logger: logger.With("component", "notify"),
	}
}

// Dispatch records the notification. Fire-and-forget: there is no error to
// return and callers never await delivery.
func (d *SlogDispatcher) Dispatch(recipient string, subject string, message string) {
	d.logger.Info("notification dispatched",
		"recipient", recipient,
		"subject", subject,
		"message", message,
	)
}
