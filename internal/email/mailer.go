// Package email sends transactional mail through a narrow interface so the
// provider stays swappable and mockable.
package email

import "context"

// Mailer delivers account emails. Implementations must not block signup on
// provider latency beyond their client timeout.
type Mailer interface {
	SendConfirmation(ctx context.Context, toEmail, fullName, confirmURL string) error
}

// Noop discards all mail. Used when no provider key is configured and in
// tests.
type Noop struct{}

func (Noop) SendConfirmation(ctx context.Context, toEmail, fullName, confirmURL string) error {
	return nil
}
