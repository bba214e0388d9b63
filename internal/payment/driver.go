// Package payment defines the narrow surface the subscription flow calls.
// Providers plug in behind the Driver interface.
package payment

import "context"

// CheckoutRequest describes one subscription purchase attempt.
type CheckoutRequest struct {
	UserID     string
	Email      string
	Plan       string
	SuccessURL string
	CancelURL  string
}

// Completion is the provider's confirmation that a checkout finished.
type Completion struct {
	UserID string
	Plan   string
}

// Driver is the interface every payment provider implements.
type Driver interface {
	// CheckoutURL creates a provider checkout session and returns the URL
	// the client is redirected to.
	CheckoutURL(ctx context.Context, req CheckoutRequest) (string, error)

	// ParseWebhook verifies a provider callback and extracts the completed
	// checkout, if the event is one.
	ParseWebhook(payload []byte, signature string) (*Completion, error)
}
