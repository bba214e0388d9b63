// Package stripe implements the payment.Driver interface on Stripe
// subscription checkout.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/payment"
)

type Driver struct {
	webhookSecret string
	priceIDs      map[string]string
}

// NewDriver wires the Stripe API key and the plan to price mapping. Price
// IDs come from the Stripe dashboard, one recurring price per paid plan.
func NewDriver(secretKey, webhookSecret string, priceIDs map[string]string) *Driver {
	stripe.Key = secretKey
	return &Driver{
		webhookSecret: webhookSecret,
		priceIDs:      priceIDs,
	}
}

func (d *Driver) CheckoutURL(ctx context.Context, req payment.CheckoutRequest) (string, error) {
	priceID, ok := d.priceIDs[req.Plan]
	if !ok {
		return "", fmt.Errorf("no price configured for plan %q", req.Plan)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(req.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("user_id", req.UserID)
	params.AddMetadata("plan", req.Plan)

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

// ParseWebhook verifies the event signature and returns a Completion for
// checkout.session.completed events; other event types return (nil, nil).
func (d *Driver) ParseWebhook(payload []byte, signature string) (*payment.Completion, error) {
	event, err := webhook.ConstructEvent(payload, signature, d.webhookSecret)
	if err != nil {
		return nil, err
	}

	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, err
	}

	userID := sess.Metadata["user_id"]
	plan := sess.Metadata["plan"]
	if userID == "" || plan == "" {
		return nil, errors.New("checkout session missing user metadata")
	}
	return &payment.Completion{UserID: userID, Plan: plan}, nil
}

// DefaultPriceIDs builds the plan mapping from environment-provided IDs.
func DefaultPriceIDs(personalPlus, investor, businessProElite string) map[string]string {
	return map[string]string{
		models.PlanPersonalPlus:     personalPlus,
		models.PlanInvestor:         investor,
		models.PlanBusinessProElite: businessProElite,
	}
}
