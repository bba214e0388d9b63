package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/USveterandr/budgetwise-ai/internal/database"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/payment"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

var ErrUnknownPlan = errors.New("unknown subscription plan")

type PaymentService struct {
	store      store.Store
	driver     payment.Driver
	appBaseURL string
}

func NewPaymentService(s store.Store, driver payment.Driver, appBaseURL string) *PaymentService {
	return &PaymentService{store: s, driver: driver, appBaseURL: appBaseURL}
}

// CreateCheckout starts a provider checkout session for a paid plan and
// returns the redirect URL.
func (p *PaymentService) CreateCheckout(ctx context.Context, user *models.User, plan string) (string, error) {
	switch plan {
	case models.PlanPersonalPlus, models.PlanInvestor, models.PlanBusinessProElite:
	default:
		return "", ErrUnknownPlan
	}

	return p.driver.CheckoutURL(ctx, payment.CheckoutRequest{
		UserID:     user.ID,
		Email:      user.Email,
		Plan:       plan,
		SuccessURL: fmt.Sprintf("%s/subscription/success", p.appBaseURL),
		CancelURL:  fmt.Sprintf("%s/subscription/cancelled", p.appBaseURL),
	})
}

// HandleWebhook applies a verified checkout completion to the user's plan.
func (p *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	completion, err := p.driver.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}
	if completion == nil {
		// Event type we don't act on.
		return nil
	}

	err = p.store.UpdateUserFields(ctx, completion.UserID, map[string]interface{}{
		"subscription_plan": completion.Plan,
	})
	if err != nil {
		return err
	}
	database.InvalidateUserCache(completion.UserID)

	zap.L().Info("subscription activated",
		zap.String("user_id", completion.UserID),
		zap.String("plan", completion.Plan))
	return nil
}
