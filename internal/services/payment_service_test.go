package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/payment"
	"github.com/USveterandr/budgetwise-ai/internal/services"
)

// stubDriver confirms every webhook as the configured completion.
type stubDriver struct {
	completion *payment.Completion
}

func (stubDriver) CheckoutURL(ctx context.Context, req payment.CheckoutRequest) (string, error) {
	return "https://checkout.example.com/session", nil
}

func (d stubDriver) ParseWebhook(payload []byte, signature string) (*payment.Completion, error) {
	return d.completion, nil
}

func TestHandleWebhookUpdatesPlan(t *testing.T) {
	s := setupTestStore(t)
	setupTestRedis(t)
	users := services.NewUserService(s)
	ctx := context.Background()
	user := seedTestUser(t, s)

	// Prime the cache with the free plan.
	cached, err := users.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PlanFree, cached.SubscriptionPlan)

	driver := stubDriver{completion: &payment.Completion{
		UserID: user.ID,
		Plan:   models.PlanInvestor,
	}}
	payments := services.NewPaymentService(s, driver, "http://localhost:8080")

	assert.NoError(t, payments.HandleWebhook(ctx, []byte("{}"), "sig"))

	fresh, err := users.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PlanInvestor, fresh.SubscriptionPlan)
}

func TestCreateCheckoutRejectsUnknownPlan(t *testing.T) {
	s := setupTestStore(t)
	payments := services.NewPaymentService(s, stubDriver{}, "http://localhost:8080")
	user := seedTestUser(t, s)

	_, err := payments.CreateCheckout(context.Background(), user, "gold")
	assert.ErrorIs(t, err, services.ErrUnknownPlan)

	url, err := payments.CreateCheckout(context.Background(), user, models.PlanPersonalPlus)
	assert.NoError(t, err)
	assert.NotEmpty(t, url)
}
