package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/USveterandr/budgetwise-ai/internal/email"
	"github.com/USveterandr/budgetwise-ai/internal/gamification"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

func newAuthService(t *testing.T) (*services.AuthService, store.Store) {
	s := setupTestStore(t)
	setupTestRedis(t)
	engine := gamification.NewEngine(s)
	auth := services.NewAuthService(s, engine, email.Noop{}, "http://localhost:8080")
	return auth, s
}

func TestRegisterNormalizesEmail(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "New.User@Example.com", "password123", "New User")
	assert.NoError(t, err)
	assert.Equal(t, "new.user@example.com", user.Email)
	assert.Equal(t, models.PlanFree, user.SubscriptionPlan)
	assert.Equal(t, 0, user.Points)
	assert.False(t, user.EmailConfirmed)
	assert.NotNil(t, user.EmailConfirmationToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "dup@example.com", "password123", "First")
	assert.NoError(t, err)

	_, err = auth.Register(ctx, "DUP@EXAMPLE.COM", "password456", "Second")
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
}

func TestLoginStartsStreak(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "login@example.com", "password123", "Login User")
	assert.NoError(t, err)

	token, user, err := auth.Login(ctx, "login@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, user.StreakDays)
	assert.NotNil(t, user.LastLogin)

	// A second login on the same day leaves the streak unchanged.
	_, user, err = auth.Login(ctx, "login@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, 1, user.StreakDays)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "creds@example.com", "password123", "Creds User")
	assert.NoError(t, err)

	_, _, err = auth.Login(ctx, "creds@example.com", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestConfirmEmailBurnsToken(t *testing.T) {
	auth, s := newAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "confirm@example.com", "password123", "Confirm User")
	assert.NoError(t, err)
	token := *user.EmailConfirmationToken

	assert.ErrorIs(t, auth.ConfirmEmail(ctx, user.Email, "wrong-token"), services.ErrInvalidToken)

	assert.NoError(t, auth.ConfirmEmail(ctx, user.Email, token))

	refreshed, err := s.GetUserByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.True(t, refreshed.EmailConfirmed)
	assert.Nil(t, refreshed.EmailConfirmationToken)

	// Confirming again is a no-op.
	assert.NoError(t, auth.ConfirmEmail(ctx, user.Email, "anything"))
}
