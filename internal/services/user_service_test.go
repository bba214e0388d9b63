package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/USveterandr/budgetwise-ai/internal/email"
	"github.com/USveterandr/budgetwise-ai/internal/gamification"
	"github.com/USveterandr/budgetwise-ai/internal/services"
)

func TestFindByIDServesFreshDataAfterEngineWrites(t *testing.T) {
	s := setupTestStore(t)
	setupTestRedis(t)
	users := services.NewUserService(s)
	engine := gamification.NewEngine(s)
	ctx := context.Background()
	user := seedTestUser(t, s)

	// Prime the cache.
	cached, err := users.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, cached.StreakDays)
	assert.Equal(t, 0, cached.Points)

	streak, err := engine.UpdateStreak(ctx, user, time.Now().UTC())
	assert.NoError(t, err)
	assert.Equal(t, 1, streak)

	fresh, err := users.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, fresh.StreakDays)

	// Points awarded through the engine must be visible right away too,
	// or streak achievements read a stale StreakDays on the next request.
	user.StreakDays = 30
	stats, err := engine.CollectStats(ctx, user)
	assert.NoError(t, err)
	unlocked, err := engine.EvaluateAchievements(ctx, user.ID, stats)
	assert.NoError(t, err)
	assert.Len(t, unlocked, 2)

	fresh, err = users.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 600, fresh.Points)
}

func TestFindByIDServesFreshDataAfterEmailConfirm(t *testing.T) {
	s := setupTestStore(t)
	setupTestRedis(t)
	users := services.NewUserService(s)
	engine := gamification.NewEngine(s)
	auth := services.NewAuthService(s, engine, email.Noop{}, "http://localhost:8080")
	ctx := context.Background()

	user, err := auth.Register(ctx, "stale@example.com", "password123", "Stale User")
	assert.NoError(t, err)
	token := *user.EmailConfirmationToken

	cached, err := users.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.False(t, cached.EmailConfirmed)

	assert.NoError(t, auth.ConfirmEmail(ctx, user.Email, token))

	fresh, err := users.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.True(t, fresh.EmailConfirmed)
}
