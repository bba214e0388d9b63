package gamification_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/USveterandr/budgetwise-ai/internal/gamification"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
	pgstore "github.com/USveterandr/budgetwise-ai/internal/store/postgres"
)

func setupEngineTest(t *testing.T) (store.Store, *gamification.Engine) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.Migrator().DropTable(&models.User{}, &models.Expense{}, &models.Budget{},
		&models.Investment{}, &models.Achievement{}, &models.Receipt{},
		&models.BudgetDocument{}, &models.UserChallenge{})

	s := pgstore.New(db)
	if err := s.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return s, gamification.NewEngine(s)
}

func seedUser(t *testing.T, s store.Store, streak int) *models.User {
	user := &models.User{
		ID:         uuid.NewString(),
		Email:      uuid.NewString() + "@example.com",
		Password:   "hashedpassword",
		FullName:   "Test User",
		StreakDays: streak,
	}
	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestEvaluateAchievementsFirstExpense(t *testing.T) {
	s, engine := setupEngineTest(t)
	ctx := context.Background()
	user := seedUser(t, s, 0)

	err := s.CreateExpense(ctx, &models.Expense{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Amount:   12.50,
		Category: "food",
		Date:     time.Now().UTC(),
	})
	assert.NoError(t, err)

	stats, err := engine.CollectStats(ctx, user)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), stats.Expenses)

	unlocked, err := engine.EvaluateAchievements(ctx, user.ID, stats)
	assert.NoError(t, err)
	assert.Len(t, unlocked, 1)
	assert.Equal(t, "first-expense", unlocked[0].Code)
	assert.Equal(t, "First Steps", unlocked[0].Title)
	assert.Equal(t, 10, unlocked[0].Points)

	refreshed, err := s.GetUserByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 10, refreshed.Points)
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	s, engine := setupEngineTest(t)
	ctx := context.Background()
	user := seedUser(t, s, 0)

	err := s.CreateExpense(ctx, &models.Expense{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Amount:   5,
		Category: "food",
		Date:     time.Now().UTC(),
	})
	assert.NoError(t, err)

	stats, err := engine.CollectStats(ctx, user)
	assert.NoError(t, err)

	first, err := engine.EvaluateAchievements(ctx, user.ID, stats)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := engine.EvaluateAchievements(ctx, user.ID, stats)
	assert.NoError(t, err)
	assert.Empty(t, second)

	refreshed, err := s.GetUserByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 10, refreshed.Points)
}

func TestEvaluateAchievementsLongStreak(t *testing.T) {
	s, engine := setupEngineTest(t)
	ctx := context.Background()
	user := seedUser(t, s, 30)

	stats, err := engine.CollectStats(ctx, user)
	assert.NoError(t, err)
	assert.Equal(t, 30, stats.StreakDays)

	unlocked, err := engine.EvaluateAchievements(ctx, user.ID, stats)
	assert.NoError(t, err)

	codes := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		codes = append(codes, a.Code)
	}
	assert.ElementsMatch(t, []string{"week-warrior", "month-champion"}, codes)

	refreshed, err := s.GetUserByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 600, refreshed.Points)
}

func TestUpdateStreakPersists(t *testing.T) {
	s, engine := setupEngineTest(t)
	ctx := context.Background()
	user := seedUser(t, s, 3)

	yesterday := time.Now().UTC().Add(-24 * time.Hour)
	assert.NoError(t, s.SetLastLogin(ctx, user.ID, yesterday))
	user.LastLogin = &yesterday

	now := time.Now().UTC()
	streak, err := engine.UpdateStreak(ctx, user, now)
	assert.NoError(t, err)
	assert.Equal(t, 4, streak)

	refreshed, err := s.GetUserByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 4, refreshed.StreakDays)
	if assert.NotNil(t, refreshed.LastLogin) {
		assert.WithinDuration(t, now, *refreshed.LastLogin, time.Second)
	}
}
