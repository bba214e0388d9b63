package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/services"
)

func TestMonthStart(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 30, 45, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), services.MonthStart(now))

	// A local timestamp is converted to UTC before truncation.
	est := time.FixedZone("EST", -5*3600)
	lateNight := time.Date(2025, 5, 31, 22, 0, 0, 0, est) // 2025-06-01 03:00 UTC
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), services.MonthStart(lateNight))
}

func TestDashboardSnapshot(t *testing.T) {
	s := setupTestStore(t)
	dashboard := services.NewDashboardService(s)
	ctx := context.Background()
	user := seedTestUser(t, s)

	now := time.Now().UTC()
	monthStart := services.MonthStart(now)

	// One expense from last month must not count toward the monthly total.
	assert.NoError(t, s.CreateExpense(ctx, &models.Expense{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Amount:   99,
		Category: "food",
		Date:     monthStart.Add(-time.Hour),
	}))
	for i := 0; i < 6; i++ {
		assert.NoError(t, s.CreateExpense(ctx, &models.Expense{
			ID:       uuid.NewString(),
			UserID:   user.ID,
			Amount:   10,
			Category: "food",
			Date:     monthStart.Add(time.Duration(i+1) * time.Minute),
		}))
	}

	assert.NoError(t, s.CreateBudget(ctx, &models.Budget{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Category: "food",
		Amount:   500,
		Period:   models.PeriodMonthly,
	}))

	assert.NoError(t, s.CreateAchievement(ctx, &models.Achievement{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Code:       "first-expense",
		Title:      "First Steps",
		Points:     10,
		IsUnlocked: true,
		UnlockedAt: now,
	}))

	snapshot, err := dashboard.Snapshot(ctx, user)
	assert.NoError(t, err)
	assert.Len(t, snapshot.RecentExpenses, 5)
	assert.Len(t, snapshot.Budgets, 1)
	assert.InDelta(t, 60, snapshot.TotalSpentThisMonth, 0.001)
	assert.Equal(t, int64(1), snapshot.AchievementsCount)
	assert.Equal(t, user.ID, snapshot.User.ID)
}

func TestDashboardSnapshotEmpty(t *testing.T) {
	s := setupTestStore(t)
	dashboard := services.NewDashboardService(s)
	user := seedTestUser(t, s)

	snapshot, err := dashboard.Snapshot(context.Background(), user)
	assert.NoError(t, err)
	assert.Empty(t, snapshot.RecentExpenses)
	assert.Empty(t, snapshot.Budgets)
	assert.Equal(t, 0.0, snapshot.TotalSpentThisMonth)
	assert.Equal(t, int64(0), snapshot.AchievementsCount)
}
