package services_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/USveterandr/budgetwise-ai/internal/gamification"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

func TestCreateExpenseIncrementsBudget(t *testing.T) {
	s := setupTestStore(t)
	engine := gamification.NewEngine(s)
	expenses := services.NewExpenseService(s, engine)
	ctx := context.Background()
	user := seedTestUser(t, s)

	budget := &models.Budget{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Category: "food",
		Amount:   500,
		Period:   models.PeriodMonthly,
	}
	assert.NoError(t, s.CreateBudget(ctx, budget))

	expense, unlocked, err := expenses.Create(ctx, user, 42.5, "food", "groceries", nil)
	assert.NoError(t, err)
	assert.Equal(t, 42.5, expense.Amount)

	budgets, err := s.ListBudgets(ctx, user.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 42.5, budgets[0].Spent, 0.001)

	// First recorded expense unlocks First Steps alongside the budget rule.
	codes := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		codes = append(codes, a.Code)
	}
	assert.Contains(t, codes, "first-expense")
}

func TestCreateExpenseWithoutBudget(t *testing.T) {
	s := setupTestStore(t)
	engine := gamification.NewEngine(s)
	expenses := services.NewExpenseService(s, engine)
	ctx := context.Background()
	user := seedTestUser(t, s)

	expense, unlocked, err := expenses.Create(ctx, user, 10, "misc", "", nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, expense.ID)
	assert.Len(t, unlocked, 1)
	assert.Equal(t, "first-expense", unlocked[0].Code)
}

func TestCreateExpenseDefaultsDate(t *testing.T) {
	s := setupTestStore(t)
	engine := gamification.NewEngine(s)
	expenses := services.NewExpenseService(s, engine)
	ctx := context.Background()
	user := seedTestUser(t, s)

	before := time.Now().UTC()
	expense, _, err := expenses.Create(ctx, user, 5, "food", "", nil)
	assert.NoError(t, err)
	assert.False(t, expense.Date.Before(before.Add(-time.Second)))

	explicit := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	expense, _, err = expenses.Create(ctx, user, 5, "food", "", &explicit)
	assert.NoError(t, err)
	assert.True(t, expense.Date.Equal(explicit))
}

// failingBudgetStore fails every budget increment.
type failingBudgetStore struct {
	store.Store
}

func (failingBudgetStore) IncrementBudgetSpent(ctx context.Context, budgetID string, amount float64) error {
	return errors.New("connection reset")
}

func TestCreateExpensePropagatesIncrementFailure(t *testing.T) {
	base := setupTestStore(t)
	s := failingBudgetStore{Store: base}
	engine := gamification.NewEngine(s)
	expenses := services.NewExpenseService(s, engine)
	ctx := context.Background()
	user := seedTestUser(t, base)

	assert.NoError(t, base.CreateBudget(ctx, &models.Budget{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Category: "food",
		Amount:   500,
		Period:   models.PeriodMonthly,
	}))

	_, _, err := expenses.Create(ctx, user, 42.5, "food", "groceries", nil)
	assert.Error(t, err)

	// The expense itself is persisted before the increment runs.
	persisted, listErr := base.ListExpenses(ctx, user.ID)
	assert.NoError(t, listErr)
	assert.Len(t, persisted, 1)

	// And the budget total did not move.
	budgets, listErr := base.ListBudgets(ctx, user.ID)
	assert.NoError(t, listErr)
	assert.Equal(t, 0.0, budgets[0].Spent)
}

func TestExportCSV(t *testing.T) {
	s := setupTestStore(t)
	engine := gamification.NewEngine(s)
	expenses := services.NewExpenseService(s, engine)
	ctx := context.Background()
	user := seedTestUser(t, s)

	_, _, err := expenses.Create(ctx, user, 10.10, "food", "lunch", nil)
	assert.NoError(t, err)
	_, _, err = expenses.Create(ctx, user, 20.20, "travel", "bus", nil)
	assert.NoError(t, err)

	data, err := expenses.ExportCSV(ctx, user.ID)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 4)
	assert.Equal(t, []string{"ID", "Date", "Category", "Description", "Amount"}, records[0])

	totalRow := records[len(records)-1]
	assert.Equal(t, "Total", totalRow[3])
	assert.Equal(t, "30.30", totalRow[4])
}
