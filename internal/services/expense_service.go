package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/USveterandr/budgetwise-ai/internal/gamification"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

type ExpenseService struct {
	store  store.Store
	engine *gamification.Engine
}

func NewExpenseService(s store.Store, engine *gamification.Engine) *ExpenseService {
	return &ExpenseService{store: s, engine: engine}
}

// Create inserts the expense, bumps the matching budget's spent total and
// evaluates achievements. The insert and the increment are two independent
// store calls: two racing creations for the same budget can lose one
// increment. That is the accepted consistency gap, not a bug to lock away.
func (e *ExpenseService) Create(ctx context.Context, user *models.User, amount float64, category, description string, date *time.Time) (*models.Expense, []models.Achievement, error) {
	now := time.Now().UTC()
	expenseDate := now
	if date != nil {
		expenseDate = date.UTC()
	}

	expense := &models.Expense{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        expenseDate,
		CreatedAt:   now,
	}
	if err := e.store.CreateExpense(ctx, expense); err != nil {
		return nil, nil, err
	}

	budget, err := e.store.FindBudgetByCategory(ctx, user.ID, category)
	switch {
	case err == nil:
		if err := e.store.IncrementBudgetSpent(ctx, budget.ID, amount); err != nil {
			// The expense is already persisted at this point; the budget
			// total stays behind until the budget is recreated.
			return nil, nil, err
		}
	case errors.Is(err, store.ErrNotFound):
		// No budget for this category.
	default:
		return nil, nil, err
	}

	stats, err := e.engine.CollectStats(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	unlocked, err := e.engine.EvaluateAchievements(ctx, user.ID, stats)
	if err != nil {
		return nil, nil, err
	}

	return expense, unlocked, nil
}

func (e *ExpenseService) List(ctx context.Context, userID string) ([]models.Expense, error) {
	return e.store.ListExpenses(ctx, userID)
}

// ExportCSV renders every expense for the user plus a decimal-exact total
// row.
func (e *ExpenseService) ExportCSV(ctx context.Context, userID string) ([]byte, error) {
	expenses, err := e.store.ListExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}

	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	header := []string{"ID", "Date", "Category", "Description", "Amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, expense := range expenses {
		amount := decimal.NewFromFloat(expense.Amount)
		total = total.Add(amount)
		record := []string{
			expense.ID,
			expense.Date.Format(time.RFC3339),
			expense.Category,
			expense.Description,
			amount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{"", "", "", "Total", total.StringFixed(2)}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
