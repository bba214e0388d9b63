package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

type BudgetService struct {
	store store.Store
}

func NewBudgetService(s store.Store) *BudgetService {
	return &BudgetService{store: s}
}

// Create seeds spent from the live expense sum for the category, so a
// recreated budget starts from ground truth even if the previous one had
// drifted.
func (b *BudgetService) Create(ctx context.Context, userID, category string, amount float64, period string) (*models.Budget, error) {
	if period == "" {
		period = models.PeriodMonthly
	}

	spent, err := b.store.SumExpensesByCategory(ctx, userID, category)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		ID:        uuid.New().String(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Period:    period,
		Spent:     spent,
		CreatedAt: time.Now().UTC(),
	}
	if err := b.store.CreateBudget(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (b *BudgetService) List(ctx context.Context, userID string) ([]models.Budget, error) {
	return b.store.ListBudgets(ctx, userID)
}
