package services

import (
	"context"
	"time"

	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

const recentExpenseLimit = 5

// DashboardSnapshot is a read-only composition across the stores. It
// reflects whatever each store returned at call time; there is no isolation
// across the individual reads.
type DashboardSnapshot struct {
	User                *models.User     `json:"user"`
	RecentExpenses      []models.Expense `json:"recent_expenses"`
	Budgets             []models.Budget  `json:"budgets"`
	TotalSpentThisMonth float64          `json:"total_spent_this_month"`
	AchievementsCount   int64            `json:"achievements_count"`
}

type DashboardService struct {
	store store.Store
}

func NewDashboardService(s store.Store) *DashboardService {
	return &DashboardService{store: s}
}

func (d *DashboardService) Snapshot(ctx context.Context, user *models.User) (*DashboardSnapshot, error) {
	recent, err := d.store.RecentExpenses(ctx, user.ID, recentExpenseLimit)
	if err != nil {
		return nil, err
	}

	budgets, err := d.store.ListBudgets(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	monthlyTotal, err := d.store.SumExpensesSince(ctx, user.ID, MonthStart(time.Now()))
	if err != nil {
		return nil, err
	}

	achievements, err := d.store.CountAchievements(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &DashboardSnapshot{
		User:                user,
		RecentExpenses:      recent,
		Budgets:             budgets,
		TotalSpentThisMonth: monthlyTotal,
		AchievementsCount:   achievements,
	}, nil
}

// MonthStart is the first instant of now's calendar month in UTC.
func MonthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
