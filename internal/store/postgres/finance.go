package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/USveterandr/budgetwise-ai/internal/models"
)

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return s.db.WithContext(ctx).Create(expense).Error
}

func (s *Store) ListExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("date desc").Find(&expenses).Error
	return expenses, err
}

func (s *Store) RecentExpenses(ctx context.Context, userID string, limit int) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at desc").Limit(limit).Find(&expenses).Error
	return expenses, err
}

func (s *Store) CountExpenses(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Expense{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (s *Store) SumExpensesSince(ctx context.Context, userID string, since time.Time) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(&models.Expense{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (s *Store) SumExpensesByCategory(ctx context.Context, userID, category string) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(&models.Expense{}).
		Where("user_id = ? AND category = ?", userID, category).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (s *Store) CreateBudget(ctx context.Context, budget *models.Budget) error {
	return s.db.WithContext(ctx).Create(budget).Error
}

func (s *Store) ListBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at asc").Find(&budgets).Error
	return budgets, err
}

func (s *Store) CountBudgets(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Budget{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (s *Store) FindBudgetByCategory(ctx context.Context, userID, category string) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.WithContext(ctx).Where("user_id = ? AND category = ?", userID, category).
		Order("created_at asc").First(&budget).Error
	if err != nil {
		return nil, translate(err)
	}
	return &budget, nil
}

func (s *Store) IncrementBudgetSpent(ctx context.Context, budgetID string, amount float64) error {
	return s.db.WithContext(ctx).Model(&models.Budget{}).Where("id = ?", budgetID).
		UpdateColumn("spent", gorm.Expr("spent + ?", amount)).Error
}

func (s *Store) CreateInvestment(ctx context.Context, investment *models.Investment) error {
	return s.db.WithContext(ctx).Create(investment).Error
}

func (s *Store) ListInvestments(ctx context.Context, userID string) ([]models.Investment, error) {
	var investments []models.Investment
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at desc").Find(&investments).Error
	return investments, err
}

func (s *Store) CountInvestments(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Investment{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
