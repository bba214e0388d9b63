package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/USveterandr/budgetwise-ai/internal/models"
)

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	_, err := s.db.Collection(colExpenses).InsertOne(ctx, expense)
	return err
}

func (s *Store) ListExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.listByUser(ctx, colExpenses, userID, "date", -1, 0, &expenses)
	return expenses, err
}

func (s *Store) RecentExpenses(ctx context.Context, userID string, limit int) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.listByUser(ctx, colExpenses, userID, "created_at", -1, int64(limit), &expenses)
	return expenses, err
}

func (s *Store) CountExpenses(ctx context.Context, userID string) (int64, error) {
	return s.db.Collection(colExpenses).CountDocuments(ctx, bson.M{"user_id": userID})
}

func (s *Store) SumExpensesSince(ctx context.Context, userID string, since time.Time) (float64, error) {
	return s.sumAmounts(ctx, colExpenses, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": since},
	})
}

func (s *Store) SumExpensesByCategory(ctx context.Context, userID, category string) (float64, error) {
	return s.sumAmounts(ctx, colExpenses, bson.M{
		"user_id":  userID,
		"category": category,
	})
}

func (s *Store) CreateBudget(ctx context.Context, budget *models.Budget) error {
	_, err := s.db.Collection(colBudgets).InsertOne(ctx, budget)
	return err
}

func (s *Store) ListBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.listByUser(ctx, colBudgets, userID, "created_at", 1, 0, &budgets)
	return budgets, err
}

func (s *Store) CountBudgets(ctx context.Context, userID string) (int64, error) {
	return s.db.Collection(colBudgets).CountDocuments(ctx, bson.M{"user_id": userID})
}

func (s *Store) FindBudgetByCategory(ctx context.Context, userID, category string) (*models.Budget, error) {
	var budget models.Budget
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})
	err := s.db.Collection(colBudgets).
		FindOne(ctx, bson.M{"user_id": userID, "category": category}, opts).
		Decode(&budget)
	if err != nil {
		return nil, translate(err)
	}
	return &budget, nil
}

func (s *Store) IncrementBudgetSpent(ctx context.Context, budgetID string, amount float64) error {
	_, err := s.db.Collection(colBudgets).UpdateOne(ctx,
		bson.M{"_id": budgetID},
		bson.M{"$inc": bson.M{"spent": amount}})
	return err
}

func (s *Store) CreateInvestment(ctx context.Context, investment *models.Investment) error {
	_, err := s.db.Collection(colInvestments).InsertOne(ctx, investment)
	return err
}

func (s *Store) ListInvestments(ctx context.Context, userID string) ([]models.Investment, error) {
	var investments []models.Investment
	err := s.listByUser(ctx, colInvestments, userID, "created_at", -1, 0, &investments)
	return investments, err
}

func (s *Store) CountInvestments(ctx context.Context, userID string) (int64, error) {
	return s.db.Collection(colInvestments).CountDocuments(ctx, bson.M{"user_id": userID})
}
