// Package store defines the backend-agnostic persistence contract. Two
// implementations exist, one on a relational database and one on a document
// database; callers must not assume atomicity across two separate calls on
// either of them.
package store

import (
	"context"
	"time"

	"github.com/USveterandr/budgetwise-ai/internal/models"
)

// Store is the persistence surface the rest of the system programs against.
// A single implementation is selected at startup and injected; no code path
// switches backends per call.
//
// Contract notes:
//   - Email lookups lower-case the email before querying.
//   - "Get" methods return ErrNotFound when no record matches.
//   - Aggregates (Count*, Sum*) return zero for empty result sets.
//   - UpdateUserFields applies the whole field map in one statement.
//   - Increment* methods mutate a single field atomically; they are the only
//     write primitives counters rely on.
type Store interface {
	// Users
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) error
	SetLastLogin(ctx context.Context, id string, at time.Time) error
	IncrementUserPoints(ctx context.Context, id string, delta int) error
	ListUsers(ctx context.Context, page, limit int) ([]models.User, int64, error)
	TopUsersByPoints(ctx context.Context, limit int) ([]models.User, error)
	// DeleteUserCascade removes the user and every record they own.
	DeleteUserCascade(ctx context.Context, id string) error

	// Expenses
	CreateExpense(ctx context.Context, expense *models.Expense) error
	ListExpenses(ctx context.Context, userID string) ([]models.Expense, error)
	RecentExpenses(ctx context.Context, userID string, limit int) ([]models.Expense, error)
	CountExpenses(ctx context.Context, userID string) (int64, error)
	SumExpensesSince(ctx context.Context, userID string, since time.Time) (float64, error)
	SumExpensesByCategory(ctx context.Context, userID, category string) (float64, error)

	// Budgets
	CreateBudget(ctx context.Context, budget *models.Budget) error
	ListBudgets(ctx context.Context, userID string) ([]models.Budget, error)
	CountBudgets(ctx context.Context, userID string) (int64, error)
	// FindBudgetByCategory returns the oldest budget for the category, the
	// same row the spent-increment path targets.
	FindBudgetByCategory(ctx context.Context, userID, category string) (*models.Budget, error)
	IncrementBudgetSpent(ctx context.Context, budgetID string, amount float64) error

	// Investments
	CreateInvestment(ctx context.Context, investment *models.Investment) error
	ListInvestments(ctx context.Context, userID string) ([]models.Investment, error)
	CountInvestments(ctx context.Context, userID string) (int64, error)

	// Achievements
	CreateAchievement(ctx context.Context, achievement *models.Achievement) error
	ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error)
	CountAchievements(ctx context.Context, userID string) (int64, error)
	// UnlockedCodes returns the set of achievement codes the user already has.
	UnlockedCodes(ctx context.Context, userID string) (map[string]bool, error)

	// Receipts and documents
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error
	ListReceipts(ctx context.Context, userID string) ([]models.Receipt, error)
	CreateDocument(ctx context.Context, doc *models.BudgetDocument) error
	ListDocuments(ctx context.Context, userID string) ([]models.BudgetDocument, error)

	// Challenges
	ListUserChallenges(ctx context.Context, userID string) ([]models.UserChallenge, error)
	UpsertUserChallenge(ctx context.Context, challenge *models.UserChallenge) error
}
