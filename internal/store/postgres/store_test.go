package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
	"github.com/USveterandr/budgetwise-ai/internal/store/postgres"
)

func setupStore(t *testing.T) *postgres.Store {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.Migrator().DropTable(&models.User{}, &models.Expense{}, &models.Budget{},
		&models.Investment{}, &models.Achievement{}, &models.Receipt{},
		&models.BudgetDocument{}, &models.UserChallenge{})

	s := postgres.New(db)
	if err := s.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return s
}

func createUser(t *testing.T, s *postgres.Store, email string) *models.User {
	user := &models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: "hashedpassword",
		FullName: "Test User",
	}
	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestGetUserByEmailCaseInsensitive(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	created := createUser(t, s, "User@Example.com")

	found, err := s.GetUserByEmail(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	found, err = s.GetUserByEmail(ctx, "USER@EXAMPLE.COM")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = s.GetUserByEmail(ctx, "other@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := setupStore(t)
	createUser(t, s, "dup@example.com")

	err := s.CreateUser(context.Background(), &models.User{
		ID:       uuid.NewString(),
		Email:    "Dup@Example.com",
		Password: "hashedpassword",
		FullName: "Second",
	})
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestUpdateUserFieldsPartial(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	user := createUser(t, s, "partial@example.com")

	err := s.UpdateUserFields(ctx, user.ID, map[string]interface{}{
		"full_name":   "Renamed",
		"streak_days": 7,
	})
	assert.NoError(t, err)

	refreshed, err := s.GetUserByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", refreshed.FullName)
	assert.Equal(t, 7, refreshed.StreakDays)
	assert.Equal(t, "partial@example.com", refreshed.Email)
}

func TestSumExpensesSinceIgnoresOlder(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	user := createUser(t, s, "sums@example.com")

	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	addExpense := func(amount float64, date time.Time) {
		err := s.CreateExpense(ctx, &models.Expense{
			ID:       uuid.NewString(),
			UserID:   user.ID,
			Amount:   amount,
			Category: "food",
			Date:     date,
		})
		assert.NoError(t, err)
	}

	addExpense(40, monthStart.Add(-48*time.Hour))
	addExpense(60, monthStart.Add(-time.Minute))

	total, err := s.SumExpensesSince(ctx, user.ID, monthStart)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)

	addExpense(25, monthStart.Add(3*24*time.Hour))
	addExpense(10.5, monthStart.Add(5*24*time.Hour))

	total, err = s.SumExpensesSince(ctx, user.ID, monthStart)
	assert.NoError(t, err)
	assert.InDelta(t, 35.5, total, 0.001)
}

func TestRecentExpensesNewestFirst(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	user := createUser(t, s, "recent@example.com")

	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		err := s.CreateExpense(ctx, &models.Expense{
			ID:       uuid.NewString(),
			UserID:   user.ID,
			Amount:   float64(i + 1),
			Category: "food",
			Date:     base.Add(time.Duration(i) * time.Hour),
		})
		assert.NoError(t, err)
	}

	recent, err := s.RecentExpenses(ctx, user.ID, 5)
	assert.NoError(t, err)
	assert.Len(t, recent, 5)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].Date.After(recent[i-1].Date))
	}
	assert.Equal(t, 7.0, recent[0].Amount)
}

func TestIncrementBudgetSpent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	user := createUser(t, s, "budget@example.com")

	budget := &models.Budget{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Category: "food",
		Amount:   500,
		Period:   models.PeriodMonthly,
	}
	assert.NoError(t, s.CreateBudget(ctx, budget))

	assert.NoError(t, s.IncrementBudgetSpent(ctx, budget.ID, 30))
	assert.NoError(t, s.IncrementBudgetSpent(ctx, budget.ID, 12.5))

	budgets, err := s.ListBudgets(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, budgets, 1)
	assert.InDelta(t, 42.5, budgets[0].Spent, 0.001)
}

func TestFindBudgetByCategoryOldestWins(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	user := createUser(t, s, "oldest@example.com")

	older := &models.Budget{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Category:  "food",
		Amount:    100,
		Period:    models.PeriodMonthly,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &models.Budget{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Category:  "food",
		Amount:    200,
		Period:    models.PeriodMonthly,
		CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, s.CreateBudget(ctx, newer))
	assert.NoError(t, s.CreateBudget(ctx, older))

	found, err := s.FindBudgetByCategory(ctx, user.ID, "food")
	assert.NoError(t, err)
	assert.Equal(t, older.ID, found.ID)

	_, err = s.FindBudgetByCategory(ctx, user.ID, "travel")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateAchievementDuplicateCode(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	user := createUser(t, s, "achieve@example.com")

	first := &models.Achievement{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Code:       "first-expense",
		Title:      "First Steps",
		Points:     10,
		IsUnlocked: true,
		UnlockedAt: time.Now().UTC(),
	}
	assert.NoError(t, s.CreateAchievement(ctx, first))

	dup := &models.Achievement{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Code:       "first-expense",
		Title:      "First Steps",
		Points:     10,
		IsUnlocked: true,
		UnlockedAt: time.Now().UTC(),
	}
	assert.ErrorIs(t, s.CreateAchievement(ctx, dup), store.ErrAlreadyUnlocked)

	codes, err := s.UnlockedCodes(ctx, user.ID)
	assert.NoError(t, err)
	assert.True(t, codes["first-expense"])
	assert.Len(t, codes, 1)
}

func TestDeleteUserCascade(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	user := createUser(t, s, "cascade@example.com")
	other := createUser(t, s, "bystander@example.com")

	assert.NoError(t, s.CreateExpense(ctx, &models.Expense{
		ID: uuid.NewString(), UserID: user.ID, Amount: 5, Category: "food", Date: time.Now().UTC(),
	}))
	assert.NoError(t, s.CreateBudget(ctx, &models.Budget{
		ID: uuid.NewString(), UserID: user.ID, Category: "food", Amount: 100, Period: models.PeriodMonthly,
	}))
	assert.NoError(t, s.CreateExpense(ctx, &models.Expense{
		ID: uuid.NewString(), UserID: other.ID, Amount: 9, Category: "food", Date: time.Now().UTC(),
	}))

	assert.NoError(t, s.DeleteUserCascade(ctx, user.ID))

	_, err := s.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	expenses, err := s.ListExpenses(ctx, user.ID)
	assert.NoError(t, err)
	assert.Empty(t, expenses)

	kept, err := s.ListExpenses(ctx, other.ID)
	assert.NoError(t, err)
	assert.Len(t, kept, 1)

	assert.ErrorIs(t, s.DeleteUserCascade(ctx, user.ID), store.ErrNotFound)
}

func TestTopUsersByPoints(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	low := createUser(t, s, "low@example.com")
	high := createUser(t, s, "high@example.com")
	mid := createUser(t, s, "mid@example.com")

	assert.NoError(t, s.IncrementUserPoints(ctx, low.ID, 10))
	assert.NoError(t, s.IncrementUserPoints(ctx, high.ID, 300))
	assert.NoError(t, s.IncrementUserPoints(ctx, mid.ID, 150))

	top, err := s.TopUsersByPoints(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, top, 2)
	assert.Equal(t, high.ID, top[0].ID)
	assert.Equal(t, mid.ID, top[1].ID)
}
