package gamification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/USveterandr/budgetwise-ai/internal/database"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

// Engine applies streak and achievement side effects through the injected
// store.
type Engine struct {
	store store.Store
}

func NewEngine(s store.Store) *Engine {
	return &Engine{store: s}
}

// CollectStats pulls the counts every rule is evaluated against.
func (e *Engine) CollectStats(ctx context.Context, user *models.User) (Stats, error) {
	expenses, err := e.store.CountExpenses(ctx, user.ID)
	if err != nil {
		return Stats{}, err
	}
	budgets, err := e.store.CountBudgets(ctx, user.ID)
	if err != nil {
		return Stats{}, err
	}
	investments, err := e.store.CountInvestments(ctx, user.ID)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Expenses:    expenses,
		Budgets:     budgets,
		Investments: investments,
		StreakDays:  user.StreakDays,
	}, nil
}

// UpdateStreak computes the new streak for a login happening at now and
// persists streak_days together with last_login in a single field update.
// Returns the new streak value.
func (e *Engine) UpdateStreak(ctx context.Context, user *models.User, now time.Time) (int, error) {
	streak := NextStreak(user.LastLogin, now, user.StreakDays)
	err := e.store.UpdateUserFields(ctx, user.ID, map[string]interface{}{
		"streak_days": streak,
		"last_login":  now.UTC(),
	})
	if err != nil {
		return 0, err
	}
	database.InvalidateUserCache(user.ID)
	return streak, nil
}

// EvaluateAchievements walks the rule catalogue against stats and unlocks
// every satisfied rule the user does not already hold, then applies the
// summed reward as one points increment. Returns the new unlocks only.
// Re-running with unchanged stats unlocks nothing, so the call is safe to
// repeat. The existence check is point-in-time; two simultaneous calls can
// still race on a backend without a unique (user, code) index.
func (e *Engine) EvaluateAchievements(ctx context.Context, userID string, stats Stats) ([]models.Achievement, error) {
	unlocked, err := e.store.UnlockedCodes(ctx, userID)
	if err != nil {
		return nil, err
	}

	var newAchievements []models.Achievement
	earned := 0
	now := time.Now().UTC()

	for _, rule := range Rules {
		if unlocked[rule.Code] || !rule.Condition(stats) {
			continue
		}
		achievement := models.Achievement{
			ID:          uuid.New().String(),
			UserID:      userID,
			Code:        rule.Code,
			Title:       rule.Title,
			Description: rule.Description,
			Points:      rule.Points,
			Icon:        rule.Icon,
			Category:    rule.Category,
			IsUnlocked:  true,
			UnlockedAt:  now,
		}
		if err := e.store.CreateAchievement(ctx, &achievement); err != nil {
			if errors.Is(err, store.ErrAlreadyUnlocked) {
				// Lost a concurrent unlock race; the other call awarded it.
				zap.L().Warn("achievement unlock race",
					zap.String("user_id", userID),
					zap.String("code", rule.Code))
				continue
			}
			return nil, err
		}
		newAchievements = append(newAchievements, achievement)
		earned += rule.Points
	}

	if earned > 0 {
		if err := e.store.IncrementUserPoints(ctx, userID, earned); err != nil {
			return nil, err
		}
		database.InvalidateUserCache(userID)
	}

	return newAchievements, nil
}
