package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/USveterandr/budgetwise-ai/internal/database"
	"github.com/USveterandr/budgetwise-ai/internal/gamification"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

// UserStats is the read-side gamification snapshot.
type UserStats struct {
	Points            int   `json:"points"`
	StreakDays        int   `json:"streak_days"`
	Level             int   `json:"level"`
	PointsToNextLevel int   `json:"points_to_next_level"`
	Expenses          int64 `json:"expenses_count"`
	Budgets           int64 `json:"budgets_count"`
	Investments       int64 `json:"investments_count"`
	Achievements      int64 `json:"achievements_count"`
}

// LeaderboardEntry exposes only public fields of ranked users.
type LeaderboardEntry struct {
	FullName string `json:"full_name"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
}

type GamificationService struct {
	store  store.Store
	engine *gamification.Engine
}

func NewGamificationService(s store.Store, engine *gamification.Engine) *GamificationService {
	return &GamificationService{store: s, engine: engine}
}

func (g *GamificationService) Stats(ctx context.Context, user *models.User) (*UserStats, error) {
	stats, err := g.engine.CollectStats(ctx, user)
	if err != nil {
		return nil, err
	}
	achievements, err := g.store.CountAchievements(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &UserStats{
		Points:            user.Points,
		StreakDays:        user.StreakDays,
		Level:             gamification.Level(user.Points),
		PointsToNextLevel: gamification.PointsToNextLevel(user.Points),
		Expenses:          stats.Expenses,
		Budgets:           stats.Budgets,
		Investments:       stats.Investments,
		Achievements:      achievements,
	}, nil
}

func (g *GamificationService) Achievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	return g.store.ListAchievements(ctx, userID)
}

// CheckAchievements is the manual "check for new achievements" action.
func (g *GamificationService) CheckAchievements(ctx context.Context, user *models.User) ([]models.Achievement, error) {
	stats, err := g.engine.CollectStats(ctx, user)
	if err != nil {
		return nil, err
	}
	return g.engine.EvaluateAchievements(ctx, user.ID, stats)
}

func (g *GamificationService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	users, err := g.store.TopUsersByPoints(ctx, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, LeaderboardEntry{
			FullName: user.FullName,
			Points:   user.Points,
			Level:    gamification.Level(user.Points),
		})
	}
	return entries, nil
}

// Challenges recomputes catalogue progress from current stats and persists
// it, so completion survives the stats moving backwards (e.g. a streak
// reset).
func (g *GamificationService) Challenges(ctx context.Context, user *models.User) ([]models.UserChallenge, error) {
	stats, err := g.engine.CollectStats(ctx, user)
	if err != nil {
		return nil, err
	}

	existing, err := g.store.ListUserChallenges(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]models.UserChallenge, len(existing))
	for _, challenge := range existing {
		byCode[challenge.Code] = challenge
	}

	now := time.Now().UTC()
	result := make([]models.UserChallenge, 0, len(gamification.Challenges))
	for _, def := range gamification.Challenges {
		progress := def.Metric(stats)
		if progress > def.Target {
			progress = def.Target
		}

		record, ok := byCode[def.Code]
		if !ok {
			record = models.UserChallenge{
				ID:        uuid.New().String(),
				UserID:    user.ID,
				Code:      def.Code,
				Target:    def.Target,
				CreatedAt: now,
			}
		}
		if record.Completed {
			result = append(result, record)
			continue
		}

		record.Progress = progress
		if progress >= def.Target {
			record.Completed = true
			completedAt := now
			record.CompletedAt = &completedAt
			if err := g.store.IncrementUserPoints(ctx, user.ID, def.Reward); err != nil {
				return nil, err
			}
			database.InvalidateUserCache(user.ID)
		}
		if err := g.store.UpsertUserChallenge(ctx, &record); err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	return result, nil
}
