package postgres

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

func (s *Store) CreateAchievement(ctx context.Context, achievement *models.Achievement) error {
	err := s.db.WithContext(ctx).Create(achievement).Error
	if err != nil && isDuplicate(err) {
		// The unique (user_id, code) index catches the losing side of a
		// concurrent unlock race.
		return store.ErrAlreadyUnlocked
	}
	return err
}

func (s *Store) ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("unlocked_at desc").Find(&achievements).Error
	return achievements, err
}

func (s *Store) CountAchievements(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Achievement{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (s *Store) UnlockedCodes(ctx context.Context, userID string) (map[string]bool, error) {
	var codes []string
	err := s.db.WithContext(ctx).Model(&models.Achievement{}).
		Where("user_id = ?", userID).Pluck("code", &codes).Error
	if err != nil {
		return nil, err
	}
	unlocked := make(map[string]bool, len(codes))
	for _, code := range codes {
		unlocked[code] = true
	}
	return unlocked, nil
}

func (s *Store) ListUserChallenges(ctx context.Context, userID string) ([]models.UserChallenge, error) {
	var challenges []models.UserChallenge
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at asc").Find(&challenges).Error
	return challenges, err
}

func (s *Store) UpsertUserChallenge(ctx context.Context, challenge *models.UserChallenge) error {
	if challenge.CreatedAt.IsZero() {
		challenge.CreatedAt = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"progress", "completed", "completed_at",
		}),
	}).Create(challenge).Error
}
