package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/USveterandr/budgetwise-ai/internal/models"
)

// CreateAchievement has no unique index backing it here; duplicate-unlock
// protection on this backend is only the engine's point-in-time existence
// check.
func (s *Store) CreateAchievement(ctx context.Context, achievement *models.Achievement) error {
	_, err := s.db.Collection(colAchievements).InsertOne(ctx, achievement)
	return err
}

func (s *Store) ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.listByUser(ctx, colAchievements, userID, "unlocked_at", -1, 0, &achievements)
	return achievements, err
}

func (s *Store) CountAchievements(ctx context.Context, userID string) (int64, error) {
	return s.db.Collection(colAchievements).CountDocuments(ctx, bson.M{"user_id": userID})
}

func (s *Store) UnlockedCodes(ctx context.Context, userID string) (map[string]bool, error) {
	opts := options.Find().SetProjection(bson.M{"code": 1})
	cursor, err := s.db.Collection(colAchievements).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	var docs []struct {
		Code string `bson:"code"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	unlocked := make(map[string]bool, len(docs))
	for _, doc := range docs {
		unlocked[doc.Code] = true
	}
	return unlocked, nil
}

func (s *Store) ListUserChallenges(ctx context.Context, userID string) ([]models.UserChallenge, error) {
	var challenges []models.UserChallenge
	err := s.listByUser(ctx, colChallenges, userID, "created_at", 1, 0, &challenges)
	return challenges, err
}

func (s *Store) UpsertUserChallenge(ctx context.Context, challenge *models.UserChallenge) error {
	if challenge.CreatedAt.IsZero() {
		challenge.CreatedAt = time.Now().UTC()
	}
	filter := bson.M{"user_id": challenge.UserID, "code": challenge.Code}
	update := bson.M{
		"$set": bson.M{
			"progress":     challenge.Progress,
			"target":       challenge.Target,
			"completed":    challenge.Completed,
			"completed_at": challenge.CompletedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        challenge.ID,
			"user_id":    challenge.UserID,
			"code":       challenge.Code,
			"created_at": challenge.CreatedAt,
		},
	}
	_, err := s.db.Collection(colChallenges).
		UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}
