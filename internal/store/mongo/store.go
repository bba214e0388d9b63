// Package mongo implements store.Store on a document database. There are no
// cross-document transactions here; counters rely on single-document $inc
// updates only.
package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

const (
	colUsers        = "users"
	colExpenses     = "expenses"
	colBudgets      = "budgets"
	colInvestments  = "investments"
	colAchievements = "achievements"
	colReceipts     = "receipts"
	colDocuments    = "documents"
	colChallenges   = "user_challenges"
)

type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) users() *mongo.Collection {
	return s.db.Collection(colUsers)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(user.Email)
	_, err := s.users().InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicateEmail
	}
	return err
}

func (s *Store) UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	set := bson.M{}
	for key, value := range fields {
		set[key] = value
	}
	_, err := s.users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (s *Store) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	return s.UpdateUserFields(ctx, id, map[string]interface{}{"last_login": at})
}

func (s *Store) IncrementUserPoints(ctx context.Context, id string, delta int) error {
	_, err := s.users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"points": delta}})
	return err
}

func (s *Store) ListUsers(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	total, err := s.users().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))
	cursor, err := s.users().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *Store) TopUsersByPoints(ctx context.Context, limit int) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "points", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := s.users().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) DeleteUserCascade(ctx context.Context, id string) error {
	owned := []string{
		colExpenses, colBudgets, colInvestments, colAchievements,
		colReceipts, colDocuments, colChallenges,
	}
	for _, col := range owned {
		if _, err := s.db.Collection(col).DeleteMany(ctx, bson.M{"user_id": id}); err != nil {
			return err
		}
	}
	result, err := s.users().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

// listByUser drains a user-scoped find into out, newest first by the given
// sort key.
func (s *Store) listByUser(ctx context.Context, col, userID, sortKey string, order int, limit int64, out interface{}) error {
	opts := options.Find().SetSort(bson.D{{Key: sortKey, Value: order}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := s.db.Collection(col).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

// sumAmounts runs a $match + $group aggregation and returns 0 for an empty
// match set.
func (s *Store) sumAmounts(ctx context.Context, col string, match bson.M) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}
	cursor, err := s.db.Collection(col).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
