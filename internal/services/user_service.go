package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/USveterandr/budgetwise-ai/internal/database"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
)

var ErrUserNotFound = errors.New("user not found")

var validPlans = map[string]bool{
	models.PlanFree:             true,
	models.PlanPersonalPlus:     true,
	models.PlanInvestor:         true,
	models.PlanBusinessProElite: true,
}

type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

// FindByID serves the auth middleware on every authenticated request, so it
// reads through the redis cache when one is configured.
func (u *UserService) FindByID(ctx context.Context, userID string) (*models.User, error) {
	cacheKey := database.UserCacheKey(userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return &user, nil
			}
		}
	}

	user, err := u.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

// List retrieves a paginated page of users for the admin surface.
func (u *UserService) List(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return u.store.ListUsers(ctx, page, limit)
}

// Update applies a partial field map in a single store call. Password values
// are hashed and plan values validated before the write.
func (u *UserService) Update(ctx context.Context, userID string, updates map[string]interface{}) (*models.User, error) {
	if plan, ok := updates["subscription_plan"].(string); ok && !validPlans[plan] {
		return nil, fmt.Errorf("unknown subscription plan %q", plan)
	}
	if password, ok := updates["password"].(string); ok && password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashedPassword)
	}

	if err := u.store.UpdateUserFields(ctx, userID, updates); err != nil {
		return nil, err
	}

	u.invalidate(userID)

	user, err := u.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Delete removes the user and every record they own.
func (u *UserService) Delete(ctx context.Context, userID string) error {
	if err := u.store.DeleteUserCascade(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	u.invalidate(userID)
	return nil
}

func (u *UserService) invalidate(userID string) {
	database.InvalidateUserCache(userID)
}
