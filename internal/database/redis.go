package database

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/USveterandr/budgetwise-ai/config"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	_, err := RedisClient.Ping(Ctx).Result()
	return err
}

const userCachePrefix = "user:"

// UserCacheKey is the redis key a user record is cached under.
func UserCacheKey(userID string) string {
	return userCachePrefix + userID
}

// InvalidateUserCache drops the cached user record. Every path that writes
// user fields must call this, or the auth middleware keeps serving the
// pre-mutation copy until the cache TTL expires.
func InvalidateUserCache(userID string) {
	if RedisClient != nil {
		RedisClient.Del(Ctx, userCachePrefix+userID)
	}
}
