package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/imagevault/image-service/internal/logger"
	"github.com/imagevault/image-service/internal/models"
)

// UserCacheRepository caches resolved user records in Redis. The identity
// resolver runs on every authenticated request, so the hot lookup path
// reads here before hitting Postgres.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached user records
}

// NewUserCacheRepository creates a cache repository with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s", userID)
}

// Get returns the cached user record, or (nil, nil) on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	key := userKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Debugw("user cache get", "key", key, "error", err)
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Debugw("user cache decode", "key", key, "error", err)
		return nil, err
	}

	return &user, nil
}

// Set stores the user record with the repository's TTL.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := userKey(user.UserID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("user cache set", "key", key, "error", err)

	return err
}
