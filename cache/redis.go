package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const followCountPrefix = "follow:counts:"

// InitFromEnv initializes Redis from REDIS_URL or REDIS_ADDR. The
// cache is optional: callers treat a nil Client as a miss and fall
// back to the database.
func InitFromEnv() error {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		Client = redis.NewClient(opt)
	} else {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		Client = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			Username: os.Getenv("REDIS_USERNAME"),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		Client = nil
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

// GetFollowCounts returns the cached follower/following counts for a
// user, or ok=false on a miss (or when the cache is down).
func GetFollowCounts(ctx context.Context, userID uint, dest interface{}) bool {
	if Client == nil {
		return false
	}
	val, err := Client.Get(ctx, fmt.Sprintf("%s%d", followCountPrefix, userID)).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// SetFollowCounts caches a user's counts for a short window; any edge
// mutation invalidates, so the TTL is just a backstop.
func SetFollowCounts(ctx context.Context, userID uint, counts interface{}) {
	if Client == nil {
		return
	}
	payload, err := json.Marshal(counts)
	if err != nil {
		return
	}
	Client.Set(ctx, fmt.Sprintf("%s%d", followCountPrefix, userID), payload, 5*time.Minute)
}

// InvalidateFollowCounts drops the cached counts for both ends of an
// edge after a mutation.
func InvalidateFollowCounts(ctx context.Context, userIDs ...uint) {
	if Client == nil {
		return
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = fmt.Sprintf("%s%d", followCountPrefix, id)
	}
	Client.Del(ctx, keys...)
}
