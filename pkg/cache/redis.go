package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"socialhub/pkg/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// GetJSON decodes the value at key into dst. It reports false on a miss;
// a nil client always misses.
func GetJSON(ctx context.Context, client *redis.Client, key string, dst interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	data, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func SetJSON(ctx context.Context, client *redis.Client, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, data, ttl).Err()
}

func FeedKey(userID string) string {
	return fmt.Sprintf("feed:user:%s", userID)
}

func PostKey(postID string) string {
	return fmt.Sprintf("post:%s", postID)
}

// Invalidate deletes keys, ignoring a nil client.
func Invalidate(ctx context.Context, client *redis.Client, keys ...string) error {
	if client == nil || len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}
