package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DismissedTTL = 30 * 24 * time.Hour

var ErrUnavailable = errors.New("dismissed store unavailable")

// DismissedStore keeps the notification keys a user has hidden.
type DismissedStore interface {
	Members(ctx context.Context, userID string) (map[string]struct{}, error)
	Add(ctx context.Context, userID string, keys []string) (int64, error)
	Clear(ctx context.Context, userID string) error
}

type redisDismissedStore struct {
	client *redis.Client
}

// NewDismissedStore returns a Redis-backed store. A nil client yields a
// store that hides nothing and rejects writes.
func NewDismissedStore(client *redis.Client) DismissedStore {
	return &redisDismissedStore{client: client}
}

func dismissedKey(userID string) string {
	return fmt.Sprintf("activity:dismissed:%s", userID)
}

func (s *redisDismissedStore) Members(ctx context.Context, userID string) (map[string]struct{}, error) {
	if s.client == nil {
		return map[string]struct{}{}, nil
	}

	keys, err := s.client.SMembers(ctx, dismissedKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set, nil
}

func (s *redisDismissedStore) Add(ctx context.Context, userID string, keys []string) (int64, error) {
	if s.client == nil {
		return 0, ErrUnavailable
	}

	members := make([]interface{}, len(keys))
	for i, k := range keys {
		members[i] = k
	}

	key := dismissedKey(userID)
	pipe := s.client.TxPipeline()
	added := pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, DismissedTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return added.Val(), nil
}

func (s *redisDismissedStore) Clear(ctx context.Context, userID string) error {
	if s.client == nil {
		return ErrUnavailable
	}
	return s.client.Del(ctx, dismissedKey(userID)).Err()
}
