package usecase

import (
	"context"
	"time"

	"socialhub/pkg/cache"
	"socialhub/pkg/logger"
	"socialhub/services/feed/internal/entity"
	"socialhub/services/feed/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const (
	FeedLimit    = 50
	FeedCacheTTL = 30 * time.Second
)

type FeedUseCase interface {
	GetFeed(ctx context.Context, userID string) (*entity.Feed, error)
}

type feedUseCase struct {
	feedRepo    persistent.FeedRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewFeedUseCase(feedRepo persistent.FeedRepository, redisClient *redis.Client, logger *logger.Logger) FeedUseCase {
	return &feedUseCase{
		feedRepo:    feedRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetFeed returns the newest posts by the accounts userID follows. Cache
// errors are logged and the feed is composed from the database.
func (uc *feedUseCase) GetFeed(ctx context.Context, userID string) (*entity.Feed, error) {
	key := cache.FeedKey(userID)

	var cached entity.Feed
	hit, err := cache.GetJSON(ctx, uc.redisClient, key, &cached)
	if err != nil {
		uc.logger.Warn("Failed to read feed cache %s: %v", key, err)
	}
	if hit {
		return &cached, nil
	}

	following, err := uc.feedRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := uc.feedRepo.GetPostsByAuthors(ctx, following, FeedLimit)
	if err != nil {
		return nil, err
	}

	feed := &entity.Feed{Posts: posts, HasFollowing: len(following) > 0}
	if err := cache.SetJSON(ctx, uc.redisClient, key, feed, FeedCacheTTL); err != nil {
		uc.logger.Warn("Failed to write feed cache %s: %v", key, err)
	}
	return feed, nil
}
