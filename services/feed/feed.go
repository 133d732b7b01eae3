// Package feed composes the home timeline from followed accounts.
package feed

import (
	"socialhub/pkg/logger"
	feedHTTP "socialhub/services/feed/internal/controller/http"
	"socialhub/services/feed/internal/repo/persistent"
	"socialhub/services/feed/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Service struct {
	handler *feedHTTP.FeedHandler
}

func New(log *logger.Logger, db *gorm.DB, redisClient *redis.Client) *Service {
	feedRepo := persistent.NewFeedRepository(db)
	feedUseCase := usecase.NewFeedUseCase(feedRepo, redisClient, log)
	return &Service{handler: feedHTTP.NewFeedHandler(feedUseCase, log)}
}

// RegisterRoutes mounts the feed on an authenticated /posts group.
func (s *Service) RegisterRoutes(posts *gin.RouterGroup) {
	posts.GET("/feed/:user_id", s.handler.GetFeed)
}
