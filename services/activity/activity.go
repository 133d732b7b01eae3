// Package activity serves the per-user notification view.
package activity

import (
	"socialhub/pkg/config"
	"socialhub/pkg/logger"
	activityHTTP "socialhub/services/activity/internal/controller/http"
	"socialhub/services/activity/internal/repo/cache"
	"socialhub/services/activity/internal/repo/persistent"
	"socialhub/services/activity/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Service struct {
	handler *activityHTTP.ActivityHandler
}

func New(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) *Service {
	activityRepo := persistent.NewActivityRepository(db)
	dismissedStore := cache.NewDismissedStore(redisClient)
	activityUseCase := usecase.NewActivityUseCase(
		activityRepo,
		dismissedStore,
		usecase.ParseTimestampPolicy(cfg.ActivityTimestamps),
		log,
	)

	return &Service{handler: activityHTTP.NewActivityHandler(activityUseCase, log)}
}

// RegisterRoutes mounts the activity endpoints on an authenticated /users group.
func (s *Service) RegisterRoutes(users *gin.RouterGroup) {
	users.GET("/:user_id/activity", s.handler.GetActivity)
	users.POST("/:user_id/activity/dismiss", s.handler.Dismiss)
	users.DELETE("/:user_id/activity/dismiss", s.handler.ClearDismissed)
}
