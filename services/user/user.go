// Package user serves profiles, search, suggestions and the follow graph.
package user

import (
	"socialhub/pkg/logger"
	userHTTP "socialhub/services/user/internal/controller/http"
	"socialhub/services/user/internal/repo/persistent"
	"socialhub/services/user/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Service struct {
	handler *userHTTP.UserHandler
}

func New(log *logger.Logger, db *gorm.DB, redisClient *redis.Client) *Service {
	userRepo := persistent.NewUserRepository(db)
	userUseCase := usecase.NewUserUseCase(userRepo, redisClient, log)
	return &Service{handler: userHTTP.NewUserHandler(userUseCase, log)}
}

// RegisterRoutes mounts read-only endpoints on public and mutations on
// protected. Both groups are expected to be /users.
func (s *Service) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/search/:query", s.handler.Search)
	public.GET("/:user_id/profile", s.handler.GetProfile)
	public.GET("/:user_id/followers", s.handler.GetFollowers)
	public.GET("/:user_id/following", s.handler.GetFollowing)

	protected.GET("/suggestions/:user_id", s.handler.GetSuggestions)
	protected.PUT("/:user_id/profile", s.handler.UpdateProfile)
	protected.POST("/:user_id/follow/:target_id", s.handler.ToggleFollow)
}
