// Package post stores posts with their likes, comments and replies.
package post

import (
	"socialhub/pkg/logger"
	postHTTP "socialhub/services/post/internal/controller/http"
	"socialhub/services/post/internal/repo/persistent"
	"socialhub/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Service struct {
	handler *postHTTP.PostHandler
}

func New(log *logger.Logger, db *gorm.DB, redisClient *redis.Client) *Service {
	postRepo := persistent.NewPostRepository(db)
	postUseCase := usecase.NewPostUseCase(postRepo, redisClient, log)
	return &Service{handler: postHTTP.NewPostHandler(postUseCase, log)}
}

// RegisterRoutes mounts single-post reads on public and mutations on
// protected. Both groups are expected to be /posts.
func (s *Service) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/:post_id", s.handler.GetPost)

	protected.POST("", s.handler.CreatePost)
	protected.DELETE("/:post_id", s.handler.DeletePost)
	protected.POST("/:post_id/like", s.handler.LikePost)
	protected.POST("/:post_id/reply", s.handler.ReplyToPost)
	protected.POST("/:post_id/comment", s.handler.AddComment)
	protected.DELETE("/:post_id/comment/:comment_id", s.handler.DeleteComment)
}
