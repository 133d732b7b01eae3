// Package auth handles registration, login and public user lookup.
package auth

import (
	"socialhub/pkg/jwt"
	"socialhub/pkg/logger"
	authHTTP "socialhub/services/auth/internal/controller/http"
	"socialhub/services/auth/internal/repo/persistent"
	"socialhub/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Service struct {
	handler *authHTTP.AuthHandler
}

func New(log *logger.Logger, db *gorm.DB, jwtService *jwt.Service) *Service {
	userRepo := persistent.NewUserRepository(db)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	return &Service{handler: authHTTP.NewAuthHandler(authUseCase, log)}
}

// RegisterRoutes mounts the public /auth endpoints.
func (s *Service) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", s.handler.Register)
		auth.POST("/login", s.handler.Login)
		auth.GET("/user/:id", s.handler.GetUser)
	}
}
