// Package media accepts file uploads and hands back their public paths.
package media

import (
	"socialhub/pkg/logger"
	"socialhub/pkg/storage"
	mediaHTTP "socialhub/services/media/internal/controller/http"
	"socialhub/services/media/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Service struct {
	handler *mediaHTTP.MediaHandler
}

func New(log *logger.Logger, store storage.Storage) *Service {
	mediaUseCase := usecase.NewMediaUseCase(store, log)
	return &Service{handler: mediaHTTP.NewMediaHandler(mediaUseCase, log)}
}

// RegisterRoutes mounts the upload endpoints on api. They do not require a token.
func (s *Service) RegisterRoutes(api *gin.RouterGroup) {
	upload := api.Group("/upload")
	{
		upload.POST("/profile", s.handler.UploadProfile)
		upload.POST("/media", s.handler.UploadMedia)
	}
}
