package http

import (
	"mime/multipart"
	"net/http"

	"socialhub/pkg/logger"
	"socialhub/services/media/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

// UploadProfile godoc
// @Summary      Upload a profile picture
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        profilePicture formData file true "Image"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /upload/profile [post]
func (h *MediaHandler) UploadProfile(c *gin.Context) {
	file, err := c.FormFile("profilePicture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		return
	}

	paths, err := h.mediaUseCase.Upload(c.Request.Context(), []*multipart.FileHeader{file})
	if err != nil {
		h.logger.Error("Failed to upload profile picture: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "path": paths[0]})
}

// UploadMedia godoc
// @Summary      Upload post media
// @Description  Up to 6 images or videos in the media field
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        media formData file true "Files"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /upload/media [post]
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		files = form.File["media"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No files uploaded"})
		return
	}
	if len(files) > usecase.MaxMediaFiles {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Too many files"})
		return
	}

	paths, err := h.mediaUseCase.Upload(c.Request.Context(), files)
	if err != nil {
		h.logger.Error("Failed to upload media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading files"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "paths": paths})
}
