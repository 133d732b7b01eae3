package http

import (
	"net/http"

	"socialhub/pkg/apperr"
	"socialhub/pkg/logger"
	"socialhub/pkg/middleware"
	"socialhub/services/activity/internal/entity"
	"socialhub/services/activity/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityUseCase usecase.ActivityUseCase
	logger          *logger.Logger
}

func NewActivityHandler(activityUseCase usecase.ActivityUseCase, logger *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityUseCase: activityUseCase,
		logger:          logger,
	}
}

type DismissRequest struct {
	Keys []string `json:"keys" binding:"required,min=1"`
}

type ActivityResponse struct {
	Success       bool                  `json:"success"`
	Notifications []entity.Notification `json:"notifications"`
}

// authorize reports whether the caller may act on :user_id and writes the
// 403 response when not.
func (h *ActivityHandler) authorize(c *gin.Context) (string, bool) {
	userID := c.Param("user_id")
	if c.GetString(middleware.UserIDKey) != userID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized to view this activity"})
		return "", false
	}
	return userID, true
}

// GetActivity godoc
// @Summary      Get user activity
// @Description  Likes, comments and new followers for the user, newest first, at most 60
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Param        type query string false "Only this kind" Enums(like, comment, follow)
// @Success      200  {object}  ActivityResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /users/{user_id}/activity [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	userID, ok := h.authorize(c)
	if !ok {
		return
	}

	notifications, err := h.activityUseCase.ListActivity(c.Request.Context(), userID, entity.Kind(c.Query("type")))
	if err != nil {
		if apperr.IsInternal(err) {
			h.logger.Error("Failed to fetch activity for %s: %v", userID, err)
		}
		apperr.Respond(c, err, "Error fetching activity")
		return
	}

	c.JSON(http.StatusOK, ActivityResponse{Success: true, Notifications: notifications})
}

// Dismiss godoc
// @Summary      Dismiss notifications
// @Description  Hide notifications by key; hidden notifications are left out of later activity reads
// @Tags         activity
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Param        request body DismissRequest true "Notification keys"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /users/{user_id}/activity/dismiss [post]
func (h *ActivityHandler) Dismiss(c *gin.Context) {
	userID, ok := h.authorize(c)
	if !ok {
		return
	}

	var req DismissRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one key is required"})
		return
	}

	added, err := h.activityUseCase.Dismiss(c.Request.Context(), userID, req.Keys)
	if err != nil {
		apperr.Respond(c, err, "Error dismissing notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "dismissed": added})
}

// ClearDismissed godoc
// @Summary      Restore dismissed notifications
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /users/{user_id}/activity/dismiss [delete]
func (h *ActivityHandler) ClearDismissed(c *gin.Context) {
	userID, ok := h.authorize(c)
	if !ok {
		return
	}

	if err := h.activityUseCase.ClearDismissed(c.Request.Context(), userID); err != nil {
		apperr.Respond(c, err, "Error restoring notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
