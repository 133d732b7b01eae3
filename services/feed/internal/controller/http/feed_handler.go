package http

import (
	"net/http"

	"socialhub/pkg/apperr"
	"socialhub/pkg/logger"
	"socialhub/services/feed/internal/entity"
	"socialhub/services/feed/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	logger      *logger.Logger
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

type FeedResponse struct {
	Success      bool          `json:"success"`
	Posts        []entity.Post `json:"posts"`
	HasFollowing bool          `json:"hasFollowing"`
}

// GetFeed godoc
// @Summary      Get home feed
// @Description  Newest 50 posts by the accounts the user follows
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  FeedResponse
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /posts/feed/{user_id} [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID := c.Param("user_id")

	feed, err := h.feedUseCase.GetFeed(c.Request.Context(), userID)
	if err != nil {
		if apperr.IsInternal(err) {
			h.logger.Error("Failed to get feed for %s: %v", userID, err)
		}
		apperr.Respond(c, err, "Error fetching feed")
		return
	}

	c.JSON(http.StatusOK, FeedResponse{Success: true, Posts: feed.Posts, HasFollowing: feed.HasFollowing})
}
