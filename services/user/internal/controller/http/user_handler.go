package http

import (
	"net/http"

	"socialhub/pkg/apperr"
	"socialhub/pkg/logger"
	"socialhub/pkg/middleware"
	"socialhub/services/user/internal/entity"
	"socialhub/services/user/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type UpdateProfileRequest struct {
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
}

type UsersResponse struct {
	Success bool             `json:"success"`
	Users   []entity.Summary `json:"users"`
}

type ProfileResponse struct {
	Success   bool             `json:"success"`
	User      entity.User      `json:"user"`
	Followers []entity.Profile `json:"followers"`
	Following []entity.Profile `json:"following"`
	Posts     []entity.Post    `json:"posts"`
}

type FollowResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	IsFollowing bool   `json:"isFollowing"`
}

func (h *UserHandler) fail(c *gin.Context, err error, action, fallback string) {
	if apperr.IsInternal(err) {
		h.logger.Error("Failed to %s: %v", action, err)
	}
	apperr.Respond(c, err, fallback)
}

// GetSuggestions godoc
// @Summary      Who to follow
// @Description  Up to 10 users the caller does not follow yet
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  UsersResponse
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /users/suggestions/{user_id} [get]
func (h *UserHandler) GetSuggestions(c *gin.Context) {
	users, err := h.userUseCase.GetSuggestions(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.fail(c, err, "fetch suggestions", "Error fetching suggestions")
		return
	}

	c.JSON(http.StatusOK, UsersResponse{Success: true, Users: users})
}

// Search godoc
// @Summary      Search users
// @Description  Case-insensitive username match, at most 10 results
// @Tags         users
// @Produce      json
// @Param        query path string true "Search text"
// @Success      200  {object}  UsersResponse
// @Failure      500  {object}  map[string]interface{}
// @Router       /users/search/{query} [get]
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.userUseCase.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		h.fail(c, err, "search users", "Error searching users")
		return
	}

	c.JSON(http.StatusOK, UsersResponse{Success: true, Users: users})
}

// GetProfile godoc
// @Summary      Get user profile
// @Description  User details with followers, following and authored posts
// @Tags         users
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200  {object}  ProfileResponse
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /users/{user_id}/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	page, err := h.userUseCase.GetProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.fail(c, err, "fetch profile", "Error fetching profile")
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Success:   true,
		User:      page.User,
		Followers: page.Followers,
		Following: page.Following,
		Posts:     page.Posts,
	})
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Param        request body UpdateProfileRequest true "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{user_id}/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	user, err := h.userUseCase.UpdateProfile(
		c.Request.Context(),
		c.GetString(middleware.UserIDKey),
		c.Param("user_id"),
		entity.ProfileUpdate{Bio: req.Bio, ProfilePicture: req.ProfilePicture},
	)
	if err != nil {
		h.fail(c, err, "update profile", "Error updating profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// ToggleFollow godoc
// @Summary      Follow or unfollow
// @Description  Flips the follow edge from user_id to target_id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "Follower ID"
// @Param        target_id path string true "Followee ID"
// @Success      200  {object}  FollowResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{user_id}/follow/{target_id} [post]
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	following, err := h.userUseCase.ToggleFollow(
		c.Request.Context(),
		c.GetString(middleware.UserIDKey),
		c.Param("user_id"),
		c.Param("target_id"),
	)
	if err != nil {
		h.fail(c, err, "toggle follow", "Error updating follow")
		return
	}

	message := "Unfollowed successfully"
	if following {
		message = "Followed successfully"
	}
	c.JSON(http.StatusOK, FollowResponse{Success: true, Message: message, IsFollowing: following})
}

// GetFollowers godoc
// @Summary      List followers
// @Tags         users
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{user_id}/followers [get]
func (h *UserHandler) GetFollowers(c *gin.Context) {
	followers, err := h.userUseCase.GetFollowers(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.fail(c, err, "fetch followers", "Error fetching followers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "followers": followers})
}

// GetFollowing godoc
// @Summary      List followed users
// @Tags         users
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{user_id}/following [get]
func (h *UserHandler) GetFollowing(c *gin.Context) {
	following, err := h.userUseCase.GetFollowing(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.fail(c, err, "fetch following", "Error fetching following")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "following": following})
}
