package http

import (
	"net/http"

	"socialhub/pkg/apperr"
	"socialhub/pkg/logger"
	"socialhub/pkg/middleware"
	"socialhub/pkg/models"
	"socialhub/services/post/internal/entity"
	"socialhub/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Content string             `json:"content"`
	Image   *string            `json:"image"`
	Media   []models.MediaItem `json:"media"`
}

func (r CreatePostRequest) input() usecase.CreatePostInput {
	return usecase.CreatePostInput{Content: r.Content, Image: r.Image, Media: r.Media}
}

type CommentRequest struct {
	Content string `json:"content"`
}

type PostResponse struct {
	Success bool         `json:"success"`
	Post    *entity.Post `json:"post"`
}

type LikeResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Liked   bool         `json:"liked"`
	Post    *entity.Post `json:"post"`
}

func (h *PostHandler) fail(c *gin.Context, err error, action, fallback string) {
	if apperr.IsInternal(err) {
		h.logger.Error("Failed to %s: %v", action, err)
	}
	apperr.Respond(c, err, fallback)
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return false
	}
	return true
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Text up to 280 characters with an optional image and media attachments
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), c.GetString(middleware.UserIDKey), req.input())
	if err != nil {
		h.fail(c, err, "create post", "Error creating post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Post created successfully",
		"post":    post,
	})
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Post with author, likers, comments and replies
// @Tags         posts
// @Produce      json
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  PostResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{post_id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		h.fail(c, err, "fetch post", "Error fetching post")
		return
	}

	c.JSON(http.StatusOK, PostResponse{Success: true, Post: post})
}

// LikePost godoc
// @Summary      Like or unlike a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  LikeResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{post_id}/like [post]
func (h *PostHandler) LikePost(c *gin.Context) {
	post, liked, err := h.postUseCase.ToggleLike(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("post_id"))
	if err != nil {
		h.fail(c, err, "toggle like", "Error updating like")
		return
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	c.JSON(http.StatusOK, LikeResponse{Success: true, Message: message, Liked: liked, Post: post})
}

// ReplyToPost godoc
// @Summary      Reply to a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Parent post ID"
// @Param        request body CreatePostRequest true "Reply"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{post_id}/reply [post]
func (h *PostHandler) ReplyToPost(c *gin.Context) {
	var req CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	reply, err := h.postUseCase.Reply(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("post_id"), req.input())
	if err != nil {
		h.fail(c, err, "reply to post", "Error posting reply")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Reply posted successfully",
		"reply":   reply,
	})
}

// AddComment godoc
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Param        request body CommentRequest true "Comment"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{post_id}/comment [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.postUseCase.AddComment(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("post_id"), req.Content)
	if err != nil {
		h.fail(c, err, "add comment", "Error adding comment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// DeleteComment godoc
// @Summary      Delete own comment
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Param        comment_id path string true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{post_id}/comment/{comment_id} [delete]
func (h *PostHandler) DeleteComment(c *gin.Context) {
	err := h.postUseCase.DeleteComment(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("post_id"), c.Param("comment_id"))
	if err != nil {
		h.fail(c, err, "delete comment", "Error deleting comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment deleted successfully"})
}

// DeletePost godoc
// @Summary      Delete own post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{post_id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.DeletePost(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("post_id")); err != nil {
		h.fail(c, err, "delete post", "Error deleting post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted successfully"})
}
