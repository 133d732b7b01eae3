package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialhub/pkg/apperr"
	"socialhub/pkg/logger"
	"socialhub/pkg/models"
	"socialhub/services/post/internal/entity"
	"socialhub/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, authorID string, input usecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ToggleLike(ctx context.Context, userID, postID string) (*entity.Post, bool, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*entity.Post), args.Bool(1), args.Error(2)
}

func (m *MockPostUseCase) Reply(ctx context.Context, authorID, parentID string, input usecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, authorID, parentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) AddComment(ctx context.Context, authorID, postID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, authorID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockPostUseCase) DeleteComment(ctx context.Context, callerID, postID, commentID string) error {
	args := m.Called(ctx, callerID, postID, commentID)
	return args.Error(0)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, callerID, postID string) error {
	args := m.Called(ctx, callerID, postID)
	return args.Error(0)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func setupTestRouter(handler *PostHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Next()
	})
	posts := router.Group("/posts")
	posts.POST("", handler.CreatePost)
	posts.GET("/:post_id", handler.GetPost)
	posts.DELETE("/:post_id", handler.DeletePost)
	posts.POST("/:post_id/like", handler.LikePost)
	posts.POST("/:post_id/reply", handler.ReplyToPost)
	posts.POST("/:post_id/comment", handler.AddComment)
	posts.DELETE("/:post_id/comment/:comment_id", handler.DeleteComment)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	return response
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	router := setupTestRouter(NewPostHandler(mockUseCase, logger.New()))

	input := usecase.CreatePostInput{
		Content: "hello world",
		Media:   []models.MediaItem{{Path: "/uploads/a.png", MediaType: models.MediaImage}},
	}
	mockUseCase.On("CreatePost", mock.Anything, "user-123", input).Return(&entity.Post{
		ID:      "post-1",
		Content: "hello world",
		Author:  entity.Profile{ID: "user-123", Username: "alice"},
		Media:   input.Media,
	}, nil)

	w := doJSON(router, http.MethodPost, "/posts", map[string]interface{}{
		"content": "hello world",
		"media":   []map[string]string{{"path": "/uploads/a.png", "mediaType": "image"}},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decode(w)
	assert.Equal(t, "Post created successfully", response["message"])
	post := response["post"].(map[string]interface{})
	assert.Equal(t, "post-1", post["id"])
	assert.Equal(t, "alice", post["author"].(map[string]interface{})["username"])
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_MissingContent(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	router := setupTestRouter(NewPostHandler(mockUseCase, logger.New()))

	mockUseCase.On("CreatePost", mock.Anything, "user-123", usecase.CreatePostInput{}).Return(nil, usecase.ErrContentRequired)

	w := doJSON(router, http.MethodPost, "/posts", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decode(w)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Content is required", response["message"])
}

func TestCreatePost_InternalError(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	router := setupTestRouter(NewPostHandler(mockUseCase, logger.New()))

	mockUseCase.On("CreatePost", mock.Anything, "user-123", mock.Anything).Return(nil, errors.New("pq: connection refused"))

	w := doJSON(router, http.MethodPost, "/posts", map[string]string{"content": "hi"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error creating post", decode(w)["message"])
}

func TestGetPost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	router := setupTestRouter(NewPostHandler(mockUseCase, logger.New()))

	mockUseCase.On("GetPost", mock.Anything, "post-1").Return(&entity.Post{ID: "post-1", Likes: []entity.Profile{}}, nil)
	mockUseCase.On("GetPost", mock.Anything, "ghost").Return(nil, apperr.New(apperr.ErrNotFound, "Post not found"))

	w := doJSON(router, http.MethodGet, "/posts/post-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "post-1", decode(w)["post"].(map[string]interface{})["id"])

	w = doJSON(router, http.MethodGet, "/posts/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", decode(w)["message"])
}

func TestLikePost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	router := setupTestRouter(NewPostHandler(mockUseCase, logger.New()))

	post := &entity.Post{ID: "post-1"}
	mockUseCase.On("ToggleLike", mock.Anything, "user-123", "post-1").Return(post, true, nil).Once()
	mockUseCase.On("ToggleLike", mock.Anything, "user-123", "post-1").Return(post, false, nil).Once()

	w := doJSON(router, http.MethodPost, "/posts/post-1/like", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	response := decode(w)
	assert.Equal(t, "Post liked", response["message"])
	assert.Equal(t, true, response["liked"])

	w = doJSON(router, http.MethodPost, "/posts/post-1/like", nil)
	response = decode(w)
	assert.Equal(t, "Post unliked", response["message"])
	assert.Equal(t, false, response["liked"])
}

func TestReplyToPost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	router := setupTestRouter(NewPostHandler(mockUseCase, logger.New()))

	parent := "post-1"
	mockUseCase.On("Reply", mock.Anything, "user-123", "post-1", usecase.CreatePostInput{Content: "same"}).
		Return(&entity.Post{ID: "reply-1", ParentPostID: &parent}, nil)

	w := doJSON(router, http.MethodPost, "/posts/post-1/reply", map[string]string{"content": "same"})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decode(w)
	assert.Equal(t, "Reply posted successfully", response["message"])
	assert.Equal(t, "post-1", response["reply"].(map[string]interface{})["parentPost"])
}

func TestAddComment(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	router := setupTestRouter(NewPostHandler(mockUseCase, logger.New()))

	mockUseCase.On("AddComment", mock.Anything, "user-123", "post-1", "nice").
		Return(&entity.Comment{ID: "c1", PostID: "post-1", Content: "nice"}, nil)
	mockUseCase.On("AddComment", mock.Anything, "user-123", "post-1", "").
		Return(nil, usecase.ErrCommentContentRequired)

	w := doJSON(router, http.MethodPost, "/posts/post-1/comment", map[string]string{"content": "nice"})
	assert.Equal(t, http.StatusCreated, w.Code)
	response := decode(w)
	assert.Equal(t, "Comment added successfully", response["message"])
	assert.Equal(t, "nice", response["comment"].(map[string]interface{})["content"])

	w = doJSON(router, http.MethodPost, "/posts/post-1/comment", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Comment content is required", decode(w)["message"])
}

func TestDeleteComment(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	router := setupTestRouter(NewPostHandler(mockUseCase, logger.New()))

	mockUseCase.On("DeleteComment", mock.Anything, "user-123", "post-1", "c1").Return(nil)
	mockUseCase.On("DeleteComment", mock.Anything, "user-123", "post-1", "c2").
		Return(apperr.New(apperr.ErrForbidden, "Not authorized to delete this comment"))

	w := doJSON(router, http.MethodDelete, "/posts/post-1/comment/c1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Comment deleted successfully", decode(w)["message"])

	w = doJSON(router, http.MethodDelete, "/posts/post-1/comment/c2", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not authorized to delete this comment", decode(w)["message"])
}

func TestDeletePost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	router := setupTestRouter(NewPostHandler(mockUseCase, logger.New()))

	mockUseCase.On("DeletePost", mock.Anything, "user-123", "post-1").Return(nil)
	mockUseCase.On("DeletePost", mock.Anything, "user-123", "post-2").
		Return(apperr.New(apperr.ErrForbidden, "Not authorized to delete this post"))

	w := doJSON(router, http.MethodDelete, "/posts/post-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post deleted successfully", decode(w)["message"])

	w = doJSON(router, http.MethodDelete, "/posts/post-2", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreatePost_MalformedBody(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	router := setupTestRouter(NewPostHandler(mockUseCase, logger.New()))

	req, _ := http.NewRequest(http.MethodPost, "/posts", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}
