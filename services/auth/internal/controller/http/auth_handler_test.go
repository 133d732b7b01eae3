package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialhub/pkg/apperr"
	"socialhub/pkg/logger"
	"socialhub/services/auth/internal/entity"
	"socialhub/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, username, email, password string) (*entity.User, string, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(ctx context.Context, userID string) (*entity.UserDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserDetails), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	return response
}

func TestRegister_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	mockUseCase.On("Register", mock.Anything, "alice", "alice@example.com", "secret1").
		Return(&entity.User{ID: "u1", Username: "alice", Email: "alice@example.com"}, "token-abc", nil)

	w := postJSON(router, "/auth/register", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "secret1", "confirmPassword": "secret1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decode(w)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "token-abc", response["token"])
	assert.Equal(t, "u1", response["user"].(map[string]interface{})["id"])
	mockUseCase.AssertExpectations(t)
}

func TestRegister_MissingFields(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	w := postJSON(router, "/auth/register", map[string]string{"username": "alice", "email": "alice@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide all required fields", decode(w)["message"])
	mockUseCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	w := postJSON(router, "/auth/register", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "secret1", "confirmPassword": "secret2",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Passwords do not match", decode(w)["message"])
}

func TestRegister_Validation(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	cases := []struct {
		body map[string]string
		want string
	}{
		{map[string]string{"username": "al", "email": "alice@example.com", "password": "secret1", "confirmPassword": "secret1"}, "Username must be between 3 and 30 characters"},
		{map[string]string{"username": "alice", "email": "not-an-email", "password": "secret1", "confirmPassword": "secret1"}, "Please provide a valid email"},
		{map[string]string{"username": "alice", "email": "alice@example.com", "password": "123", "confirmPassword": "123"}, "Password must be at least 6 characters"},
	}

	for _, tc := range cases {
		w := postJSON(router, "/auth/register", tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, tc.want, decode(w)["message"])
	}
}

func TestRegister_Duplicate(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	mockUseCase.On("Register", mock.Anything, "alice", "alice@example.com", "secret1").
		Return(nil, "", apperr.New(apperr.ErrInvalidInput, "Email or username already exists"))

	w := postJSON(router, "/auth/register", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "secret1", "confirmPassword": "secret1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email or username already exists", decode(w)["message"])
}

func TestLogin_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", mock.Anything, "alice@example.com", "secret1").
		Return(&entity.User{ID: "u1", Username: "alice", Email: "alice@example.com"}, "token-abc", nil)

	w := postJSON(router, "/auth/login", LoginRequest{Email: "alice@example.com", Password: "secret1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged in successfully", decode(w)["message"])
}

func TestLogin_MissingFields(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	w := postJSON(router, "/auth/login", LoginRequest{Email: "alice@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide email and password", decode(w)["message"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", mock.Anything, "alice@example.com", "wrong").Return(nil, "", usecase.ErrInvalidCredentials)

	w := postJSON(router, "/auth/login", LoginRequest{Email: "alice@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(w)["message"])
}

func TestGetUser_NotFound(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.GET("/auth/user/:id", handler.GetUser)

	mockUseCase.On("GetUser", mock.Anything, "missing").Return(nil, apperr.New(apperr.ErrNotFound, "User not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/user/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(w)["message"])
}

func TestGetUser_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.GET("/auth/user/:id", handler.GetUser)

	mockUseCase.On("GetUser", mock.Anything, "u1").Return(&entity.UserDetails{
		User:      entity.User{ID: "u1", Username: "alice", Password: "hash"},
		Followers: []entity.Profile{{ID: "f1", Username: "fran"}},
		Following: []entity.Profile{},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/user/u1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	user := decode(w)["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "password")
	assert.Len(t, user["followers"], 1)
}
