package http

import (
	"errors"
	"net/http"
	"strings"

	"socialhub/pkg/apperr"
	"socialhub/pkg/logger"
	"socialhub/services/auth/internal/entity"
	"socialhub/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Username        string `json:"username" binding:"min=3,max=30"`
	Email           string `json:"email" binding:"email"`
	Password        string `json:"password" binding:"min=6"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

func newAuthResponse(message, token string, user *entity.User) AuthResponse {
	return AuthResponse{
		Success: true,
		Message: message,
		Token:   token,
		User:    AuthUser{ID: user.ID, Username: user.Username, Email: user.Email},
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}
	switch verrs[0].Field() {
	case "Username":
		return "Username must be between 3 and 30 characters"
	case "Email":
		return "Please provide a valid email"
	case "Password":
		return "Password must be at least 6 characters"
	}
	return "Invalid request body"
}

// Register godoc
// @Summary      Register a new user
// @Description  Register with username, email and a confirmed password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	err := c.ShouldBindJSON(&req)

	if strings.TrimSpace(req.Username) == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		badRequest(c, "Please provide all required fields")
		return
	}
	if req.Password != req.ConfirmPassword {
		badRequest(c, "Passwords do not match")
		return
	}
	if err != nil {
		badRequest(c, validationMessage(err))
		return
	}

	user, token, err := h.authUseCase.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if apperr.IsInternal(err) {
			h.logger.Error("Failed to register user: %v", err)
		}
		apperr.Respond(c, err, "Error registering user")
		return
	}

	c.JSON(http.StatusCreated, newAuthResponse("User registered successfully", token, user))
}

// Login godoc
// @Summary      Login user
// @Description  Authenticate with email and password and return a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	_ = c.ShouldBindJSON(&req)
	if req.Email == "" || req.Password == "" {
		badRequest(c, "Please provide email and password")
		return
	}

	user, token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if apperr.IsInternal(err) {
			h.logger.Error("Failed to log in: %v", err)
		}
		apperr.Respond(c, err, "Error logging in")
		return
	}

	c.JSON(http.StatusOK, newAuthResponse("Logged in successfully", token, user))
}

// GetUser godoc
// @Summary      Get user by ID
// @Description  Public user record with followers and following
// @Tags         auth
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /auth/user/{id} [get]
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.authUseCase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if apperr.IsInternal(err) {
			h.logger.Error("Failed to get user: %v", err)
		}
		apperr.Respond(c, err, "Error fetching user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
