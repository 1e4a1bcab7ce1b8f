package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leon37/SavingsCoach/internal/api/middleware"
	"github.com/leon37/SavingsCoach/internal/api/response"
	"github.com/leon37/SavingsCoach/internal/model"
	"github.com/leon37/SavingsCoach/internal/service"
)

// AuthController handles registration, login and the current-user lookup.
type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ==========================================
// DTOs
// ==========================================

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *model.User `json:"user"`
}

// ==========================================
// Handlers
// ==========================================

// Register creates a user account.
// @Summary Register a new user
// @Description Creates an account, stores the password hashed and returns a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "registration payload"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} apperr.Error
// @Failure 409 {object} apperr.Error
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest

	// 1. Parse body. Field-level checks live in the service so the error
	// messages stay consistent across transports.
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Business logic
	token, user, err := ctrl.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		slog.Warn("register failed", "email", req.Email, "err", err)
		response.Err(c, err)
		return
	}

	// 3. Success
	slog.Info("user registered", "userID", user.ID)
	c.JSON(http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user,
	})
}

// Login verifies credentials and issues a token.
// @Summary Log in
// @Description Checks email and password, returns a fresh session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "login payload"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} apperr.Error
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest

	// 1. Parse body
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Business logic
	token, user, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "email", req.Email, "err", err)
		response.Err(c, err)
		return
	}

	// 3. Success
	slog.Info("user logged in", "userID", user.ID)
	c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// Me returns the profile behind the presented token.
// @Summary Current user
// @Description Returns the authenticated user's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]model.User
// @Failure 401 {object} apperr.Error
// @Security BearerAuth
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := ctrl.authService.Me(c.Request.Context(), userID)
	if err != nil {
		response.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
