package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/model"
)

// AuthService defines signup, login and account-recovery operations.
type AuthService interface {
	SignUp(ctx context.Context, username, email, password string) (model.User, string, error)
	Login(ctx context.Context, identifier, password string) (model.User, string, error)
	ForgotUsername(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, username, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	// Username accepts a username or an email address.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type forgotUsernameRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type forgotPasswordRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func makeUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// Signup registers a user and returns the created user with a session token.
func (h *Auth) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username, email and password are required")
		return
	}

	user, token, err := h.authService.SignUp(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: signup completed", "username", user.Username)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "user created",
		"user":    makeUserResponse(user),
		"token":   token,
	})
}

// Login verifies credentials and returns the user with a session token.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: login completed", "username", user.Username)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "login successful",
		"user":    makeUserResponse(user),
		"token":   token,
	})
}

// ForgotUsername mails the username registered for the given email.
func (h *Auth) ForgotUsername(c *gin.Context) {
	var req forgotUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.authService.ForgotUsername(c.Request.Context(), req.Email); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "username sent to registered email",
	})
}

// ForgotPassword mails a password-reset link for the username+email pair.
func (h *Auth) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username and email are required")
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Username, req.Email); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "password reset link sent to registered email",
	})
}

// ResetPassword completes the reset flow with a reset token and a new
// password.
func (h *Auth) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "token and password are required")
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "password updated",
	})
}
