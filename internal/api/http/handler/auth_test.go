package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/piyussh25/misinformation-checker/internal/model"
	"github.com/piyussh25/misinformation-checker/internal/testutil"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) SignUp(ctx context.Context, username, email, password string) (model.User, string, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *mockAuthService) Login(ctx context.Context, identifier, password string) (model.User, string, error) {
	args := m.Called(ctx, identifier, password)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *mockAuthService) ForgotUsername(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, username, email string) error {
	args := m.Called(ctx, username, email)
	return args.Error(0)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	args := m.Called(ctx, resetToken, newPassword)
	return args.Error(0)
}

func performJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func makeAuthEngine(service AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuth(service, testutil.MakeNoopLogger())

	engine := gin.New()
	engine.POST("/auth/signup", h.Signup)
	engine.POST("/auth/login", h.Login)
	engine.POST("/auth/forgot-username", h.ForgotUsername)
	engine.POST("/auth/forgot-password", h.ForgotPassword)
	engine.POST("/auth/reset-password", h.ResetPassword)
	return engine
}

func TestAuth_Signup(t *testing.T) {
	service := &mockAuthService{}
	engine := makeAuthEngine(service)

	user := model.User{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now().UTC(),
	}
	service.On("SignUp", mock.Anything, "alice", "alice@example.com", "secret").
		Return(user, "session-token", nil)

	w := performJSON(t, engine, http.MethodPost, "/auth/signup", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "session-token", resp.Token)
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestAuth_Signup_Conflict(t *testing.T) {
	service := &mockAuthService{}
	engine := makeAuthEngine(service)

	service.On("SignUp", mock.Anything, "alice", "alice@example.com", "secret").
		Return(model.User{}, "", model.ErrConflict)

	w := performJSON(t, engine, http.MethodPost, "/auth/signup", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}

func TestAuth_Signup_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{
			name: "missing username",
			body: gin.H{"email": "alice@example.com", "password": "secret"},
		},
		{
			name: "missing password",
			body: gin.H{"username": "alice", "email": "alice@example.com"},
		},
		{
			name: "malformed email",
			body: gin.H{"username": "alice", "email": "not-an-email", "password": "secret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockAuthService{}
			engine := makeAuthEngine(service)

			w := performJSON(t, engine, http.MethodPost, "/auth/signup", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			service.AssertNotCalled(t, "SignUp")
		})
	}
}

func TestAuth_Login(t *testing.T) {
	service := &mockAuthService{}
	engine := makeAuthEngine(service)

	user := model.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	service.On("Login", mock.Anything, "alice", "secret").
		Return(user, "session-token", nil)

	w := performJSON(t, engine, http.MethodPost, "/auth/login", gin.H{
		"username": "alice",
		"password": "secret",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session-token")
}

func TestAuth_Login_BadCredentials(t *testing.T) {
	service := &mockAuthService{}
	engine := makeAuthEngine(service)

	service.On("Login", mock.Anything, "alice", "wrong").
		Return(model.User{}, "", model.ErrInvalidCredentials)

	w := performJSON(t, engine, http.MethodPost, "/auth/login", gin.H{
		"username": "alice",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestAuth_ForgotUsername(t *testing.T) {
	service := &mockAuthService{}
	engine := makeAuthEngine(service)

	service.On("ForgotUsername", mock.Anything, "alice@example.com").Return(nil)

	w := performJSON(t, engine, http.MethodPost, "/auth/forgot-username", gin.H{
		"email": "alice@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "username sent")
}

func TestAuth_ForgotUsername_Unknown(t *testing.T) {
	service := &mockAuthService{}
	engine := makeAuthEngine(service)

	service.On("ForgotUsername", mock.Anything, "missing@example.com").
		Return(model.ErrNotFound)

	w := performJSON(t, engine, http.MethodPost, "/auth/forgot-username", gin.H{
		"email": "missing@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no matching account found")
}

func TestAuth_ForgotPassword(t *testing.T) {
	service := &mockAuthService{}
	engine := makeAuthEngine(service)

	service.On("ForgotPassword", mock.Anything, "alice", "alice@example.com").Return(nil)

	w := performJSON(t, engine, http.MethodPost, "/auth/forgot-password", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "password reset link sent")
}

func TestAuth_ResetPassword(t *testing.T) {
	service := &mockAuthService{}
	engine := makeAuthEngine(service)

	service.On("ResetPassword", mock.Anything, "reset-token", "newsecret").Return(nil)

	w := performJSON(t, engine, http.MethodPost, "/auth/reset-password", gin.H{
		"token":    "reset-token",
		"password": "newsecret",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "password updated")
}

func TestAuth_ResetPassword_BadToken(t *testing.T) {
	service := &mockAuthService{}
	engine := makeAuthEngine(service)

	service.On("ResetPassword", mock.Anything, "stale", "newsecret").
		Return(model.ErrTokenExpired)

	w := performJSON(t, engine, http.MethodPost, "/auth/reset-password", gin.H{
		"token":    "stale",
		"password": "newsecret",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}
