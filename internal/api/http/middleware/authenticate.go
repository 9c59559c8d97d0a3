package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/model"
)

// SessionParser resolves user identity from session tokens.
type SessionParser interface {
	ParseSessionToken(token string) (userID uuid.UUID, username string, err error)
}

// Authenticate validates bearer tokens and injects the user identity into
// the request context. A missing Authorization header yields 401; a
// present but invalid or expired token yields 403.
type Authenticate struct {
	tokens         SessionParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens SessionParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle is the required-auth middleware used on protected routes.
func (m *Authenticate) Handle(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "authorization token required",
		})
		return
	}

	userID, username, err := m.authenticateUser(header)
	if err != nil {
		m.logger.Info("Authenticate middleware: rejected token", "error", err.Error())
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "invalid or expired token",
		})
		return
	}

	m.injectUser(c, userID, username)
	c.Next()
}

// HandleOptional authenticates when a valid bearer token is presented but
// lets anonymous and invalid-token requests through unauthenticated. Used
// on /analyze when the route is configured public.
func (m *Authenticate) HandleOptional(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header != "" {
		if userID, username, err := m.authenticateUser(header); err == nil {
			m.injectUser(c, userID, username)
		}
	}
	c.Next()
}

func (m *Authenticate) authenticateUser(header string) (uuid.UUID, string, error) {
	tokenString := strings.TrimPrefix(header, "Bearer ")

	userID, username, err := m.tokens.ParseSessionToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	if userID == uuid.Nil {
		return uuid.Nil, "", model.ErrTokenInvalid
	}

	return userID, username, nil
}

func (m *Authenticate) injectUser(c *gin.Context, userID uuid.UUID, username string) {
	ctx := m.contextManager.SetUserToContext(c.Request.Context(), userID, username)
	c.Request = c.Request.WithContext(ctx)
}
