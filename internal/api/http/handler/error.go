package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/model"
)

// handleError converts a failure into its HTTP taxonomy: known conditions
// map to 400/401/403 with a user-facing message, anything else becomes a
// generic 500 with the detail logged server-side only.
func handleError(c *gin.Context, logger *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrConflict):
		respondError(c, http.StatusBadRequest, "username or email already taken")
	case errors.Is(err, model.ErrInvalidCredentials):
		respondError(c, http.StatusBadRequest, "invalid credentials")
	case errors.Is(err, model.ErrNotFound):
		respondError(c, http.StatusBadRequest, "no matching account found")
	case errors.Is(err, model.ErrTokenExpired), errors.Is(err, model.ErrTokenInvalid):
		respondError(c, http.StatusForbidden, "invalid or expired token")
	default:
		logger.Error("handler: internal error",
			"path", c.Request.URL.Path,
			"error", err.Error())
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
