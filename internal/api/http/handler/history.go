package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/model"
)

// History handles search-history endpoints. All routes sit behind the
// authentication middleware.
type History struct {
	analysisService AnalysisService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewHistory creates a new History handler.
func NewHistory(analysisService AnalysisService, contextManager model.ContextManager, logger *logger.Logger) *History {
	return &History{
		analysisService: analysisService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// List returns up to 50 newest entries for the authenticated user.
func (h *History) List(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "authorization token required")
		return
	}

	entries, err := h.analysisService.ListHistory(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	history := make([]historyEntryResponse, 0, len(entries))
	for _, entry := range entries {
		history = append(history, historyEntryResponse{
			ID:        entry.ID.String(),
			Text:      entry.QueryText,
			Analysis:  entry.Analysis,
			CreatedAt: entry.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"history": history,
	})
}

// Clear deletes all entries for the authenticated user.
func (h *History) Clear(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "authorization token required")
		return
	}

	deleted, err := h.analysisService.ClearHistory(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("deleted %d entries", deleted),
	})
}
