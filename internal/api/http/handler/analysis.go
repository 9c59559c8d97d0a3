package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/model"
)

// AnalysisService defines claim analysis and history operations.
type AnalysisService interface {
	Analyze(ctx context.Context, userID uuid.UUID, text string) (string, error)
	ListHistory(ctx context.Context, userID uuid.UUID) ([]model.SearchEntry, error)
	ClearHistory(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Analysis handles the analyze endpoint.
type Analysis struct {
	analysisService AnalysisService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewAnalysis creates a new Analysis handler.
func NewAnalysis(analysisService AnalysisService, contextManager model.ContextManager, logger *logger.Logger) *Analysis {
	return &Analysis{
		analysisService: analysisService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

type analyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

type historyEntryResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Analysis  string    `json:"analysis"`
	CreatedAt time.Time `json:"createdAt"`
}

// Analyze runs the claim through the provider. When the request carries an
// authenticated user a history entry is persisted; anonymous calls are not
// recorded.
func (h *Analysis) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "text is required")
		return
	}

	// uuid.Nil when the route is public and no token was presented.
	userID, _ := h.contextManager.GetUserIDFromContext(c.Request.Context())

	result, err := h.analysisService.Analyze(c.Request.Context(), userID, req.Text)
	if err != nil {
		h.logger.Error("Analysis handler: analyze failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "analysis failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis": result,
	})
}
