package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/model"
)

// Analysis runs claims through the provider and manages the per-user
// search history.
type Analysis struct {
	analyzer model.Analyzer
	history  model.HistoryStore
	logger   *logger.Logger
}

func NewAnalysis(
	analyzer model.Analyzer,
	history model.HistoryStore,
	logger *logger.Logger,
) *Analysis {
	return &Analysis{
		analyzer: analyzer,
		history:  history,
		logger:   logger,
	}
}

// Analyze sends the claim to the provider and, when the request carries an
// authenticated user, persists a history entry with the claim truncated to
// the stored limit. An anonymous call (userID == uuid.Nil) leaves no trace.
func (s *Analysis) Analyze(ctx context.Context, userID uuid.UUID, text string) (string, error) {
	s.logger.Debug("Analysis service: analyzing claim", "user_id", userID)

	result, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		s.logger.Error("Analysis service: provider call failed",
			"user_id", userID,
			"error", err.Error())
		return "", fmt.Errorf("failed to analyze claim: %w", err)
	}

	if userID != uuid.Nil {
		entry := model.SearchEntry{
			ID:        uuid.New(),
			UserID:    userID,
			QueryText: truncate(text, model.QueryTextLimit),
			Analysis:  result,
			CreatedAt: time.Now(),
		}

		if _, err := s.history.Create(ctx, entry); err != nil {
			s.logger.Error("Analysis service: failed to persist history entry",
				"user_id", userID,
				"error", err.Error())
			return "", fmt.Errorf("failed to persist history entry: %w", err)
		}
	}

	s.logger.Info("Analysis service: claim analyzed", "user_id", userID)

	return result, nil
}

// ListHistory returns up to HistoryPageSize newest entries for the user.
func (s *Analysis) ListHistory(ctx context.Context, userID uuid.UUID) ([]model.SearchEntry, error) {
	entries, err := s.history.ListRecent(ctx, userID, model.HistoryPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return entries, nil
}

// ClearHistory deletes all entries for the user and returns the count.
func (s *Analysis) ClearHistory(ctx context.Context, userID uuid.UUID) (int64, error) {
	deleted, err := s.history.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	s.logger.Info("Analysis service: history cleared",
		"user_id", userID,
		"deleted", deleted)

	return deleted, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
