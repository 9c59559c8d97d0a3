package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// QueryTextLimit is the maximum number of characters of claim text
	// stored with a history entry.
	QueryTextLimit = 500
	// HistoryPageSize is the maximum number of entries returned by a
	// history listing.
	HistoryPageSize = 50
)

// HistoryStore defines persistence operations for search history entries.
type HistoryStore interface {
	Create(ctx context.Context, entry SearchEntry) (SearchEntry, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]SearchEntry, error)
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// SearchEntry represents one analyzed claim and its generated explanation,
// owned by a user.
type SearchEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	QueryText string
	Analysis  string
	CreatedAt time.Time
}
