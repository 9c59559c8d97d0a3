package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/piyussh25/misinformation-checker/internal/model"
)

var _ model.HistoryStore = (*HistoryRepository)(nil)

type HistoryRepository struct {
	db *Connection
}

func NewHistoryRepository(db *Connection) *HistoryRepository {
	return &HistoryRepository{
		db: db,
	}
}

func (r *HistoryRepository) Create(ctx context.Context, entry model.SearchEntry) (model.SearchEntry, error) {
	query := `INSERT INTO search_history (id, user_id, query_text, analysis, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, user_id, query_text, analysis, created_at`

	var savedEntry model.SearchEntry
	err := r.db.QueryRow(ctx, query,
		entry.ID, entry.UserID, entry.QueryText, entry.Analysis, entry.CreatedAt,
	).Scan(
		&savedEntry.ID, &savedEntry.UserID, &savedEntry.QueryText,
		&savedEntry.Analysis, &savedEntry.CreatedAt,
	)
	if err != nil {
		return model.SearchEntry{}, fmt.Errorf("failed to create history entry: %w", err)
	}

	return savedEntry, nil
}

func (r *HistoryRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.SearchEntry, error) {
	query := `SELECT id, user_id, query_text, analysis, created_at
			  FROM search_history
			  WHERE user_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []model.SearchEntry
	for rows.Next() {
		var entry model.SearchEntry
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.QueryText, &entry.Analysis, &entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *HistoryRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM search_history WHERE user_id = $1`

	cmd, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	return cmd.RowsAffected(), nil
}
