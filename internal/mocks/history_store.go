package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/piyussh25/misinformation-checker/internal/model"
)

// HistoryStore is a testify mock of model.HistoryStore.
type HistoryStore struct {
	mock.Mock
}

func (m *HistoryStore) Create(ctx context.Context, entry model.SearchEntry) (model.SearchEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(model.SearchEntry), args.Error(1)
}

func (m *HistoryStore) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.SearchEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchEntry), args.Error(1)
}

func (m *HistoryStore) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
