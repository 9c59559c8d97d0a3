package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Analyzer is a testify mock of model.Analyzer.
type Analyzer struct {
	mock.Mock
}

func (m *Analyzer) Analyze(ctx context.Context, claim string) (string, error) {
	args := m.Called(ctx, claim)
	return args.String(0), args.Error(1)
}
