package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payvlo/internal/domain"
)

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) Counts(ctx context.Context) (*domain.RecordCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordCounts), args.Error(1)
}
