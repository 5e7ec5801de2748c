package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"payvlo/internal/port"
)

// MockHSNRepository is a mock implementation of port.HSNRepository.
type MockHSNRepository struct {
	mock.Mock
}

func (m *MockHSNRepository) LoadEffective(ctx context.Context, on time.Time) ([]port.HSNEntry, error) {
	args := m.Called(ctx, on)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.HSNEntry), args.Error(1)
}
