package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payvlo/internal/domain"
)

// MockStateRepo is a mock implementation of port.StateRepository.
type MockStateRepo struct {
	mock.Mock
}

func (m *MockStateRepo) ListActive(ctx context.Context) ([]domain.IndianState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IndianState), args.Error(1)
}

func (m *MockStateRepo) GetByCode(ctx context.Context, code string) (*domain.IndianState, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IndianState), args.Error(1)
}
