package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payvlo/internal/domain"
)

// MockStateService is a mock implementation of service.StateService.
type MockStateService struct {
	mock.Mock
}

func (m *MockStateService) List(ctx context.Context) ([]domain.IndianState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IndianState), args.Error(1)
}

func (m *MockStateService) GetByCode(ctx context.Context, code string) (*domain.IndianState, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IndianState), args.Error(1)
}
