package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payvlo/internal/domain"
)

// MockCompanyRepo is a mock implementation of port.CompanyRepository.
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Get(ctx context.Context) (*domain.CompanySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySettings), args.Error(1)
}

func (m *MockCompanyRepo) Save(ctx context.Context, company *domain.CompanySettings) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}
