package service

import (
	"context"
	"errors"
	"fmt"

	"payvlo/internal/domain"
	"payvlo/internal/gst"
	"payvlo/internal/port"
)

// StateService serves the state master.
type StateService interface {
	List(ctx context.Context) ([]domain.IndianState, error)
	GetByCode(ctx context.Context, code string) (*domain.IndianState, error)
}

type stateService struct {
	repo port.StateRepository
}

// NewStateService creates a new StateService implementation.
func NewStateService(repo port.StateRepository) StateService {
	return &stateService{repo: repo}
}

func (s *stateService) List(ctx context.Context) ([]domain.IndianState, error) {
	return s.repo.ListActive(ctx)
}

// GetByCode reads the table row, falling back to the built-in GST state
// list when the table has not been seeded with that code.
func (s *stateService) GetByCode(ctx context.Context, code string) (*domain.IndianState, error) {
	state, err := s.repo.GetByCode(ctx, code)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	builtin, ok := gst.LookupState(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, code)
	}
	return &domain.IndianState{
		StateCode:        builtin.Code,
		StateName:        builtin.Name,
		IsUnionTerritory: builtin.IsUnionTerritory,
		IsActive:         true,
	}, nil
}
