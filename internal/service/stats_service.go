package service

import (
	"context"

	"payvlo/internal/domain"
	"payvlo/internal/port"
)

// StatsService reports record counts for the dashboard.
type StatsService interface {
	Counts(ctx context.Context) (*domain.RecordCounts, error)
}

type statsService struct {
	repo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(repo port.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) Counts(ctx context.Context) (*domain.RecordCounts, error) {
	return s.repo.Counts(ctx)
}
