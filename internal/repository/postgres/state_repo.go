package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"payvlo/internal/domain"
	"payvlo/internal/port"
)

type stateRepo struct {
	db *sqlx.DB
}

// NewStateRepo creates a new PostgreSQL-backed StateRepository.
func NewStateRepo(db *sqlx.DB) port.StateRepository {
	return &stateRepo{db: db}
}

func (r *stateRepo) ListActive(ctx context.Context) ([]domain.IndianState, error) {
	var states []domain.IndianState
	err := r.db.SelectContext(ctx, &states,
		"SELECT * FROM indian_states WHERE is_active ORDER BY state_code")
	if err != nil {
		return nil, fmt.Errorf("stateRepo.ListActive: %w", err)
	}
	return states, nil
}

func (r *stateRepo) GetByCode(ctx context.Context, code string) (*domain.IndianState, error) {
	var s domain.IndianState
	err := r.db.GetContext(ctx, &s, "SELECT * FROM indian_states WHERE state_code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("stateRepo.GetByCode: %w", err)
	}
	return &s, nil
}
