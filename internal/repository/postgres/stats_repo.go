package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"payvlo/internal/domain"
	"payvlo/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const recordCountsQuery = `SELECT
	(SELECT COUNT(*) FROM customers WHERE is_active) AS customers,
	(SELECT COUNT(*) FROM products WHERE is_active) AS products,
	(SELECT COUNT(*) FROM invoices) AS invoices`

func (r *statsRepo) Counts(ctx context.Context) (*domain.RecordCounts, error) {
	var counts domain.RecordCounts
	if err := r.db.GetContext(ctx, &counts, recordCountsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.Counts: %w", err)
	}
	return &counts, nil
}
