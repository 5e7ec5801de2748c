package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"payvlo/internal/port"
)

type hsnRepo struct {
	db *sqlx.DB
}

// NewHSNRepo creates a new PostgreSQL-backed HSNRepository.
func NewHSNRepo(db *sqlx.DB) port.HSNRepository {
	return &hsnRepo{db: db}
}

// A rate notified later supersedes an earlier one for the same code and
// condition, so only the newest row in force is kept.
const effectiveHSNQuery = `
	SELECT DISTINCT ON (code, condition_desc)
		code, description, gst_rate, condition_desc
	FROM hsn_codes
	WHERE effective_from <= $1
	  AND (effective_to IS NULL OR effective_to >= $1)
	ORDER BY code, condition_desc, effective_from DESC`

func (r *hsnRepo) LoadEffective(ctx context.Context, on time.Time) ([]port.HSNEntry, error) {
	var entries []port.HSNEntry
	if err := r.db.SelectContext(ctx, &entries, effectiveHSNQuery, on.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("hsnRepo.LoadEffective: %w", err)
	}
	return entries, nil
}
