package port

import (
	"context"
	"time"
)

// HSNEntry is one rate row of the HSN/SAC master. A code can carry several
// rows when its rate depends on a condition.
type HSNEntry struct {
	Code          string  `db:"code"`
	Description   string  `db:"description"`
	GSTRate       float64 `db:"gst_rate"`
	ConditionDesc string  `db:"condition_desc"`
}

// HSNRepository reads the HSN/SAC master.
type HSNRepository interface {
	// LoadEffective returns the rows in force on the given date.
	LoadEffective(ctx context.Context, on time.Time) ([]HSNEntry, error)
}
