// Package hsn holds the in-memory HSN/SAC master used to enrich code
// validation and to cross-check product GST rates.
package hsn

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"payvlo/internal/port"
)

// Rate is one applicable GST rate for a master code.
type Rate struct {
	Rate          float64
	ConditionDesc string
}

type entry struct {
	description string
	rates       []Rate
}

// Lookup is immutable after construction and safe for concurrent use.
type Lookup struct {
	byCode map[string]*entry
}

// NewLookup indexes master rows by code. Several rows for one code
// contribute several rates; the first non-empty description wins.
func NewLookup(entries []port.HSNEntry) *Lookup {
	m := make(map[string]*entry, len(entries))
	for idx := range entries {
		e := &entries[idx]
		code := strings.TrimSpace(e.Code)
		cur, ok := m[code]
		if !ok {
			cur = &entry{}
			m[code] = cur
		}
		if cur.description == "" {
			cur.description = e.Description
		}
		cur.rates = append(cur.rates, Rate{Rate: e.GSTRate, ConditionDesc: e.ConditionDesc})
	}
	return &Lookup{byCode: m}
}

// Load reads the rows in force on the given date and builds a Lookup.
func Load(ctx context.Context, repo port.HSNRepository, on time.Time) (*Lookup, error) {
	entries, err := repo.LoadEffective(ctx, on)
	if err != nil {
		return nil, fmt.Errorf("hsn.Load: %w", err)
	}
	return NewLookup(entries), nil
}

// Len reports the number of distinct codes.
func (l *Lookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.byCode)
}

// find does an exact match, then falls back to the 6 and 4 digit heading.
func (l *Lookup) find(code string) *entry {
	if l == nil || len(l.byCode) == 0 || code == "" {
		return nil
	}
	if e, ok := l.byCode[code]; ok {
		return e
	}
	for _, prefixLen := range []int{6, 4} {
		if len(code) > prefixLen {
			if e, ok := l.byCode[code[:prefixLen]]; ok {
				return e
			}
		}
	}
	return nil
}

// Exists reports whether code or one of its headings is in the master.
func (l *Lookup) Exists(code string) bool {
	return l.find(code) != nil
}

// Description returns the master description for code, if any.
func (l *Lookup) Description(code string) (string, bool) {
	e := l.find(code)
	if e == nil || e.description == "" {
		return "", false
	}
	return e.description, true
}

// Rates returns the applicable rates for code.
func (l *Lookup) Rates(code string) []Rate {
	e := l.find(code)
	if e == nil {
		return nil
	}
	out := make([]Rate, len(e.rates))
	copy(out, e.rates)
	return out
}

// SuggestedRate returns the first unconditional rate for code, or the
// first listed rate when every rate carries a condition.
func (l *Lookup) SuggestedRate(code string) (float64, bool) {
	rates := l.Rates(code)
	if len(rates) == 0 {
		return 0, false
	}
	for _, r := range rates {
		if r.ConditionDesc == "" {
			return r.Rate, true
		}
	}
	return rates[0].Rate, true
}

// RateMatches reports whether gstRate is one of the rates for code.
// Codes absent from the master never match.
func (l *Lookup) RateMatches(code string, gstRate float64) (matched bool, validRates []Rate) {
	validRates = l.Rates(code)
	for _, r := range validRates {
		if math.Abs(r.Rate-gstRate) < 0.01 {
			return true, validRates
		}
	}
	return false, validRates
}
