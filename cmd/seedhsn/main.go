// Command seedhsn converts the GST HSN/SAC rate workbook into a SQL seed
// file for the hsn_codes table. Goods come from the first sheet and
// services from SAC_Master.
//
// Usage: go run ./cmd/seedhsn --in rates.xlsx --out db/seeds/hsn_codes.sql
package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/xuri/excelize/v2"

	"payvlo/internal/gst"
	"payvlo/internal/logger"
)

const batchSize = 500

type seedEntry struct {
	code          string
	description   string
	gstRate       float64
	conditionDesc string
	parentCode    string // empty = NULL
}

type seedSet struct {
	seen    map[string]bool
	entries []seedEntry
	skipped int
}

func newSeedSet() *seedSet {
	return &seedSet{seen: make(map[string]bool)}
}

// add keeps one row per (code, rate, condition); codes that fail HSN/SAC
// validation are counted and dropped.
func (s *seedSet) add(code, description string, rate float64, condition string) {
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}
	if res := gst.ValidateHSNSAC(code); !res.IsValid {
		s.skipped++
		return
	}
	if rate < 0 || rate > 100 {
		s.skipped++
		return
	}

	key := fmt.Sprintf("%s|%.2f|%s", code, rate, condition)
	if s.seen[key] {
		return
	}
	s.seen[key] = true

	parent := ""
	if len(code) > 4 {
		parent = code[:4]
	}
	s.entries = append(s.entries, seedEntry{
		code:          code,
		description:   strings.TrimSpace(description),
		gstRate:       rate,
		conditionDesc: condition,
		parentCode:    parent,
	})
}

func main() {
	logger.New(logger.Config{Level: "info", Format: "console"})
	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("seedhsn failed")
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("seedhsn", pflag.ContinueOnError)
	in := fs.String("in", "hsn_sac_rates.xlsx", "path to the HSN/SAC rate workbook")
	out := fs.String("out", "db/seeds/hsn_codes.sql", "path of the generated SQL file")
	sacSheet := fs.String("sac-sheet", "SAC_Master", "name of the services sheet")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := excelize.OpenFile(*in)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	set := newSeedSet()

	goods, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("read goods sheet: %w", err)
	}
	n := len(set.entries)
	parseGoods(goods, set)
	log.Info().Int("entries", len(set.entries)-n).Msg("goods sheet parsed")

	services, err := f.GetRows(*sacSheet)
	if err != nil {
		return fmt.Errorf("read services sheet: %w", err)
	}
	n = len(set.entries)
	parseServices(services, set)
	log.Info().Int("entries", len(set.entries)-n).Msg("services sheet parsed")

	w, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := writeSQL(w, set.entries); err != nil {
		return err
	}

	log.Info().
		Int("entries", len(set.entries)).
		Int("skipped", set.skipped).
		Str("out", *out).
		Msg("seed file written")
	return nil
}

// parseGoods reads the goods sheet. Columns: F=4-digit code, H=its
// description, I=6-digit, J=description, K=8-digit, M=description,
// N=rate as a percentage. Data starts at row 6.
func parseGoods(rows [][]string, set *seedSet) {
	for i := 5; i < len(rows); i++ {
		row := rows[i]
		rate, ok := parsePercent(cellVal(row, 13))
		if !ok {
			continue
		}
		set.add(cellVal(row, 10), cellVal(row, 12), rate, "")
		set.add(cellVal(row, 8), cellVal(row, 9), rate, "")
		set.add(cellVal(row, 5), cellVal(row, 7), rate, "")
	}
}

// parseServices reads SAC_Master. Columns: A=4-digit code, B=description,
// C=6-digit code, D=description, E=free-text rate. Data starts at row 4.
func parseServices(rows [][]string, set *seedSet) {
	for i := 3; i < len(rows); i++ {
		row := rows[i]
		for _, r := range parseSACRate(cellVal(row, 4)) {
			set.add(cellVal(row, 2), cellVal(row, 3), r.rate, r.condition)
			set.add(cellVal(row, 0), cellVal(row, 1), r.rate, r.condition)
		}
	}
}

func parsePercent(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	// Excel percentage cells sometimes come back as fractions.
	if v > 0 && v < 1 {
		v *= 100
	}
	return v, true
}

type sacRate struct {
	rate      float64
	condition string
}

// rateClause matches "18%" optionally followed by a parenthesised
// condition such as "(without ITC)".
var rateClause = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%\s*(?:\(([^)]*)\))?`)

// parseSACRate extracts rates from the free-text column:
//
//	"18%"                                   -> 18
//	"Exempt"                                -> 0
//	"12%-18%"                               -> 12, 18
//	"1% (without ITC) or 5% (without ITC)"  -> 1 "without ITC", 5 "without ITC"
func parseSACRate(s string) []sacRate {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return nil
	case "exempt", "nil":
		return []sacRate{{rate: 0, condition: "exempt"}}
	}

	var out []sacRate
	seen := make(map[string]bool)
	for _, m := range rateClause.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		cond := strings.TrimSpace(m[2])
		key := m[1] + "|" + cond
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, sacRate{rate: v, condition: cond})
	}
	return out
}

func writeSQL(w io.Writer, entries []seedEntry) error {
	if _, err := fmt.Fprintf(w,
		"-- HSN/SAC master generated by cmd/seedhsn.\n-- %d entries in batches of %d.\nBEGIN;\n\n",
		len(entries), batchSize); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < len(entries); i += batchSize {
		end := min(i+batchSize, len(entries))
		if err := writeBatch(w, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	if _, err := fmt.Fprintln(w, "COMMIT;"); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	return nil
}

func writeBatch(w io.Writer, batch []seedEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO hsn_codes (code, description, gst_rate, condition_desc, parent_code) VALUES\n")
	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		parent := "NULL"
		if e.parentCode != "" {
			parent = quote(e.parentCode)
		}
		fmt.Fprintf(&b, "  (%s, %s, %.2f, %s, %s)",
			quote(e.code), quote(e.description), e.gstRate, quote(e.conditionDesc), parent)
	}
	b.WriteString("\nON CONFLICT (code, gst_rate, condition_desc, effective_from) DO NOTHING;\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
