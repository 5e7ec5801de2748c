package gst

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultInvoiceNumberFormat yields numbers like INV-2024-02-0006.
const DefaultInvoiceNumberFormat = "INV-{YYYY}-{MM}-{####}"

var (
	counterPlaceholder = regexp.MustCompile(`\{(#+)\}`)
	trailingDigits     = regexp.MustCompile(`(\d+)$`)
)

// GenerateInvoiceNumber expands format for date with the counter following
// lastNumber. The counter is the trailing run of digits in lastNumber plus
// one, or 1 when lastNumber has none. It is zero padded to the number of #
// in its placeholder and never truncated.
//
// Supported placeholders: {YYYY} {YY} {MM} {DD} and {#...}.
func GenerateInvoiceNumber(format, lastNumber string, date time.Time) string {
	counter := nextCounter(lastNumber)

	out := strings.NewReplacer(
		"{YYYY}", fmt.Sprintf("%04d", date.Year()),
		"{YY}", fmt.Sprintf("%02d", date.Year()%100),
		"{MM}", fmt.Sprintf("%02d", int(date.Month())),
		"{DD}", fmt.Sprintf("%02d", date.Day()),
	).Replace(format)

	return counterPlaceholder.ReplaceAllStringFunc(out, func(ph string) string {
		width := len(ph) - 2
		if len(counter) >= width {
			return counter
		}
		return strings.Repeat("0", width-len(counter)) + counter
	})
}

// nextCounter returns the decimal string of the trailing number plus one.
func nextCounter(lastNumber string) string {
	m := trailingDigits.FindString(strings.TrimSpace(lastNumber))
	if m == "" {
		return "1"
	}
	n, err := decimal.NewFromString(m)
	if err != nil {
		return "1"
	}
	return n.Add(decimal.NewFromInt(1)).String()
}
