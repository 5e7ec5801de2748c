package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

const rupeeSymbol = "₹"

// FormatIndianCurrency renders amount with two decimals and Indian digit
// grouping (12,34,56,789.00). Negative amounts carry a leading minus before
// the symbol. Non-finite input is rendered as zero.
func FormatIndianCurrency(amount float64, includeCurrency bool) string {
	d := decimal.Zero
	if isFinite(amount) {
		d = decimal.NewFromFloat(amount).Round(moneyPlace)
	}

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	if includeCurrency {
		b.WriteString(rupeeSymbol)
	}

	fixed := d.Abs().StringFixed(moneyPlace)
	whole, frac, _ := strings.Cut(fixed, ".")
	b.WriteString(groupIndian(whole))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// groupIndian inserts separators after the last three digits and then after
// every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

var (
	ones = []string{
		"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tens = []string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
)

var crore = decimal.NewFromInt(10_000_000)

// AmountToWords spells amount in the Indian numbering scale, for example
// "one lakh twenty thousand rupees and fifty paise only". Paise are the
// amount rounded to two places.
func AmountToWords(amount float64) string {
	if !isFinite(amount) {
		return "zero rupees only"
	}
	d := decimal.NewFromFloat(amount).Round(moneyPlace)
	negative := d.IsNegative()
	d = d.Abs()

	rupees := d.Truncate(0)
	paise := d.Sub(rupees).Mul(hundred).IntPart()

	if rupees.IsZero() && paise == 0 {
		return "zero rupees only"
	}

	var parts []string
	if !rupees.IsZero() {
		unit := "rupees"
		if rupees.Equal(decimal.NewFromInt(1)) {
			unit = "rupee"
		}
		parts = append(parts, integerToWords(rupees)+" "+unit)
	}
	if paise > 0 {
		unit := "paise"
		if paise == 1 {
			unit = "paisa"
		}
		parts = append(parts, belowHundred(int(paise))+" "+unit)
	}

	out := strings.Join(parts, " and ") + " only"
	if negative {
		out = "minus " + out
	}
	return out
}

// integerToWords spells a non-negative whole number. The crore count may
// itself be large and is spelled recursively.
func integerToWords(n decimal.Decimal) string {
	if n.IsZero() {
		return "zero"
	}

	var words []string
	if n.GreaterThanOrEqual(crore) {
		words = append(words, integerToWords(n.Div(crore).Truncate(0))+" crore")
		n = n.Mod(crore)
	}

	rest := n.IntPart()
	if v := rest / 100_000; v > 0 {
		words = append(words, belowHundred(int(v))+" lakh")
	}
	rest %= 100_000
	if v := rest / 1_000; v > 0 {
		words = append(words, belowHundred(int(v))+" thousand")
	}
	rest %= 1_000
	if v := rest / 100; v > 0 {
		words = append(words, ones[v]+" hundred")
	}
	rest %= 100
	if rest > 0 {
		words = append(words, belowHundred(int(rest)))
	}
	return strings.Join(words, " ")
}

func belowHundred(n int) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}
