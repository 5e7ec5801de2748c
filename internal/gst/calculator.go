package gst

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	hundred    = decimal.NewFromInt(100)
	two        = decimal.NewFromInt(2)
	moneyPlace = int32(2)
	qtyPlace   = int32(3)
)

// GSTCalculation is the tax breakdown for a single taxable amount.
type GSTCalculation struct {
	TaxableAmount float64 `json:"taxable_amount"`
	GSTRate       float64 `json:"gst_rate"`
	CGSTRate      float64 `json:"cgst_rate"`
	SGSTRate      float64 `json:"sgst_rate"`
	IGSTRate      float64 `json:"igst_rate"`
	CessRate      float64 `json:"cess_rate"`
	CGSTAmount    float64 `json:"cgst_amount"`
	SGSTAmount    float64 `json:"sgst_amount"`
	IGSTAmount    float64 `json:"igst_amount"`
	CessAmount    float64 `json:"cess_amount"`
	TotalTax      float64 `json:"total_tax"`
	TotalAmount   float64 `json:"total_amount"`
}

// LineItemInput carries the arguments of CalculateLineItem. Zero values
// mean no discount, no cess and an intra-state supply.
type LineItemInput struct {
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	GSTRate         float64 `json:"gst_rate"`
	CessRate        float64 `json:"cess_rate"`
	InterState      bool    `json:"is_inter_state"`
}

// LineItemCalculation is a priced and taxed invoice line.
type LineItemCalculation struct {
	Quantity        float64        `json:"quantity"`
	UnitPrice       float64        `json:"unit_price"`
	DiscountPercent float64        `json:"discount_percent"`
	DiscountAmount  float64        `json:"discount_amount"`
	TaxableAmount   float64        `json:"taxable_amount"`
	GST             GSTCalculation `json:"gst_calculation"`
	LineTotal       float64        `json:"line_total"`

	// exact keeps the unrounded components so that invoice totals are
	// rounded once. It is unset for lines built outside CalculateLineItem.
	exact *lineAmounts
}

// lineAmounts are unrounded line components.
type lineAmounts struct {
	gross    decimal.Decimal
	discount decimal.Decimal
	taxable  decimal.Decimal
	tax      taxAmounts
}

type taxAmounts struct {
	cgst decimal.Decimal
	sgst decimal.Decimal
	igst decimal.Decimal
	cess decimal.Decimal
}

func (t taxAmounts) total() decimal.Decimal {
	return t.cgst.Add(t.sgst).Add(t.igst).Add(t.cess)
}

// CalculateGST splits the tax on taxableAmount. Intra-state supplies divide
// the GST equally between CGST and SGST; inter-state supplies carry it all
// as IGST. Cess is charged on the taxable amount in both cases.
func CalculateGST(taxableAmount, gstRate, cessRate float64, interState bool) (GSTCalculation, error) {
	if !isFinite(taxableAmount) || !isFinite(cessRate) {
		return GSTCalculation{}, ErrInvalidAmount
	}
	if !IsValidRate(gstRate) {
		return GSTCalculation{}, fmt.Errorf("%w: got %v", ErrInvalidGSTRate, gstRate)
	}
	taxable := decimal.NewFromFloat(taxableAmount)
	calc, _ := splitTax(taxable, gstRate, cessRate, interState)
	return calc, nil
}

// splitTax assumes gstRate has been validated.
func splitTax(taxable decimal.Decimal, gstRate, cessRate float64, interState bool) (GSTCalculation, taxAmounts) {
	rate := decimal.NewFromFloat(gstRate)
	totalGST := taxable.Mul(rate).Div(hundred)

	var amt taxAmounts
	amt.cess = taxable.Mul(decimal.NewFromFloat(cessRate)).Div(hundred)

	calc := GSTCalculation{
		GSTRate:  gstRate,
		CessRate: cessRate,
	}
	if interState {
		amt.igst = totalGST
		calc.IGSTRate = gstRate
	} else {
		half := totalGST.Div(two)
		amt.cgst = half
		amt.sgst = half
		halfRate, _ := rate.Div(two).Float64()
		calc.CGSTRate = halfRate
		calc.SGSTRate = halfRate
	}

	tax := amt.total()
	calc.TaxableAmount = round2(taxable)
	calc.CGSTAmount = round2(amt.cgst)
	calc.SGSTAmount = round2(amt.sgst)
	calc.IGSTAmount = round2(amt.igst)
	calc.CessAmount = round2(amt.cess)
	calc.TotalTax = round2(tax)
	calc.TotalAmount = round2(taxable.Add(tax))
	return calc, amt
}

// CalculateLineItem prices one line: gross, discount, taxable value and tax.
func CalculateLineItem(in LineItemInput) (LineItemCalculation, error) {
	for _, f := range []float64{in.Quantity, in.UnitPrice, in.DiscountPercent, in.CessRate} {
		if !isFinite(f) {
			return LineItemCalculation{}, ErrInvalidAmount
		}
	}
	if in.Quantity <= 0 {
		return LineItemCalculation{}, fmt.Errorf("%w: got %v", ErrInvalidQuantity, in.Quantity)
	}
	if in.UnitPrice < 0 {
		return LineItemCalculation{}, fmt.Errorf("%w: got %v", ErrInvalidUnitPrice, in.UnitPrice)
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return LineItemCalculation{}, fmt.Errorf("%w: got %v", ErrInvalidDiscount, in.DiscountPercent)
	}
	if !IsValidRate(in.GSTRate) {
		return LineItemCalculation{}, fmt.Errorf("%w: got %v", ErrInvalidGSTRate, in.GSTRate)
	}

	gross := decimal.NewFromFloat(in.Quantity).Mul(decimal.NewFromFloat(in.UnitPrice))
	discount := gross.Mul(decimal.NewFromFloat(in.DiscountPercent)).Div(hundred)
	taxable := gross.Sub(discount)

	calc, amt := splitTax(taxable, in.GSTRate, in.CessRate, in.InterState)

	qty, _ := decimal.NewFromFloat(in.Quantity).Round(qtyPlace).Float64()
	return LineItemCalculation{
		Quantity:        qty,
		UnitPrice:       round2(decimal.NewFromFloat(in.UnitPrice)),
		DiscountPercent: in.DiscountPercent,
		DiscountAmount:  round2(discount),
		TaxableAmount:   calc.TaxableAmount,
		GST:             calc,
		LineTotal:       calc.TotalAmount,
		exact: &lineAmounts{
			gross:    gross,
			discount: discount,
			taxable:  taxable,
			tax:      amt,
		},
	}, nil
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(moneyPlace).Float64()
	return f
}
