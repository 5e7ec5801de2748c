package gst

import "github.com/shopspring/decimal"

// InvoiceTotals is the invoice-level aggregate of its line items.
type InvoiceTotals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TaxableAmount float64 `json:"taxable_amount"`
	CGSTTotal     float64 `json:"cgst_total"`
	SGSTTotal     float64 `json:"sgst_total"`
	IGSTTotal     float64 `json:"igst_total"`
	CessTotal     float64 `json:"cess_total"`
	TotalTax      float64 `json:"total_tax"`
	TotalAmount   float64 `json:"total_amount"`
	RoundOff      float64 `json:"round_off"`
	FinalAmount   float64 `json:"final_amount"`
}

// CalculateInvoiceTotals sums every component across items and rounds once.
// Lines produced by CalculateLineItem contribute their unrounded values;
// lines built elsewhere contribute their fields as given.
//
// With roundOff the payable amount is the nearest whole rupee and RoundOff
// holds the adjustment, so FinalAmount == TotalAmount + RoundOff.
func CalculateInvoiceTotals(items []LineItemCalculation, roundOff bool) (InvoiceTotals, error) {
	if len(items) == 0 {
		return InvoiceTotals{}, ErrNoLineItems
	}

	var gross, discount, taxable decimal.Decimal
	var tax taxAmounts
	for i := range items {
		l, ok := lineComponents(&items[i])
		if !ok {
			return InvoiceTotals{}, ErrInvalidAmount
		}
		gross = gross.Add(l.gross)
		discount = discount.Add(l.discount)
		taxable = taxable.Add(l.taxable)
		tax.cgst = tax.cgst.Add(l.tax.cgst)
		tax.sgst = tax.sgst.Add(l.tax.sgst)
		tax.igst = tax.igst.Add(l.tax.igst)
		tax.cess = tax.cess.Add(l.tax.cess)
	}

	totalTax := tax.total()
	total := taxable.Add(totalTax)

	out := InvoiceTotals{
		Subtotal:      round2(gross),
		TotalDiscount: round2(discount),
		TaxableAmount: round2(taxable),
		CGSTTotal:     round2(tax.cgst),
		SGSTTotal:     round2(tax.sgst),
		IGSTTotal:     round2(tax.igst),
		CessTotal:     round2(tax.cess),
		TotalTax:      round2(totalTax),
		TotalAmount:   round2(total),
	}
	if !roundOff {
		out.FinalAmount = out.TotalAmount
		return out, nil
	}

	final := total.Round(0)
	out.FinalAmount = round2(final)
	out.RoundOff = round2(final.Sub(total.Round(moneyPlace)))
	return out, nil
}

func lineComponents(item *LineItemCalculation) (lineAmounts, bool) {
	if item.exact != nil {
		return *item.exact, true
	}
	for _, f := range []float64{
		item.Quantity, item.UnitPrice, item.DiscountAmount, item.TaxableAmount,
		item.GST.CGSTAmount, item.GST.SGSTAmount, item.GST.IGSTAmount, item.GST.CessAmount,
	} {
		if !isFinite(f) {
			return lineAmounts{}, false
		}
	}
	return lineAmounts{
		gross:    decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.UnitPrice)),
		discount: decimal.NewFromFloat(item.DiscountAmount),
		taxable:  decimal.NewFromFloat(item.TaxableAmount),
		tax: taxAmounts{
			cgst: decimal.NewFromFloat(item.GST.CGSTAmount),
			sgst: decimal.NewFromFloat(item.GST.SGSTAmount),
			igst: decimal.NewFromFloat(item.GST.IGSTAmount),
			cess: decimal.NewFromFloat(item.GST.CessAmount),
		},
	}, true
}
