package gst_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payvlo/internal/gst"
)

// rounding tolerance of one paisa, with room for float representation error
const paisa = 0.01 + 1e-9

func TestCalculateGST_IntraState(t *testing.T) {
	calc, err := gst.CalculateGST(1000, 18, 0, false)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, calc.TaxableAmount)
	assert.Equal(t, 18.0, calc.GSTRate)
	assert.Equal(t, 9.0, calc.CGSTRate)
	assert.Equal(t, 9.0, calc.SGSTRate)
	assert.Equal(t, 0.0, calc.IGSTRate)
	assert.Equal(t, 90.0, calc.CGSTAmount)
	assert.Equal(t, 90.0, calc.SGSTAmount)
	assert.Equal(t, 0.0, calc.IGSTAmount)
	assert.Equal(t, 180.0, calc.TotalTax)
	assert.Equal(t, 1180.0, calc.TotalAmount)
}

func TestCalculateGST_InterState(t *testing.T) {
	calc, err := gst.CalculateGST(1000, 18, 0, true)
	require.NoError(t, err)

	assert.Equal(t, 0.0, calc.CGSTAmount)
	assert.Equal(t, 0.0, calc.SGSTAmount)
	assert.Equal(t, 180.0, calc.IGSTAmount)
	assert.Equal(t, 18.0, calc.IGSTRate)
	assert.Equal(t, 0.0, calc.CGSTRate)
	assert.Equal(t, 180.0, calc.TotalTax)
	assert.Equal(t, 1180.0, calc.TotalAmount)
}

func TestCalculateGST_WithCess(t *testing.T) {
	calc, err := gst.CalculateGST(1000, 28, 12, true)
	require.NoError(t, err)

	assert.Equal(t, 280.0, calc.IGSTAmount)
	assert.Equal(t, 120.0, calc.CessAmount)
	assert.Equal(t, 12.0, calc.CessRate)
	assert.Equal(t, 400.0, calc.TotalTax)
	assert.Equal(t, 1400.0, calc.TotalAmount)
}

func TestCalculateGST_InvalidRate(t *testing.T) {
	for _, rate := range []float64{-5, 3, 15, 18.5, 30, 100} {
		_, err := gst.CalculateGST(1000, rate, 0, false)
		assert.ErrorIs(t, err, gst.ErrInvalidGSTRate, "rate %v", rate)
	}
}

func TestCalculateGST_RoundsHalfAwayFromZero(t *testing.T) {
	calc, err := gst.CalculateGST(0.1, 5, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 0.01, calc.IGSTAmount)

	calc, err = gst.CalculateGST(-0.1, 5, 0, true)
	require.NoError(t, err)
	assert.Equal(t, -0.01, calc.IGSTAmount)
}

func TestCalculateGST_SplitExactness(t *testing.T) {
	amounts := []float64{0.01, 1, 9.99, 99.99, 1234.56, 99999.99, 1000000}
	for _, amount := range amounts {
		for _, rate := range gst.Rates() {
			intra, err := gst.CalculateGST(amount, rate, 0, false)
			require.NoError(t, err)
			assert.Equal(t, intra.CGSTAmount, intra.SGSTAmount)
			assert.InDelta(t, amount*rate/200, intra.CGSTAmount, 0.0051)
			assert.Equal(t, 0.0, intra.IGSTAmount)

			inter, err := gst.CalculateGST(amount, rate, 0, true)
			require.NoError(t, err)
			assert.InDelta(t, amount*rate/100, inter.IGSTAmount, 0.0051)
			assert.Equal(t, 0.0, inter.CGSTAmount)
			assert.Equal(t, 0.0, inter.SGSTAmount)
		}
	}
}

func TestCalculateGST_ComponentSumInvariant(t *testing.T) {
	amounts := []float64{0.07, 3.33, 17.65, 250.5, 7777.77, 123456.78}
	cessRates := []float64{0, 1, 12, 15.5}
	for _, amount := range amounts {
		for _, rate := range gst.Rates() {
			for _, cess := range cessRates {
				for _, inter := range []bool{false, true} {
					c, err := gst.CalculateGST(amount, rate, cess, inter)
					require.NoError(t, err)
					assert.InDelta(t, c.TotalTax, c.CGSTAmount+c.SGSTAmount+c.IGSTAmount+c.CessAmount, paisa)
					assert.InDelta(t, c.TotalAmount, c.TaxableAmount+c.TotalTax, paisa)
				}
			}
		}
	}
}

func TestCalculateLineItem_WithDiscount(t *testing.T) {
	line, err := gst.CalculateLineItem(gst.LineItemInput{
		Quantity:        2,
		UnitPrice:       500,
		DiscountPercent: 10,
		GSTRate:         18,
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, line.Quantity)
	assert.Equal(t, 500.0, line.UnitPrice)
	assert.Equal(t, 100.0, line.DiscountAmount)
	assert.Equal(t, 900.0, line.TaxableAmount)
	assert.Equal(t, 81.0, line.GST.CGSTAmount)
	assert.Equal(t, 81.0, line.GST.SGSTAmount)
	assert.Equal(t, 162.0, line.GST.TotalTax)
	assert.Equal(t, 1062.0, line.LineTotal)
	assert.Equal(t, line.GST.TotalAmount, line.LineTotal)
}

func TestCalculateLineItem_RoundsQuantityAndMoney(t *testing.T) {
	line, err := gst.CalculateLineItem(gst.LineItemInput{
		Quantity:  1.23456,
		UnitPrice: 10,
		GSTRate:   0,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.235, line.Quantity)
	assert.Equal(t, 12.35, line.TaxableAmount)
	assert.Equal(t, 12.35, line.LineTotal)
}

func TestCalculateLineItem_TaxableInvariant(t *testing.T) {
	inputs := []gst.LineItemInput{
		{Quantity: 3, UnitPrice: 33.33, DiscountPercent: 7.5, GSTRate: 12},
		{Quantity: 0.75, UnitPrice: 1999, DiscountPercent: 0, GSTRate: 28, CessRate: 12, InterState: true},
		{Quantity: 12, UnitPrice: 0, GSTRate: 5},
		{Quantity: 1, UnitPrice: 500, DiscountPercent: 100, GSTRate: 18},
	}
	for _, in := range inputs {
		line, err := gst.CalculateLineItem(in)
		require.NoError(t, err)
		assert.InDelta(t, line.Quantity*line.UnitPrice-line.DiscountAmount, line.TaxableAmount, paisa)
		assert.Equal(t, line.GST.TotalAmount, line.LineTotal)
	}
}

func TestCalculateLineItem_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   gst.LineItemInput
		want error
	}{
		{"zero quantity", gst.LineItemInput{Quantity: 0, UnitPrice: 10, GSTRate: 18}, gst.ErrInvalidQuantity},
		{"negative quantity", gst.LineItemInput{Quantity: -1, UnitPrice: 10, GSTRate: 18}, gst.ErrInvalidQuantity},
		{"negative price", gst.LineItemInput{Quantity: 1, UnitPrice: -0.01, GSTRate: 18}, gst.ErrInvalidUnitPrice},
		{"discount above 100", gst.LineItemInput{Quantity: 1, UnitPrice: 10, DiscountPercent: 100.5, GSTRate: 18}, gst.ErrInvalidDiscount},
		{"negative discount", gst.LineItemInput{Quantity: 1, UnitPrice: 10, DiscountPercent: -1, GSTRate: 18}, gst.ErrInvalidDiscount},
		{"rate outside slabs", gst.LineItemInput{Quantity: 1, UnitPrice: 10, GSTRate: 7}, gst.ErrInvalidGSTRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gst.CalculateLineItem(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCalculations_AreIdempotent(t *testing.T) {
	in := gst.LineItemInput{Quantity: 7, UnitPrice: 142.857, DiscountPercent: 3.3, GSTRate: 12, CessRate: 1}

	first, err := gst.CalculateLineItem(in)
	require.NoError(t, err)
	second, err := gst.CalculateLineItem(in)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	t1, err := gst.CalculateInvoiceTotals([]gst.LineItemCalculation{first, second}, true)
	require.NoError(t, err)
	t2, err := gst.CalculateInvoiceTotals([]gst.LineItemCalculation{first, second}, true)
	require.NoError(t, err)
	assert.Equal(t, t1, t2)
}
