package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payvlo/internal/domain"
	"payvlo/internal/gst"
	"payvlo/internal/hsn"
	"payvlo/internal/metrics"
	"payvlo/internal/port"
	"payvlo/internal/service"
	"payvlo/mocks"
)

func TestGSTService_CalculateTotals(t *testing.T) {
	svc := service.NewGSTService(new(mocks.MockInvoiceRepo), nil, nil, "", true)

	pricing, err := svc.CalculateTotals(service.CalculateTotalsInput{
		Items: []gst.LineItemInput{
			{Quantity: 1, UnitPrice: 1000, GSTRate: 18},
			{Quantity: 2, UnitPrice: 50, GSTRate: 12},
		},
	})

	require.NoError(t, err)
	require.Len(t, pricing.Items, 2)
	assert.InDelta(t, 1100.0, pricing.Totals.TaxableAmount, 1e-9)
	assert.InDelta(t, 96.0, pricing.Totals.CGSTTotal, 1e-9)
	assert.InDelta(t, 96.0, pricing.Totals.SGSTTotal, 1e-9)
	assert.InDelta(t, 1292.0, pricing.Totals.FinalAmount, 1e-9)
	assert.Equal(t, "one thousand two hundred ninety two rupees only", pricing.AmountInWords)
}

func TestGSTService_CalculateTotals_RoundOffOverride(t *testing.T) {
	svc := service.NewGSTService(new(mocks.MockInvoiceRepo), nil, nil, "", true)
	off := false

	pricing, err := svc.CalculateTotals(service.CalculateTotalsInput{
		Items:    []gst.LineItemInput{{Quantity: 1, UnitPrice: 10.4, GSTRate: 0}},
		RoundOff: &off,
	})

	require.NoError(t, err)
	assert.InDelta(t, 10.4, pricing.Totals.FinalAmount, 1e-9)
	assert.Zero(t, pricing.Totals.RoundOff)
}

func TestGSTService_CalculateTotals_NamesBadLine(t *testing.T) {
	svc := service.NewGSTService(new(mocks.MockInvoiceRepo), nil, nil, "", true)

	_, err := svc.CalculateTotals(service.CalculateTotalsInput{
		Items: []gst.LineItemInput{
			{Quantity: 1, UnitPrice: 100, GSTRate: 18},
			{Quantity: 1, UnitPrice: 100, GSTRate: 15},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, gst.ErrInvalidGSTRate)
	assert.Contains(t, err.Error(), "line 2")
}

func TestGSTService_ValidateGSTIN_CountsOutcome(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	svc := service.NewGSTService(new(mocks.MockInvoiceRepo), nil, m, "", true)

	ok := svc.ValidateGSTIN("29ABCDE1234F1Z2")
	bad := svc.ValidateGSTIN("29ABCDE1234F1Z5")

	assert.True(t, ok.IsValid)
	assert.Equal(t, "Karnataka", ok.StateName)
	assert.False(t, bad.IsValid)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("gstin", "valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("gstin", "invalid")))
}

func TestGSTService_ValidateHSNSAC_EnrichesFromMaster(t *testing.T) {
	lookup := hsn.NewLookup([]port.HSNEntry{
		{Code: "1006", Description: "Rice", GSTRate: 5},
	})
	svc := service.NewGSTService(new(mocks.MockInvoiceRepo), lookup, nil, "", true)

	known := svc.ValidateHSNSAC("10063010", gst.SupplyGoods)
	unknown := svc.ValidateHSNSAC("8471", "")
	sac := svc.ValidateHSNSAC("998314", "")

	assert.Equal(t, gst.CodeHSN, known.Type)
	assert.Equal(t, "Rice", known.Description)
	assert.Equal(t, 5.0, known.SuggestedGSTRate)

	assert.Equal(t, "HSN code for goods", unknown.Description)
	assert.Equal(t, 18.0, unknown.SuggestedGSTRate)

	assert.Equal(t, gst.CodeSAC, sac.Type)
	assert.Equal(t, "SAC code for services", sac.Description)
}

func TestGSTService_ValidateHSNSAC_Invalid(t *testing.T) {
	svc := service.NewGSTService(new(mocks.MockInvoiceRepo), nil, nil, "", true)

	result := svc.ValidateHSNSAC("12AB", "")

	assert.False(t, result.IsValid)
	assert.Equal(t, "Invalid HSN/SAC code: expected 2-8 digit HSN or 6-digit SAC starting with 99", result.Error)
}

func TestGSTService_PreviewInvoiceNumber(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("LastNumber", mock.Anything).Return("INV-2024-01-0005", nil)
	svc := service.NewGSTService(repo, nil, nil, "", true)
	date := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	preview, err := svc.PreviewInvoiceNumber(context.Background(), "", date)

	require.NoError(t, err)
	assert.Equal(t, gst.DefaultInvoiceNumberFormat, preview.Format)
	assert.Equal(t, "INV-2024-01-0005", preview.LastNumber)
	assert.Equal(t, "INV-2024-02-0006", preview.NextNumber)
}

func TestGSTService_PreviewInvoiceNumber_RequiresCounter(t *testing.T) {
	svc := service.NewGSTService(new(mocks.MockInvoiceRepo), nil, nil, "", true)

	_, err := svc.PreviewInvoiceNumber(context.Background(), "INV-{YYYY}", time.Now())

	assert.ErrorIs(t, err, domain.ErrInvalidNumberFormat)
}

func TestGSTService_AmountInWords(t *testing.T) {
	svc := service.NewGSTService(new(mocks.MockInvoiceRepo), nil, nil, "", true)

	got := svc.AmountInWords(1234.5)

	assert.Equal(t, "₹1,234.50", got.Formatted)
	assert.Equal(t, "one thousand two hundred thirty four rupees and fifty paise only", got.Words)
}

func TestGSTService_RatesAndStates(t *testing.T) {
	svc := service.NewGSTService(new(mocks.MockInvoiceRepo), nil, nil, "", true)

	assert.Equal(t, []float64{0, 5, 12, 18, 28}, svc.Rates())
	assert.Len(t, svc.States(), 38)
}
