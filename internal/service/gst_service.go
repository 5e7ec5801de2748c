package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"payvlo/internal/domain"
	"payvlo/internal/gst"
	"payvlo/internal/hsn"
	"payvlo/internal/metrics"
	"payvlo/internal/port"
)

// CalculateGSTInput is the DTO for a single tax computation.
type CalculateGSTInput struct {
	TaxableAmount float64 `json:"taxable_amount"`
	GSTRate       float64 `json:"gst_rate"`
	CessRate      float64 `json:"cess_rate"`
	InterState    bool    `json:"is_inter_state"`
}

// CalculateTotalsInput is the DTO for pricing a whole draft invoice.
// RoundOff defaults to the configured behaviour when omitted.
type CalculateTotalsInput struct {
	Items    []gst.LineItemInput `json:"items" binding:"required,min=1"`
	RoundOff *bool               `json:"round_off"`
}

// InvoicePricing is a priced draft: the line calculations, totals and
// the final amount in words.
type InvoicePricing struct {
	Items         []gst.LineItemCalculation `json:"items"`
	Totals        gst.InvoiceTotals         `json:"totals"`
	AmountInWords string                    `json:"amount_in_words"`
}

// AmountInWords pairs an amount with its display forms.
type AmountInWords struct {
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
	Words     string  `json:"words"`
}

// InvoiceNumberPreview is the number the next invoice would receive.
type InvoiceNumberPreview struct {
	Format     string `json:"format"`
	LastNumber string `json:"last_number"`
	NextNumber string `json:"next_number"`
}

// GSTService exposes the GST core to the HTTP layer.
type GSTService interface {
	CalculateGST(input CalculateGSTInput) (gst.GSTCalculation, error)
	CalculateLineItem(input gst.LineItemInput) (gst.LineItemCalculation, error)
	CalculateTotals(input CalculateTotalsInput) (*InvoicePricing, error)
	ValidateGSTIN(raw string) gst.GSTINValidationResult
	ValidateHSNSAC(code string, supply gst.SupplyType) gst.HSNSACValidationResult
	PreviewInvoiceNumber(ctx context.Context, format string, date time.Time) (*InvoiceNumberPreview, error)
	AmountInWords(amount float64) AmountInWords
	Rates() []float64
	States() []gst.State
}

type gstService struct {
	invoiceRepo  port.InvoiceRepository
	lookup       *hsn.Lookup
	metrics      *metrics.Metrics
	numberFormat string
	roundOff     bool
}

// NewGSTService creates a new GSTService. lookup may be nil when the HSN
// master has not been loaded.
func NewGSTService(
	invoiceRepo port.InvoiceRepository,
	lookup *hsn.Lookup,
	m *metrics.Metrics,
	numberFormat string,
	roundOff bool,
) GSTService {
	if numberFormat == "" {
		numberFormat = gst.DefaultInvoiceNumberFormat
	}
	return &gstService{
		invoiceRepo:  invoiceRepo,
		lookup:       lookup,
		metrics:      m,
		numberFormat: numberFormat,
		roundOff:     roundOff,
	}
}

func (s *gstService) CalculateGST(input CalculateGSTInput) (gst.GSTCalculation, error) {
	return gst.CalculateGST(input.TaxableAmount, input.GSTRate, input.CessRate, input.InterState)
}

func (s *gstService) CalculateLineItem(input gst.LineItemInput) (gst.LineItemCalculation, error) {
	return gst.CalculateLineItem(input)
}

func (s *gstService) CalculateTotals(input CalculateTotalsInput) (*InvoicePricing, error) {
	roundOff := s.roundOff
	if input.RoundOff != nil {
		roundOff = *input.RoundOff
	}
	return priceLines(input.Items, roundOff)
}

// priceLines runs every line through the calculator and aggregates the
// result. The error names the offending 1-based line.
func priceLines(items []gst.LineItemInput, roundOff bool) (*InvoicePricing, error) {
	lines := make([]gst.LineItemCalculation, 0, len(items))
	for i, in := range items {
		calc, err := gst.CalculateLineItem(in)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines = append(lines, calc)
	}

	totals, err := gst.CalculateInvoiceTotals(lines, roundOff)
	if err != nil {
		return nil, err
	}
	return &InvoicePricing{
		Items:         lines,
		Totals:        totals,
		AmountInWords: gst.AmountToWords(totals.FinalAmount),
	}, nil
}

func (s *gstService) ValidateGSTIN(raw string) gst.GSTINValidationResult {
	result := gst.ValidateGSTIN(raw)
	s.metrics.IncValidation("gstin", result.IsValid)
	return result
}

// ValidateHSNSAC classifies code and, when the HSN master knows it,
// replaces the generic description and suggested rate with the master's.
func (s *gstService) ValidateHSNSAC(code string, supply gst.SupplyType) gst.HSNSACValidationResult {
	result := gst.ValidateHSNSACForSupply(code, supply)
	s.metrics.IncValidation("hsn_sac", result.IsValid)
	if !result.IsValid {
		return result
	}
	return enrichHSNSAC(s.lookup, result)
}

func enrichHSNSAC(lookup *hsn.Lookup, result gst.HSNSACValidationResult) gst.HSNSACValidationResult {
	if desc, ok := lookup.Description(result.Code); ok {
		result.Description = desc
	}
	if rate, ok := lookup.SuggestedRate(result.Code); ok {
		result.SuggestedGSTRate = rate
	}
	return result
}

func (s *gstService) PreviewInvoiceNumber(ctx context.Context, format string, date time.Time) (*InvoiceNumberPreview, error) {
	if format == "" {
		format = s.numberFormat
	}
	if !strings.Contains(format, "{#") {
		return nil, fmt.Errorf("%w: number format needs a {#} counter", domain.ErrInvalidNumberFormat)
	}
	last, err := s.invoiceRepo.LastNumber(ctx)
	if err != nil {
		return nil, err
	}
	return &InvoiceNumberPreview{
		Format:     format,
		LastNumber: last,
		NextNumber: gst.GenerateInvoiceNumber(format, last, date),
	}, nil
}

func (s *gstService) AmountInWords(amount float64) AmountInWords {
	return AmountInWords{
		Amount:    amount,
		Formatted: gst.FormatIndianCurrency(amount, true),
		Words:     gst.AmountToWords(amount),
	}
}

func (s *gstService) Rates() []float64 {
	return gst.Rates()
}

func (s *gstService) States() []gst.State {
	return gst.States()
}
