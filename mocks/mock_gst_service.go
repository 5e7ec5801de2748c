package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"payvlo/internal/gst"
	"payvlo/internal/service"
)

// MockGSTService is a mock implementation of service.GSTService.
type MockGSTService struct {
	mock.Mock
}

func (m *MockGSTService) CalculateGST(input service.CalculateGSTInput) (gst.GSTCalculation, error) {
	args := m.Called(input)
	return args.Get(0).(gst.GSTCalculation), args.Error(1)
}

func (m *MockGSTService) CalculateLineItem(input gst.LineItemInput) (gst.LineItemCalculation, error) {
	args := m.Called(input)
	return args.Get(0).(gst.LineItemCalculation), args.Error(1)
}

func (m *MockGSTService) CalculateTotals(input service.CalculateTotalsInput) (*service.InvoicePricing, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoicePricing), args.Error(1)
}

func (m *MockGSTService) ValidateGSTIN(raw string) gst.GSTINValidationResult {
	args := m.Called(raw)
	return args.Get(0).(gst.GSTINValidationResult)
}

func (m *MockGSTService) ValidateHSNSAC(code string, supply gst.SupplyType) gst.HSNSACValidationResult {
	args := m.Called(code, supply)
	return args.Get(0).(gst.HSNSACValidationResult)
}

func (m *MockGSTService) PreviewInvoiceNumber(ctx context.Context, format string, date time.Time) (*service.InvoiceNumberPreview, error) {
	args := m.Called(ctx, format, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoiceNumberPreview), args.Error(1)
}

func (m *MockGSTService) AmountInWords(amount float64) service.AmountInWords {
	args := m.Called(amount)
	return args.Get(0).(service.AmountInWords)
}

func (m *MockGSTService) Rates() []float64 {
	args := m.Called()
	return args.Get(0).([]float64)
}

func (m *MockGSTService) States() []gst.State {
	args := m.Called()
	return args.Get(0).([]gst.State)
}
