package handler_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payvlo/internal/gst"
	"payvlo/internal/handler"
	"payvlo/internal/service"
	"payvlo/mocks"
)

func newGSTHandler() (*handler.GSTHandler, *mocks.MockGSTService) {
	mockSvc := new(mocks.MockGSTService)
	return handler.NewGSTHandler(mockSvc), mockSvc
}

func TestGSTHandler_Calculate(t *testing.T) {
	h, mockSvc := newGSTHandler()

	input := service.CalculateGSTInput{TaxableAmount: 1000, GSTRate: 18}
	calc, err := gst.CalculateGST(1000, 18, 0, false)
	require.NoError(t, err)
	mockSvc.On("CalculateGST", input).Return(calc, nil)

	c, w := newContext(http.MethodPost, "/api/v1/gst/calculate", input)
	h.Calculate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestGSTHandler_Calculate_InvalidRate(t *testing.T) {
	h, mockSvc := newGSTHandler()

	input := service.CalculateGSTInput{TaxableAmount: 1000, GSTRate: 7}
	mockSvc.On("CalculateGST", input).Return(gst.GSTCalculation{}, gst.ErrInvalidGSTRate)

	c, w := newContext(http.MethodPost, "/api/v1/gst/calculate", input)
	h.Calculate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_GST_RATE", resp.Error.Code)
}

func TestGSTHandler_Totals_BadBody(t *testing.T) {
	h, mockSvc := newGSTHandler()

	c, w := newContext(http.MethodPost, "/api/v1/gst/totals", nil)
	h.Totals(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "CalculateTotals", mock.Anything)
}

func TestGSTHandler_ValidateGSTIN(t *testing.T) {
	h, mockSvc := newGSTHandler()

	mockSvc.On("ValidateGSTIN", "29ABCDE1234F1Z2").Return(gst.GSTINValidationResult{
		IsValid:   true,
		StateCode: "29",
		StateName: "Karnataka",
		PANNumber: "ABCDE1234F",
	})

	c, w := newContext(http.MethodGet, "/api/v1/gst/gstin/29ABCDE1234F1Z2", nil)
	c.Params = gin.Params{{Key: "gstin", Value: "29ABCDE1234F1Z2"}}
	h.ValidateGSTIN(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["is_valid"])
	assert.Equal(t, "Karnataka", data["state_name"])
}

func TestGSTHandler_ValidateHSNSAC(t *testing.T) {
	h, mockSvc := newGSTHandler()

	mockSvc.On("ValidateHSNSAC", "998314", gst.SupplyServices).Return(gst.HSNSACValidationResult{
		IsValid: true,
		Type:    gst.CodeSAC,
		Code:    "998314",
	})

	c, w := newContext(http.MethodGet, "/api/v1/gst/hsn-sac/998314?supply=services", nil)
	c.Params = gin.Params{{Key: "code", Value: "998314"}}
	h.ValidateHSNSAC(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decode(t, w).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "SAC", data["validation_type"])
	mockSvc.AssertExpectations(t)
}

func TestGSTHandler_ValidateHSNSAC_BadSupply(t *testing.T) {
	h, mockSvc := newGSTHandler()

	c, w := newContext(http.MethodGet, "/api/v1/gst/hsn-sac/8471?supply=both", nil)
	c.Params = gin.Params{{Key: "code", Value: "8471"}}
	h.ValidateHSNSAC(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "ValidateHSNSAC", mock.Anything, mock.Anything)
}

func TestGSTHandler_PreviewInvoiceNumber(t *testing.T) {
	h, mockSvc := newGSTHandler()

	date := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	mockSvc.On("PreviewInvoiceNumber", mock.Anything, "", date).Return(&service.InvoiceNumberPreview{
		Format:     gst.DefaultInvoiceNumberFormat,
		LastNumber: "INV-2024-01-0005",
		NextNumber: "INV-2024-02-0006",
	}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/gst/invoice-number/preview?date=2024-02-10", nil)
	h.PreviewInvoiceNumber(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decode(t, w).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "INV-2024-02-0006", data["next_number"])
}

func TestGSTHandler_PreviewInvoiceNumber_BadDate(t *testing.T) {
	h, _ := newGSTHandler()

	c, w := newContext(http.MethodGet, "/api/v1/gst/invoice-number/preview?date=10-02-2024", nil)
	h.PreviewInvoiceNumber(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_DATE", resp.Error.Code)
}

func TestGSTHandler_PreviewInvoiceNumber_ServiceError(t *testing.T) {
	h, mockSvc := newGSTHandler()

	mockSvc.On("PreviewInvoiceNumber", mock.Anything, "BAD", mock.Anything).
		Return(nil, errors.New("db down"))

	c, w := newContext(http.MethodGet, "/api/v1/gst/invoice-number/preview?format=BAD", nil)
	h.PreviewInvoiceNumber(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGSTHandler_AmountInWords(t *testing.T) {
	h, mockSvc := newGSTHandler()

	mockSvc.On("AmountInWords", 1234.5).Return(service.AmountInWords{
		Amount:    1234.5,
		Formatted: "₹1,234.50",
		Words:     "one thousand two hundred thirty four rupees and fifty paise only",
	})

	c, w := newContext(http.MethodGet, "/api/v1/gst/amount-in-words?amount=1234.5", nil)
	h.AmountInWords(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decode(t, w).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "₹1,234.50", data["formatted"])
}

func TestGSTHandler_AmountInWords_NotANumber(t *testing.T) {
	h, _ := newGSTHandler()

	c, w := newContext(http.MethodGet, "/api/v1/gst/amount-in-words?amount=ten", nil)
	h.AmountInWords(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGSTHandler_Rates(t *testing.T) {
	h, mockSvc := newGSTHandler()
	mockSvc.On("Rates").Return([]float64{0, 5, 12, 18, 28})

	c, w := newContext(http.MethodGet, "/api/v1/gst/rates", nil)
	h.Rates(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{0.0, 5.0, 12.0, 18.0, 28.0}, decode(t, w).Data)
}
