package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payvlo/internal/domain"
	"payvlo/internal/handler"
	"payvlo/internal/service"
	"payvlo/mocks"
)

func newInvoiceHandler() (*handler.InvoiceHandler, *mocks.MockInvoiceService) {
	mockSvc := new(mocks.MockInvoiceService)
	return handler.NewInvoiceHandler(mockSvc), mockSvc
}

func withID(c *gin.Context, id uuid.UUID) {
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
}

func TestInvoiceHandler_Create(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	input := service.CreateInvoiceInput{
		CustomerID:  uuid.New(),
		InvoiceDate: "2024-04-15",
		Items:       []service.CreateInvoiceItemInput{{ProductID: uuid.New(), Quantity: 2}},
	}
	mockSvc.On("Create", mock.Anything, input).Return(&domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-2024-04-0001",
		Status:        domain.InvoiceStatusDraft,
	}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/invoices", input)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data, ok := decode(t, w).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "INV-2024-04-0001", data["invoice_number"])
}

func TestInvoiceHandler_Create_NoItems(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	c, w := newContext(http.MethodPost, "/api/v1/invoices", map[string]interface{}{
		"customer_id": uuid.New().String(),
		"items":       []interface{}{},
	})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_Create_CompanyMissing(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrCompanyNotConfigured)

	c, w := newContext(http.MethodPost, "/api/v1/invoices", service.CreateInvoiceInput{
		CustomerID: uuid.New(),
		Items:      []service.CreateInvoiceItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInvoiceHandler_List_Filters(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	customerID := uuid.New()
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f domain.InvoiceFilter) bool {
		return f.CustomerID != nil && *f.CustomerID == customerID &&
			f.Status == domain.InvoiceStatusPaid &&
			f.From != nil && f.From.Equal(from) && f.To == nil
	}), 0, 20).Return([]domain.Invoice{}, 0, nil)

	c, w := newContext(http.MethodGet,
		"/api/v1/invoices?customer_id="+customerID.String()+"&status=paid&from=2024-04-01", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_List_BadFilter(t *testing.T) {
	h, _ := newInvoiceHandler()

	c, w := newContext(http.MethodGet, "/api/v1/invoices?from=01/04/2024", nil)
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_UpdateStatus(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	id := uuid.New()
	mockSvc.On("UpdateStatus", mock.Anything, id, domain.InvoiceStatusPaid).
		Return(&domain.Invoice{ID: id, Status: domain.InvoiceStatusPaid}, nil)

	c, w := newContext(http.MethodPut, "/api/v1/invoices/"+id.String()+"/status",
		handler.UpdateInvoiceStatusRequest{Status: "paid"})
	withID(c, id)
	h.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_UpdateStatus_InvalidTransition(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	id := uuid.New()
	mockSvc.On("UpdateStatus", mock.Anything, id, domain.InvoiceStatusDraft).
		Return(nil, domain.ErrInvalidStatusTransition)

	c, w := newContext(http.MethodPut, "/api/v1/invoices/"+id.String()+"/status",
		handler.UpdateInvoiceStatusRequest{Status: "DRAFT"})
	withID(c, id)
	h.UpdateStatus(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInvoiceHandler_DownloadURL(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	id := uuid.New()
	mockSvc.On("GetDownloadURL", mock.Anything, id).Return("https://example.test/inv.pdf?sig=1", nil)

	c, w := newContext(http.MethodGet, "/api/v1/invoices/"+id.String()+"/pdf", nil)
	withID(c, id)
	h.DownloadURL(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decode(t, w).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "https://example.test/inv.pdf?sig=1", data["url"])
}

func TestInvoiceHandler_Download(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	id := uuid.New()
	mockSvc.On("Download", mock.Anything, id).Return(&service.DocumentFile{
		Data:        []byte("%PDF-1.3"),
		ContentType: "application/pdf",
		FileName:    "INV-2024-04-0042.pdf",
	}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/invoices/"+id.String()+"/pdf/file", nil)
	withID(c, id)
	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="INV-2024-04-0042.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestInvoiceHandler_Send_EmailMissing(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	id := uuid.New()
	mockSvc.On("Send", mock.Anything, id).Return(nil, domain.ErrCustomerEmailMissing)

	c, w := newContext(http.MethodPost, "/api/v1/invoices/"+id.String()+"/send", nil)
	withID(c, id)
	h.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CUSTOMER_EMAIL_MISSING", resp.Error.Code)
}

func TestInvoiceHandler_Export(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	mockSvc.On("Export", mock.Anything, domain.ExportFormatXLSX, from, to).Return(&service.ExportResult{
		Data:        []byte("xlsx-bytes"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		FileName:    "invoices_2024-04-01_2024-04-30.xlsx",
		Count:       3,
	}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/invoices/export?format=XLSX&from=2024-04-01&to=2024-04-30", nil)
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-Record-Count"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoices_2024-04-01_2024-04-30.xlsx")
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Export_MissingRange(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	c, w := newContext(http.MethodGet, "/api/v1/invoices/export?from=2024-04-01", nil)
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
