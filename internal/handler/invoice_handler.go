package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"payvlo/internal/domain"
	"payvlo/internal/service"
)

const queryDateLayout = "2006-01-02"

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles POST /api/v1/invoices
// @Summary Issue an invoice
// @Description Prices each line from its product, classifies the supply as intra- or inter-state and assigns the next number in the series.
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.CreateInvoiceInput true "Invoice"
// @Success 201 {object} Response{data=domain.Invoice}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody "Customer or product not found"
// @Failure 409 {object} ErrorResponseBody "Company not configured"
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req service.CreateInvoiceInput
	if !bindJSON(c, &req) {
		return
	}
	inv, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, inv)
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param customer_id query string false "Customer ID"
// @Param status query string false "DRAFT, SENT, PAID, OVERDUE or CANCELLED"
// @Param from query string false "Earliest invoice date YYYY-MM-DD"
// @Param to query string false "Latest invoice date YYYY-MM-DD"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit (max 100)"
// @Success 200 {object} Response{data=[]domain.Invoice}
// @Failure 400 {object} ErrorResponseBody
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	filter, err := parseInvoiceFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	offset, limit := parsePagination(c)

	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

func parseInvoiceFilter(c *gin.Context) (domain.InvoiceFilter, error) {
	var filter domain.InvoiceFilter
	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid customer_id")
		}
		filter.CustomerID = &id
	}
	if raw := c.Query("status"); raw != "" {
		filter.Status = domain.InvoiceStatus(strings.ToUpper(raw))
	}
	from, err := parseQueryDate(c, "from")
	if err != nil {
		return filter, err
	}
	to, err := parseQueryDate(c, "to")
	if err != nil {
		return filter, err
	}
	filter.From, filter.To = from, to
	return filter, nil
}

func parseQueryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(queryDateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be YYYY-MM-DD", name)
	}
	return &t, nil
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get an invoice with its items
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=domain.Invoice}
// @Failure 404 {object} ErrorResponseBody
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "invoice")
	if !ok {
		return
	}
	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// UpdateStatus handles PUT /api/v1/invoices/:id/status
// @Summary Change an invoice status
// @Description PAID and CANCELLED are terminal.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} Response{data=domain.Invoice}
// @Failure 400 {object} ErrorResponseBody
// @Failure 409 {object} ErrorResponseBody "Transition not allowed"
// @Router /invoices/{id}/status [put]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "invoice")
	if !ok {
		return
	}
	var req UpdateInvoiceStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status := domain.InvoiceStatus(strings.ToUpper(req.Status))
	inv, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// GeneratePDF handles POST /api/v1/invoices/:id/pdf
// @Summary Render and store the invoice PDF
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=domain.Invoice}
// @Failure 404 {object} ErrorResponseBody
// @Failure 502 {object} ErrorResponseBody "Storage unavailable"
// @Router /invoices/{id}/pdf [post]
func (h *InvoiceHandler) GeneratePDF(c *gin.Context) {
	id, ok := parseID(c, "invoice")
	if !ok {
		return
	}
	inv, err := h.invoiceService.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// DownloadURL handles GET /api/v1/invoices/:id/pdf
// @Summary Get a presigned download link for the invoice PDF
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=DownloadURLResponse}
// @Failure 404 {object} ErrorResponseBody
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadURL(c *gin.Context) {
	id, ok := parseID(c, "invoice")
	if !ok {
		return
	}
	url, err := h.invoiceService.GetDownloadURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, DownloadURLResponse{URL: url})
}

// Download handles GET /api/v1/invoices/:id/pdf/file
// @Summary Download the invoice PDF
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponseBody
// @Router /invoices/{id}/pdf/file [get]
func (h *InvoiceHandler) Download(c *gin.Context) {
	id, ok := parseID(c, "invoice")
	if !ok {
		return
	}
	file, err := h.invoiceService.Download(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Send handles POST /api/v1/invoices/:id/send
// @Summary E-mail the invoice to the customer
// @Description Sends a download link and marks the invoice SENT.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=domain.Invoice}
// @Failure 400 {object} ErrorResponseBody "Customer has no e-mail"
// @Failure 409 {object} ErrorResponseBody "Invoice cannot be sent in its status"
// @Router /invoices/{id}/send [post]
func (h *InvoiceHandler) Send(c *gin.Context) {
	id, ok := parseID(c, "invoice")
	if !ok {
		return
	}
	inv, err := h.invoiceService.Send(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// Export handles GET /api/v1/invoices/export
// @Summary Export the invoice register
// @Tags invoices
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default) or xlsx"
// @Param from query string true "Earliest invoice date YYYY-MM-DD"
// @Param to query string true "Latest invoice date YYYY-MM-DD"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponseBody
// @Router /invoices/export [get]
func (h *InvoiceHandler) Export(c *gin.Context) {
	format := domain.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(domain.ExportFormatCSV))))
	from, err := parseQueryDate(c, "from")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", err.Error())
		return
	}
	to, err := parseQueryDate(c, "to")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", err.Error())
		return
	}
	if from == nil || to == nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "from and to are required")
		return
	}

	result, err := h.invoiceService.Export(c.Request.Context(), format, *from, *to)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Header("X-Record-Count", fmt.Sprintf("%d", result.Count))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
