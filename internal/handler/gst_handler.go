package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"payvlo/internal/gst"
	"payvlo/internal/service"
)

// GSTHandler exposes the GST calculation and validation core.
type GSTHandler struct {
	gstService service.GSTService
}

// NewGSTHandler creates a new GSTHandler.
func NewGSTHandler(gstService service.GSTService) *GSTHandler {
	return &GSTHandler{gstService: gstService}
}

// Calculate handles POST /api/v1/gst/calculate
// @Summary Split GST on a taxable amount
// @Tags gst
// @Accept json
// @Produce json
// @Param request body service.CalculateGSTInput true "Taxable amount and rates"
// @Success 200 {object} Response{data=gst.GSTCalculation}
// @Failure 400 {object} ErrorResponseBody
// @Router /gst/calculate [post]
func (h *GSTHandler) Calculate(c *gin.Context) {
	var req service.CalculateGSTInput
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.gstService.CalculateGST(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// LineItem handles POST /api/v1/gst/line-item
// @Summary Price and tax one invoice line
// @Tags gst
// @Accept json
// @Produce json
// @Param request body gst.LineItemInput true "Line item"
// @Success 200 {object} Response{data=gst.LineItemCalculation}
// @Failure 400 {object} ErrorResponseBody
// @Router /gst/line-item [post]
func (h *GSTHandler) LineItem(c *gin.Context) {
	var req gst.LineItemInput
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.gstService.CalculateLineItem(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Totals handles POST /api/v1/gst/totals
// @Summary Price a draft invoice
// @Description Calculates every line, the invoice totals with round off and the amount in words.
// @Tags gst
// @Accept json
// @Produce json
// @Param request body service.CalculateTotalsInput true "Line items"
// @Success 200 {object} Response{data=service.InvoicePricing}
// @Failure 400 {object} ErrorResponseBody
// @Router /gst/totals [post]
func (h *GSTHandler) Totals(c *gin.Context) {
	var req service.CalculateTotalsInput
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.gstService.CalculateTotals(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// ValidateGSTIN handles GET /api/v1/gst/gstin/:gstin
// @Summary Validate a GSTIN
// @Description Format, state code, embedded PAN and check character. An invalid GSTIN is still a 200 with is_valid false.
// @Tags gst
// @Produce json
// @Param gstin path string true "GSTIN"
// @Success 200 {object} Response{data=gst.GSTINValidationResult}
// @Router /gst/gstin/{gstin} [get]
func (h *GSTHandler) ValidateGSTIN(c *gin.Context) {
	RespondOK(c, h.gstService.ValidateGSTIN(c.Param("gstin")))
}

// ValidateHSNSAC handles GET /api/v1/gst/hsn-sac/:code
// @Summary Classify an HSN or SAC code
// @Tags gst
// @Produce json
// @Param code path string true "HSN or SAC code"
// @Param supply query string false "GOODS or SERVICES"
// @Success 200 {object} Response{data=gst.HSNSACValidationResult}
// @Router /gst/hsn-sac/{code} [get]
func (h *GSTHandler) ValidateHSNSAC(c *gin.Context) {
	supply := gst.SupplyType(strings.ToUpper(c.Query("supply")))
	if supply != "" && supply != gst.SupplyGoods && supply != gst.SupplyServices {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "supply must be GOODS or SERVICES")
		return
	}
	RespondOK(c, h.gstService.ValidateHSNSAC(c.Param("code"), supply))
}

// PreviewInvoiceNumber handles GET /api/v1/gst/invoice-number/preview
// @Summary Preview the next invoice number
// @Tags gst
// @Produce json
// @Param format query string false "Number format, defaults to the configured one"
// @Param date query string false "Invoice date YYYY-MM-DD, defaults to today"
// @Success 200 {object} Response{data=service.InvoiceNumberPreview}
// @Failure 400 {object} ErrorResponseBody
// @Router /gst/invoice-number/preview [get]
func (h *GSTHandler) PreviewInvoiceNumber(c *gin.Context) {
	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
			return
		}
		date = d
	}
	preview, err := h.gstService.PreviewInvoiceNumber(c.Request.Context(), c.Query("format"), date)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, preview)
}

// AmountInWords handles GET /api/v1/gst/amount-in-words
// @Summary Format an amount in Indian notation and words
// @Tags gst
// @Produce json
// @Param amount query number true "Amount in rupees"
// @Success 200 {object} Response{data=service.AmountInWords}
// @Failure 400 {object} ErrorResponseBody
// @Router /gst/amount-in-words [get]
func (h *GSTHandler) AmountInWords(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_AMOUNT", "amount must be a number")
		return
	}
	RespondOK(c, h.gstService.AmountInWords(amount))
}

// Rates handles GET /api/v1/gst/rates
// @Summary List GST slabs
// @Tags gst
// @Produce json
// @Success 200 {object} Response{data=[]number}
// @Router /gst/rates [get]
func (h *GSTHandler) Rates(c *gin.Context) {
	RespondOK(c, h.gstService.Rates())
}
