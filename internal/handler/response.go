package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"payvlo/internal/domain"
	"payvlo/internal/gst"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorMappings is checked in order; the first errors.Is match wins.
var errorMappings = []errorMapping{
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrCompanyNotConfigured, http.StatusConflict, "COMPANY_NOT_CONFIGURED"},
	{domain.ErrInvalidGSTIN, http.StatusBadRequest, "INVALID_GSTIN"},
	{domain.ErrGSTINRequired, http.StatusBadRequest, "GSTIN_REQUIRED"},
	{domain.ErrPANMismatch, http.StatusBadRequest, "PAN_MISMATCH"},
	{domain.ErrInvalidHSNSAC, http.StatusBadRequest, "INVALID_HSN_SAC"},
	{domain.ErrInvalidGSTRate, http.StatusBadRequest, "INVALID_GST_RATE"},
	{domain.ErrInvalidCustomerType, http.StatusBadRequest, "INVALID_CUSTOMER_TYPE"},
	{domain.ErrInvalidProductType, http.StatusBadRequest, "INVALID_PRODUCT_TYPE"},
	{domain.ErrInvalidProductRate, http.StatusBadRequest, "INVALID_PRODUCT_RATE"},
	{domain.ErrInvalidStateCode, http.StatusBadRequest, "INVALID_STATE_CODE"},
	{domain.ErrInvalidInvoiceType, http.StatusBadRequest, "INVALID_INVOICE_TYPE"},
	{domain.ErrInvalidInvoiceStatus, http.StatusBadRequest, "INVALID_INVOICE_STATUS"},
	{domain.ErrInvalidStatusTransition, http.StatusConflict, "INVALID_STATUS_TRANSITION"},
	{domain.ErrInvalidLineItem, http.StatusBadRequest, "INVALID_LINE_ITEM"},
	{domain.ErrEmptyInvoice, http.StatusBadRequest, "EMPTY_INVOICE"},
	{domain.ErrProductInactive, http.StatusBadRequest, "PRODUCT_INACTIVE"},
	{domain.ErrCustomerInactive, http.StatusBadRequest, "CUSTOMER_INACTIVE"},
	{domain.ErrCustomerEmailMissing, http.StatusBadRequest, "CUSTOMER_EMAIL_MISSING"},
	{domain.ErrDuplicateProductCode, http.StatusConflict, "DUPLICATE_PRODUCT_CODE"},
	{domain.ErrDuplicateInvoiceNumber, http.StatusConflict, "DUPLICATE_INVOICE_NUMBER"},
	{domain.ErrInvalidDateRange, http.StatusBadRequest, "INVALID_DATE"},
	{domain.ErrUnsupportedExportFormat, http.StatusBadRequest, "UNSUPPORTED_EXPORT_FORMAT"},
	{domain.ErrInvalidNumberFormat, http.StatusBadRequest, "INVALID_NUMBER_FORMAT"},
	{domain.ErrUploadFailed, http.StatusBadGateway, "UPLOAD_FAILED"},
	{domain.ErrRenderFailed, http.StatusInternalServerError, "RENDER_FAILED"},
	{domain.ErrEmailFailed, http.StatusBadGateway, "EMAIL_FAILED"},
	{gst.ErrInvalidGSTRate, http.StatusBadRequest, "INVALID_GST_RATE"},
	{gst.ErrInvalidQuantity, http.StatusBadRequest, "INVALID_QUANTITY"},
	{gst.ErrInvalidUnitPrice, http.StatusBadRequest, "INVALID_UNIT_PRICE"},
	{gst.ErrInvalidDiscount, http.StatusBadRequest, "INVALID_DISCOUNT"},
	{gst.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
	{gst.ErrNoLineItems, http.StatusBadRequest, "EMPTY_INVOICE"},
}

// MapDomainError translates domain and GST errors to HTTP status codes and
// error codes. Client errors carry the full error text; anything else is
// reported as an internal error.
func MapDomainError(err error) (status int, code, msg string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			if m.status >= 500 {
				return m.status, m.code, m.err.Error()
			}
			return m.status, m.code, err.Error()
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Error().Err(err).Interface("request_id", requestID).
			Str("path", c.FullPath()).Msg("handler.HandleError: internal error")
	}
	RespondError(c, status, code, msg)
}

// parsePagination reads offset and limit query params with sane bounds.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// parseID reads the :id path param, writing a 400 when it is not a UUID.
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the request body, writing a 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return false
	}
	return true
}
