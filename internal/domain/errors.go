package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrCompanyNotConfigured    = errors.New("company settings have not been configured")
	ErrInvalidGSTIN            = errors.New("invalid GSTIN")
	ErrGSTINRequired           = errors.New("GSTIN is required for B2B customers")
	ErrPANMismatch             = errors.New("PAN does not match the PAN embedded in the GSTIN")
	ErrInvalidHSNSAC           = errors.New("invalid HSN/SAC code")
	ErrInvalidGSTRate          = errors.New("gst rate must be one of 0, 5, 12, 18, 28")
	ErrInvalidCustomerType     = errors.New("invalid customer type")
	ErrInvalidProductType      = errors.New("invalid product type")
	ErrInvalidInvoiceType      = errors.New("invalid invoice type")
	ErrInvalidInvoiceStatus    = errors.New("invalid invoice status")
	ErrInvalidStatusTransition = errors.New("invoice status transition not allowed")
	ErrInvalidLineItem         = errors.New("invalid invoice line item")
	ErrEmptyInvoice            = errors.New("invoice must have at least one line item")
	ErrProductInactive         = errors.New("product is inactive")
	ErrCustomerInactive        = errors.New("customer is inactive")
	ErrCustomerEmailMissing    = errors.New("customer has no email address")
	ErrDuplicateProductCode    = errors.New("product code already exists")
	ErrDuplicateInvoiceNumber  = errors.New("invoice number already exists")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrUploadFailed            = errors.New("file upload to storage failed")
	ErrRenderFailed            = errors.New("invoice rendering failed")
	ErrInvalidNumberFormat     = errors.New("invalid invoice number format")
	ErrInvalidStateCode        = errors.New("invalid state code")
	ErrInvalidProductRate      = errors.New("product rate and cess rate must not be negative")
	ErrEmailFailed             = errors.New("invoice email delivery failed")
)
