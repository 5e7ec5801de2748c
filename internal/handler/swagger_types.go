package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// Response is the success envelope.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody is the error envelope.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}

// UpdateInvoiceStatusRequest is the body of PUT /invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required" example:"PAID"`
}

// DownloadURLResponse carries a presigned document link.
type DownloadURLResponse struct {
	URL string `json:"url" example:"https://payvlo-invoices.s3.ap-south-1.amazonaws.com/invoices/2024/04/INV-2024-04-0042.pdf?X-Amz-Signature=..."`
}
