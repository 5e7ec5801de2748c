package port

import "context"

// InvoiceEmail is the content needed to deliver an invoice to a customer.
type InvoiceEmail struct {
	ToEmail       string
	ToName        string
	CompanyName   string
	InvoiceNumber string
	InvoiceDate   string
	Amount        string
	AmountInWords string
	DownloadURL   string
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendInvoiceEmail(ctx context.Context, msg InvoiceEmail) error
}
