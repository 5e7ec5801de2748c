package port

import "payvlo/internal/domain"

// InvoiceDocument is everything needed to print an invoice.
type InvoiceDocument struct {
	Invoice  *domain.Invoice
	Company  *domain.CompanySettings
	Customer *domain.Customer
}

// InvoiceRenderer turns an invoice into a printable file.
type InvoiceRenderer interface {
	Render(doc InvoiceDocument) ([]byte, error)
	ContentType() string
	Extension() string
}
