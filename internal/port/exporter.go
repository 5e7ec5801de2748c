package port

import (
	"io"

	"payvlo/internal/domain"
)

// RegisterEntry is one invoice row of an invoice register export.
type RegisterEntry struct {
	Invoice       domain.Invoice
	CustomerName  string
	CustomerGSTIN string
}

// RegisterExporter writes an invoice register in one file format.
type RegisterExporter interface {
	Export(w io.Writer, entries []RegisterEntry) error
	ContentType() string
	Extension() string
}
