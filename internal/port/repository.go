package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"payvlo/internal/domain"
)

// CompanyRepository persists the single supplier profile.
type CompanyRepository interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Save(ctx context.Context, company *domain.CompanySettings) error
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the contract for product persistence.
// Delete is a soft delete; List and Search return active products only.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StateRepository reads the state master table.
type StateRepository interface {
	ListActive(ctx context.Context) ([]domain.IndianState, error)
	GetByCode(ctx context.Context, code string) (*domain.IndianState, error)
}

// NextInvoiceNumberFunc computes the number for a new invoice from the last
// issued one ("" when none exists).
type NextInvoiceNumberFunc func(lastNumber string) string

// InvoiceRepository defines the contract for invoice persistence.
type InvoiceRepository interface {
	// CreateWithNumber reads the last issued number, assigns next(last) to
	// invoice and inserts the invoice with its items as one serialised unit.
	CreateWithNumber(ctx context.Context, invoice *domain.Invoice, next NextInvoiceNumberFunc) error
	// LastNumber returns the most recently issued number, or "" when none.
	LastNumber(ctx context.Context) (string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Invoice, error)
	ListWithoutPDF(ctx context.Context, limit int) ([]domain.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error
	SetPDFPath(ctx context.Context, id uuid.UUID, path string) error
}

// StatsRepository reports record counts across the master tables.
type StatsRepository interface {
	Counts(ctx context.Context) (*domain.RecordCounts, error)
}
