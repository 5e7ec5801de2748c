package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"payvlo/internal/domain"
	"payvlo/internal/port"
)

// invoiceNumberLockKey identifies the advisory lock that serialises
// invoice number assignment across connections.
const invoiceNumberLockKey int64 = 0x7061_7976_6c6f

const lastInvoiceNumberQuery = `SELECT invoice_number FROM invoices
	ORDER BY created_at DESC, id DESC LIMIT 1`

const insertInvoiceQuery = `INSERT INTO invoices (
	id, invoice_number, invoice_date, customer_id, invoice_type, place_of_supply,
	is_inter_state, reverse_charge, subtotal, total_discount, taxable_amount,
	cgst_amount, sgst_amount, igst_amount, cess_amount, total_tax, total_amount,
	round_off, final_amount, amount_in_words, payment_terms, due_date, status,
	notes, terms_conditions, pdf_path, created_at, updated_at
) VALUES (
	:id, :invoice_number, :invoice_date, :customer_id, :invoice_type, :place_of_supply,
	:is_inter_state, :reverse_charge, :subtotal, :total_discount, :taxable_amount,
	:cgst_amount, :sgst_amount, :igst_amount, :cess_amount, :total_tax, :total_amount,
	:round_off, :final_amount, :amount_in_words, :payment_terms, :due_date, :status,
	:notes, :terms_conditions, :pdf_path, :created_at, :updated_at
)`

const insertInvoiceItemQuery = `INSERT INTO invoice_items (
	id, invoice_id, product_id, line_no, description, hsn_sac_code, quantity, unit,
	unit_price, discount_percent, discount_amount, taxable_amount, gst_rate,
	cgst_rate, sgst_rate, igst_rate, cess_rate, cgst_amount, sgst_amount,
	igst_amount, cess_amount, total_amount
) VALUES (
	:id, :invoice_id, :product_id, :line_no, :description, :hsn_sac_code, :quantity, :unit,
	:unit_price, :discount_percent, :discount_amount, :taxable_amount, :gst_rate,
	:cgst_rate, :sgst_rate, :igst_rate, :cess_rate, :cgst_amount, :sgst_amount,
	:igst_amount, :cess_amount, :total_amount
)`

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// CreateWithNumber holds a transaction-scoped advisory lock while it reads
// the last number, assigns the next one and inserts the invoice, so two
// concurrent creations can never observe the same last number.
func (r *invoiceRepo) CreateWithNumber(ctx context.Context, inv *domain.Invoice, next port.NextInvoiceNumberFunc) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", invoiceNumberLockKey); err != nil {
			return fmt.Errorf("invoiceRepo.CreateWithNumber lock: %w", err)
		}

		last, err := lastNumber(ctx, tx)
		if err != nil {
			return fmt.Errorf("invoiceRepo.CreateWithNumber last number: %w", err)
		}

		now := time.Now().UTC()
		if inv.ID == uuid.Nil {
			inv.ID = uuid.New()
		}
		inv.InvoiceNumber = next(last)
		inv.CreatedAt = now
		inv.UpdatedAt = now

		if _, err := sqlx.NamedExecContext(ctx, tx, insertInvoiceQuery, inv); err != nil {
			if uniqueViolation(err, "invoices_invoice_number_key") {
				return domain.ErrDuplicateInvoiceNumber
			}
			return fmt.Errorf("invoiceRepo.CreateWithNumber: %w", err)
		}

		for i := range inv.Items {
			item := &inv.Items[i]
			if item.ID == uuid.Nil {
				item.ID = uuid.New()
			}
			item.InvoiceID = inv.ID
			item.LineNo = i + 1
			if _, err := sqlx.NamedExecContext(ctx, tx, insertInvoiceItemQuery, item); err != nil {
				return fmt.Errorf("invoiceRepo.CreateWithNumber item %d: %w", item.LineNo, err)
			}
		}
		return nil
	})
}

func lastNumber(ctx context.Context, q sqlx.QueryerContext) (string, error) {
	var number string
	err := sqlx.GetContext(ctx, q, &number, lastInvoiceNumberQuery)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return number, err
}

func (r *invoiceRepo) LastNumber(ctx context.Context) (string, error) {
	number, err := lastNumber(ctx, r.db)
	if err != nil {
		return "", fmt.Errorf("invoiceRepo.LastNumber: %w", err)
	}
	return number, nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &inv.Items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY line_no", id)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID items: %w", err)
	}
	return &inv, nil
}

// invoiceWhere renders filter as a WHERE clause with positional args.
func invoiceWhere(filter domain.InvoiceFilter) (clause string, args []interface{}) {
	var conds []string
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.CustomerID != nil {
		add("customer_id = $%d", *filter.CustomerID)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.From != nil {
		add("invoice_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("invoice_date <= $%d", *filter.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *invoiceRepo) List(ctx context.Context, filter domain.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error) {
	where, args := invoiceWhere(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM invoices%s ORDER BY invoice_date DESC, created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	var invoices []domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

// ListByDateRange returns invoices dated within [from, to], oldest first.
func (r *invoiceRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices
		 WHERE invoice_date >= $1 AND invoice_date <= $2
		 ORDER BY invoice_date, created_at`, from, to)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByDateRange: %w", err)
	}
	return invoices, nil
}

// ListWithoutPDF returns non-cancelled invoices that have no stored document.
func (r *invoiceRepo) ListWithoutPDF(ctx context.Context, limit int) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices
		 WHERE pdf_path = '' AND status <> $1
		 ORDER BY created_at LIMIT $2`, domain.InvoiceStatusCancelled, limit)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListWithoutPDF: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) SetPDFPath(ctx context.Context, id uuid.UUID, path string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET pdf_path = $1, updated_at = $2 WHERE id = $3",
		path, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.SetPDFPath: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
