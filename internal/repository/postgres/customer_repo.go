package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"payvlo/internal/domain"
	"payvlo/internal/port"
)

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *domain.Customer) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `INSERT INTO customers (
		id, customer_name, gstin, pan, customer_type, address, city, state, state_code,
		pincode, phone, email, credit_limit, credit_period_days, is_active, created_at, updated_at
	) VALUES (
		:id, :customer_name, :gstin, :pan, :customer_type, :address, :city, :state, :state_code,
		:pincode, :phone, :email, :credit_limit, :credit_period_days, :is_active, :created_at, :updated_at
	)`
	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.GetContext(ctx, &c, "SELECT * FROM customers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM customers"); err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List count: %w", err)
	}

	var customers []domain.Customer
	err := r.db.SelectContext(ctx, &customers,
		"SELECT * FROM customers ORDER BY customer_name, id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List: %w", err)
	}
	return customers, total, nil
}

// Search matches name, GSTIN, phone or email case-insensitively.
func (r *customerRepo) Search(ctx context.Context, query string, limit int) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.SelectContext(ctx, &customers,
		`SELECT * FROM customers
		 WHERE is_active AND (
			customer_name ILIKE $1 OR gstin ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1
		 )
		 ORDER BY customer_name, id LIMIT $2`,
		likePattern(query), limit)
	if err != nil {
		return nil, fmt.Errorf("customerRepo.Search: %w", err)
	}
	return customers, nil
}

func (r *customerRepo) Update(ctx context.Context, c *domain.Customer) error {
	c.UpdatedAt = time.Now().UTC()
	result, err := r.db.NamedExecContext(ctx,
		`UPDATE customers SET
			customer_name = :customer_name, gstin = :gstin, pan = :pan,
			customer_type = :customer_type, address = :address, city = :city,
			state = :state, state_code = :state_code, pincode = :pincode,
			phone = :phone, email = :email, credit_limit = :credit_limit,
			credit_period_days = :credit_period_days, is_active = :is_active,
			updated_at = :updated_at
		 WHERE id = :id`, c)
	if err != nil {
		return fmt.Errorf("customerRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a customer that has never been invoiced and deactivates
// one that has, so issued invoices keep their counterparty.
func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE customers SET is_active = FALSE, updated_at = $2
		 WHERE id = $1 AND EXISTS (SELECT 1 FROM invoices WHERE customer_id = $1)`,
		id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("customerRepo.Delete deactivate: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		return nil
	}

	result, err = r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("customerRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
