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

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *domain.Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO products (
		id, product_code, product_name, description, hsn_sac_code, product_type,
		unit_of_measurement, rate, gst_rate, cess_rate, is_active, created_at, updated_at
	) VALUES (
		:id, :product_code, :product_name, :description, :hsn_sac_code, :product_type,
		:unit_of_measurement, :rate, :gst_rate, :cess_rate, :is_active, :created_at, :updated_at
	)`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		if uniqueViolation(err, "products_product_code_key") {
			return domain.ErrDuplicateProductCode
		}
		return fmt.Errorf("productRepo.Create: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, offset, limit int) ([]domain.Product, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM products WHERE is_active"); err != nil {
		return nil, 0, fmt.Errorf("productRepo.List count: %w", err)
	}

	var products []domain.Product
	err := r.db.SelectContext(ctx, &products,
		"SELECT * FROM products WHERE is_active ORDER BY product_name, id LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("productRepo.List: %w", err)
	}
	return products, total, nil
}

// Search matches code, name or HSN/SAC code among active products.
func (r *productRepo) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.SelectContext(ctx, &products,
		`SELECT * FROM products
		 WHERE is_active AND (
			product_code ILIKE $1 OR product_name ILIKE $1 OR hsn_sac_code ILIKE $1
		 )
		 ORDER BY product_name, id LIMIT $2`,
		likePattern(query), limit)
	if err != nil {
		return nil, fmt.Errorf("productRepo.Search: %w", err)
	}
	return products, nil
}

func (r *productRepo) Update(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = time.Now().UTC()
	result, err := r.db.NamedExecContext(ctx,
		`UPDATE products SET
			product_code = :product_code, product_name = :product_name,
			description = :description, hsn_sac_code = :hsn_sac_code,
			product_type = :product_type, unit_of_measurement = :unit_of_measurement,
			rate = :rate, gst_rate = :gst_rate, cess_rate = :cess_rate,
			is_active = :is_active, updated_at = :updated_at
		 WHERE id = :id`, p)
	if err != nil {
		if uniqueViolation(err, "products_product_code_key") {
			return domain.ErrDuplicateProductCode
		}
		return fmt.Errorf("productRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE products SET is_active = FALSE, updated_at = $2 WHERE id = $1 AND is_active",
		id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("productRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
