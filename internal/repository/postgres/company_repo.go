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

type companyRepo struct {
	db *sqlx.DB
}

// NewCompanyRepo creates a new PostgreSQL-backed CompanyRepository.
func NewCompanyRepo(db *sqlx.DB) port.CompanyRepository {
	return &companyRepo{db: db}
}

// Get returns the most recently saved company profile.
func (r *companyRepo) Get(ctx context.Context) (*domain.CompanySettings, error) {
	var c domain.CompanySettings
	err := r.db.GetContext(ctx, &c,
		"SELECT * FROM company_settings ORDER BY updated_at DESC, id DESC LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanyNotConfigured
		}
		return nil, fmt.Errorf("companyRepo.Get: %w", err)
	}
	return &c, nil
}

// Save upserts the profile keyed by ID; a zero ID creates a new row.
func (r *companyRepo) Save(ctx context.Context, c *domain.CompanySettings) error {
	now := time.Now().UTC()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	query := `INSERT INTO company_settings (
		id, company_name, gstin, pan, address, city, state, state_code, pincode,
		phone, email, website, bank_name, account_number, ifsc_code, logo_path,
		created_at, updated_at
	) VALUES (
		:id, :company_name, :gstin, :pan, :address, :city, :state, :state_code, :pincode,
		:phone, :email, :website, :bank_name, :account_number, :ifsc_code, :logo_path,
		:created_at, :updated_at
	)
	ON CONFLICT (id) DO UPDATE SET
		company_name = EXCLUDED.company_name,
		gstin = EXCLUDED.gstin,
		pan = EXCLUDED.pan,
		address = EXCLUDED.address,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		state_code = EXCLUDED.state_code,
		pincode = EXCLUDED.pincode,
		phone = EXCLUDED.phone,
		email = EXCLUDED.email,
		website = EXCLUDED.website,
		bank_name = EXCLUDED.bank_name,
		account_number = EXCLUDED.account_number,
		ifsc_code = EXCLUDED.ifsc_code,
		logo_path = EXCLUDED.logo_path,
		updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("companyRepo.Save: %w", err)
	}
	return nil
}
