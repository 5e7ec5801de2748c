package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"payvlo/internal/domain"
	"payvlo/internal/port"
)

// SaveCompanyInput is the DTO for creating or replacing the supplier profile.
type SaveCompanyInput struct {
	CompanyName   string `json:"company_name" binding:"required"`
	GSTIN         string `json:"gstin" binding:"required"`
	PAN           string `json:"pan"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Pincode       string `json:"pincode"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	LogoPath      string `json:"logo_path"`
}

// CompanyService manages the supplier profile printed on every invoice.
type CompanyService interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Save(ctx context.Context, input SaveCompanyInput) (*domain.CompanySettings, error)
}

type companyService struct {
	repo port.CompanyRepository
}

// NewCompanyService creates a new CompanyService implementation.
func NewCompanyService(repo port.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Get(ctx context.Context) (*domain.CompanySettings, error) {
	return s.repo.Get(ctx)
}

// Save validates the GSTIN, derives PAN and state from it and updates the
// existing profile in place, or creates the first one.
func (s *companyService) Save(ctx context.Context, input SaveCompanyInput) (*domain.CompanySettings, error) {
	id, err := resolveTaxIdentity(input.GSTIN, input.PAN, "")
	if err != nil {
		return nil, err
	}

	company, err := s.repo.Get(ctx)
	switch {
	case errors.Is(err, domain.ErrCompanyNotConfigured):
		company = &domain.CompanySettings{}
	case err != nil:
		return nil, err
	}

	company.CompanyName = input.CompanyName
	company.GSTIN = id.GSTIN
	company.PAN = id.PAN
	company.StateCode = id.StateCode
	company.State = id.StateName
	company.Address = input.Address
	company.City = input.City
	company.Pincode = input.Pincode
	company.Phone = input.Phone
	company.Email = input.Email
	company.Website = input.Website
	company.BankName = input.BankName
	company.AccountNumber = input.AccountNumber
	company.IFSCCode = input.IFSCCode
	company.LogoPath = input.LogoPath

	if err := s.repo.Save(ctx, company); err != nil {
		return nil, err
	}
	log.Info().Str("gstin", company.GSTIN).Msg("companyService.Save: company settings saved")
	return company, nil
}
