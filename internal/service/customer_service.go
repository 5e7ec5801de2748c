package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"payvlo/internal/domain"
	"payvlo/internal/port"
)

// CreateCustomerInput is the DTO for creating a customer.
type CreateCustomerInput struct {
	CustomerName     string              `json:"customer_name" binding:"required"`
	GSTIN            string              `json:"gstin"`
	PAN              string              `json:"pan"`
	CustomerType     domain.CustomerType `json:"customer_type"`
	Address          string              `json:"address"`
	City             string              `json:"city"`
	StateCode        string              `json:"state_code"`
	Pincode          string              `json:"pincode"`
	Phone            string              `json:"phone"`
	Email            string              `json:"email"`
	CreditLimit      float64             `json:"credit_limit"`
	CreditPeriodDays int                 `json:"credit_period_days"`
}

// UpdateCustomerInput is the DTO for updating a customer.
type UpdateCustomerInput struct {
	CustomerName     *string              `json:"customer_name"`
	GSTIN            *string              `json:"gstin"`
	PAN              *string              `json:"pan"`
	CustomerType     *domain.CustomerType `json:"customer_type"`
	Address          *string              `json:"address"`
	City             *string              `json:"city"`
	StateCode        *string              `json:"state_code"`
	Pincode          *string              `json:"pincode"`
	Phone            *string              `json:"phone"`
	Email            *string              `json:"email"`
	CreditLimit      *float64             `json:"credit_limit"`
	CreditPeriodDays *int                 `json:"credit_period_days"`
	IsActive         *bool                `json:"is_active"`
}

// CustomerService defines the customer management contract.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:               uuid.New(),
		CustomerName:     strings.TrimSpace(input.CustomerName),
		GSTIN:            input.GSTIN,
		PAN:              input.PAN,
		CustomerType:     input.CustomerType,
		Address:          input.Address,
		City:             input.City,
		StateCode:        input.StateCode,
		Pincode:          input.Pincode,
		Phone:            input.Phone,
		Email:            strings.TrimSpace(input.Email),
		CreditLimit:      input.CreditLimit,
		CreditPeriodDays: input.CreditPeriodDays,
		IsActive:         true,
	}
	if customer.CustomerType == "" {
		customer.CustomerType = domain.CustomerTypeB2B
	}
	if err := normalizeCustomer(customer); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// normalizeCustomer applies the type rules: B2B needs a GSTIN, any GSTIN
// given must validate, and PAN and state follow from the GSTIN.
func normalizeCustomer(c *domain.Customer) error {
	if !c.CustomerType.Valid() {
		return domain.ErrInvalidCustomerType
	}
	if c.CustomerType == domain.CustomerTypeB2B && strings.TrimSpace(c.GSTIN) == "" {
		return domain.ErrGSTINRequired
	}
	id, err := resolveTaxIdentity(c.GSTIN, c.PAN, c.StateCode)
	if err != nil {
		return err
	}
	c.GSTIN = id.GSTIN
	c.PAN = id.PAN
	c.StateCode = id.StateCode
	c.State = id.StateName
	return nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *customerService) Search(ctx context.Context, query string, limit int) ([]domain.Customer, error) {
	if strings.TrimSpace(query) == "" {
		customers, _, err := s.repo.List(ctx, 0, limit)
		return customers, err
	}
	return s.repo.Search(ctx, query, limit)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CustomerName != nil {
		customer.CustomerName = strings.TrimSpace(*input.CustomerName)
	}
	if input.GSTIN != nil {
		customer.GSTIN = *input.GSTIN
		if input.PAN == nil {
			customer.PAN = ""
		}
		if input.StateCode == nil {
			customer.StateCode = ""
		}
	}
	if input.PAN != nil {
		customer.PAN = *input.PAN
	}
	if input.CustomerType != nil {
		customer.CustomerType = *input.CustomerType
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.StateCode != nil {
		customer.StateCode = *input.StateCode
	}
	if input.Pincode != nil {
		customer.Pincode = *input.Pincode
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = strings.TrimSpace(*input.Email)
	}
	if input.CreditLimit != nil {
		customer.CreditLimit = *input.CreditLimit
	}
	if input.CreditPeriodDays != nil {
		customer.CreditPeriodDays = *input.CreditPeriodDays
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := normalizeCustomer(customer); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
