package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"payvlo/internal/domain"
	"payvlo/internal/gst"
	"payvlo/internal/hsn"
	"payvlo/internal/port"
)

// CreateProductInput is the DTO for creating a product.
type CreateProductInput struct {
	ProductCode       string             `json:"product_code" binding:"required"`
	ProductName       string             `json:"product_name" binding:"required"`
	Description       string             `json:"description"`
	HSNSACCode        string             `json:"hsn_sac_code" binding:"required"`
	ProductType       domain.ProductType `json:"product_type"`
	UnitOfMeasurement string             `json:"unit_of_measurement"`
	Rate              float64            `json:"rate"`
	GSTRate           float64            `json:"gst_rate"`
	CessRate          float64            `json:"cess_rate"`
}

// UpdateProductInput is the DTO for updating a product.
type UpdateProductInput struct {
	ProductCode       *string             `json:"product_code"`
	ProductName       *string             `json:"product_name"`
	Description       *string             `json:"description"`
	HSNSACCode        *string             `json:"hsn_sac_code"`
	ProductType       *domain.ProductType `json:"product_type"`
	UnitOfMeasurement *string             `json:"unit_of_measurement"`
	Rate              *float64            `json:"rate"`
	GSTRate           *float64            `json:"gst_rate"`
	CessRate          *float64            `json:"cess_rate"`
	IsActive          *bool               `json:"is_active"`
}

// ProductService defines the product catalogue contract.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo   port.ProductRepository
	lookup *hsn.Lookup
}

// NewProductService creates a new ProductService. lookup may be nil.
func NewProductService(repo port.ProductRepository, lookup *hsn.Lookup) ProductService {
	return &productService{repo: repo, lookup: lookup}
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		ID:                uuid.New(),
		ProductCode:       strings.TrimSpace(input.ProductCode),
		ProductName:       strings.TrimSpace(input.ProductName),
		Description:       input.Description,
		HSNSACCode:        input.HSNSACCode,
		ProductType:       input.ProductType,
		UnitOfMeasurement: input.UnitOfMeasurement,
		Rate:              input.Rate,
		GSTRate:           input.GSTRate,
		CessRate:          input.CessRate,
		IsActive:          true,
	}
	if err := s.normalize(product); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// normalize validates the classification code against the product type
// and the GST rate against the rate set. A rate that disagrees with the
// HSN master is accepted but logged, since the master lists only the
// common rates per heading.
func (s *productService) normalize(p *domain.Product) error {
	if p.ProductType == "" {
		p.ProductType = domain.ProductTypeGoods
	}
	if !p.ProductType.Valid() {
		return domain.ErrInvalidProductType
	}
	if p.UnitOfMeasurement == "" {
		p.UnitOfMeasurement = "NOS"
	}

	result := gst.ValidateHSNSACForSupply(p.HSNSACCode, p.ProductType.SupplyType())
	if !result.IsValid {
		return fmt.Errorf("%w: %s", domain.ErrInvalidHSNSAC, result.Error)
	}
	if p.ProductType == domain.ProductTypeServices && result.Type != gst.CodeSAC {
		return fmt.Errorf("%w: services must use a 6-digit SAC starting with 99", domain.ErrInvalidHSNSAC)
	}
	p.HSNSACCode = result.Code

	if !gst.IsValidRate(p.GSTRate) {
		return domain.ErrInvalidGSTRate
	}
	if p.Rate < 0 || p.CessRate < 0 {
		return domain.ErrInvalidProductRate
	}

	if s.lookup.Exists(p.HSNSACCode) {
		if ok, rates := s.lookup.RateMatches(p.HSNSACCode, p.GSTRate); !ok {
			log.Warn().
				Str("product_code", p.ProductCode).
				Str("hsn_sac_code", p.HSNSACCode).
				Float64("gst_rate", p.GSTRate).
				Int("master_rates", len(rates)).
				Msg("productService.normalize: gst rate differs from HSN master")
		}
	}
	return nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context, offset, limit int) ([]domain.Product, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *productService) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		products, _, err := s.repo.List(ctx, 0, limit)
		return products, err
	}
	return s.repo.Search(ctx, query, limit)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ProductCode != nil {
		product.ProductCode = strings.TrimSpace(*input.ProductCode)
	}
	if input.ProductName != nil {
		product.ProductName = strings.TrimSpace(*input.ProductName)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.HSNSACCode != nil {
		product.HSNSACCode = *input.HSNSACCode
	}
	if input.ProductType != nil {
		product.ProductType = *input.ProductType
	}
	if input.UnitOfMeasurement != nil {
		product.UnitOfMeasurement = *input.UnitOfMeasurement
	}
	if input.Rate != nil {
		product.Rate = *input.Rate
	}
	if input.GSTRate != nil {
		product.GSTRate = *input.GSTRate
	}
	if input.CessRate != nil {
		product.CessRate = *input.CessRate
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.normalize(product); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
