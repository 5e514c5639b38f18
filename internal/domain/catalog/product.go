package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/washpos/backend/internal/domain/shared"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product represents a garment/item priced per service tier.
// It is the aggregate root for catalog operations.
//
// Every product carries all three service rates; the legacy single-price
// schema is not supported.
type Product struct {
	shared.BaseAggregateRoot
	Name            string
	Category        string
	Barcode         string
	Description     string
	IronRate        decimal.Decimal
	WashAndIronRate decimal.Decimal
	DryCleanRate    decimal.Decimal
	TrackStock      bool
	Stock           decimal.Decimal
	Status          ProductStatus
}

// ServiceRates bundles the three per-unit rates of a product
type ServiceRates struct {
	Iron        decimal.Decimal
	WashAndIron decimal.Decimal
	DryClean    decimal.Decimal
}

// NewProduct creates a new product with its three service rates
func NewProduct(name, category, barcode string, rates ServiceRates) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 200 characters")
	}
	if barcode == "" {
		return nil, shared.NewDomainError("INVALID_BARCODE", "Barcode cannot be empty")
	}
	if rates.Iron.IsNegative() || rates.WashAndIron.IsNegative() || rates.DryClean.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Service rates cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Category:          category,
		Barcode:           barcode,
		IronRate:          rates.Iron,
		WashAndIronRate:   rates.WashAndIron,
		DryCleanRate:      rates.DryClean,
		Stock:             decimal.Zero,
		Status:            ProductStatusActive,
	}, nil
}

// RateFor selects the per-unit rate for the given service tier.
// An unknown tier yields zero rather than an error so that cart rendering
// stays resilient; callers should report it as a data-quality defect.
func (p *Product) RateFor(tier ServiceTier) decimal.Decimal {
	switch tier {
	case ServiceTierIron:
		return p.IronRate
	case ServiceTierWashAndIron:
		return p.WashAndIronRate
	case ServiceTierDryClean:
		return p.DryCleanRate
	}
	return decimal.Zero
}

// Rates returns the product's three service rates
func (p *Product) Rates() ServiceRates {
	return ServiceRates{
		Iron:        p.IronRate,
		WashAndIron: p.WashAndIronRate,
		DryClean:    p.DryCleanRate,
	}
}

// Update updates the product's display information
func (p *Product) Update(name, category, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}

	p.Name = name
	p.Category = category
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetRates replaces the product's service rates
func (p *Product) SetRates(rates ServiceRates) error {
	if rates.Iron.IsNegative() || rates.WashAndIron.IsNegative() || rates.DryClean.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Service rates cannot be negative")
	}

	p.IronRate = rates.Iron
	p.WashAndIronRate = rates.WashAndIron
	p.DryCleanRate = rates.DryClean
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// EnableStockTracking turns on stock tracking with an initial quantity
func (p *Product) EnableStockTracking(initial decimal.Decimal) error {
	if initial.IsNegative() {
		return shared.NewDomainError("INVALID_STOCK", "Initial stock cannot be negative")
	}

	p.TrackStock = true
	p.Stock = initial
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate marks the product as inactive
func (p *Product) Deactivate() {
	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
