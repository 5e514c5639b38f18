package models

import (
	"github.com/shopspring/decimal"

	"github.com/washpos/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for the Product aggregate root
type ProductModel struct {
	AggregateModel
	Name            string                `gorm:"type:varchar(200);not null;index"`
	Category        string                `gorm:"type:varchar(100);index"`
	Barcode         string                `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description     string                `gorm:"type:text"`
	IronRate        decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	WashAndIronRate decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	DryCleanRate    decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	TrackStock      bool                  `gorm:"not null;default:false"`
	Stock           decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Status          catalog.ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Category:          m.Category,
		Barcode:           m.Barcode,
		Description:       m.Description,
		IronRate:          m.IronRate,
		WashAndIronRate:   m.WashAndIronRate,
		DryCleanRate:      m.DryCleanRate,
		TrackStock:        m.TrackStock,
		Stock:             m.Stock,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Category = p.Category
	m.Barcode = p.Barcode
	m.Description = p.Description
	m.IronRate = p.IronRate
	m.WashAndIronRate = p.WashAndIronRate
	m.DryCleanRate = p.DryCleanRate
	m.TrackStock = p.TrackStock
	m.Stock = p.Stock
	m.Status = p.Status
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
