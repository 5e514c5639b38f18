package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washpos/backend/internal/domain/catalog"
)

type CreateProductRequest struct {
	Name            string          `json:"name" binding:"required"`
	Category        string          `json:"category"`
	Barcode         string          `json:"barcode" binding:"required"`
	Description     string          `json:"description"`
	IronRate        decimal.Decimal `json:"iron_rate"`
	WashAndIronRate decimal.Decimal `json:"wash_and_iron_rate"`
	DryCleanRate    decimal.Decimal `json:"dry_clean_rate"`
	TrackStock      bool            `json:"track_stock"`
	InitialStock    decimal.Decimal `json:"initial_stock"`
}

type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type UpdateRatesRequest struct {
	IronRate        decimal.Decimal `json:"iron_rate"`
	WashAndIronRate decimal.Decimal `json:"wash_and_iron_rate"`
	DryCleanRate    decimal.Decimal `json:"dry_clean_rate"`
}

type ProductResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Barcode         string          `json:"barcode"`
	Description     string          `json:"description"`
	IronRate        decimal.Decimal `json:"iron_rate"`
	WashAndIronRate decimal.Decimal `json:"wash_and_iron_rate"`
	DryCleanRate    decimal.Decimal `json:"dry_clean_rate"`
	TrackStock      bool            `json:"track_stock"`
	Stock           decimal.Decimal `json:"stock"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func toProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:              p.GetID(),
		Name:            p.Name,
		Category:        p.Category,
		Barcode:         p.Barcode,
		Description:     p.Description,
		IronRate:        p.IronRate,
		WashAndIronRate: p.WashAndIronRate,
		DryCleanRate:    p.DryCleanRate,
		TrackStock:      p.TrackStock,
		Stock:           p.Stock,
		Status:          string(p.Status),
		CreatedAt:       p.GetCreatedAt(),
		UpdatedAt:       p.GetUpdatedAt(),
	}
}
