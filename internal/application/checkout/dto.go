package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washpos/backend/internal/domain/order"
)

type OrderItemRequest struct {
	ProductID       uuid.UUID       `json:"product_id" binding:"required"`
	ServiceTier     string          `json:"service_tier" binding:"required"`
	Quantity        int64           `json:"quantity" binding:"required,gt=0"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

type CartDiscountRequest struct {
	Type  string          `json:"type" binding:"omitempty,oneof=flat percentage"`
	Value decimal.Decimal `json:"value"`
}

type PaymentRequest struct {
	Method     string          `json:"method" binding:"required,oneof=cash card both cod credit"`
	CashAmount decimal.Decimal `json:"cash_amount"`
	CardAmount decimal.Decimal `json:"card_amount"`
}

type CreateOrderRequest struct {
	CustomerID *uuid.UUID           `json:"customer_id"`
	Items      []OrderItemRequest   `json:"items" binding:"required,min=1,dive"`
	Discount   *CartDiscountRequest `json:"discount"`
	Payment    PaymentRequest       `json:"payment" binding:"required"`
	Notes      string               `json:"notes"`
}

type OrderItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	ItemNumber      string          `json:"item_number"`
	ProductID       uuid.UUID       `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ServiceTier     string          `json:"service_tier"`
	Quantity        int64           `json:"quantity"`
	UnitRate        decimal.Decimal `json:"unit_rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

type PaymentResponse struct {
	Method     string          `json:"method"`
	CashAmount decimal.Decimal `json:"cash_amount"`
	CardAmount decimal.Decimal `json:"card_amount"`
	Delivery   string          `json:"delivery_status,omitempty"`
	CODPayment string          `json:"cod_payment_status,omitempty"`
}

type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	OrderNumber  string              `json:"order_number"`
	CustomerID   *uuid.UUID          `json:"customer_id,omitempty"`
	CustomerName string              `json:"customer_name"`
	Items        []OrderItemResponse `json:"items"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Discount     decimal.Decimal     `json:"discount"`
	TaxRate      decimal.Decimal     `json:"tax_rate"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
	Payment      PaymentResponse     `json:"payment"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes,omitempty"`
	PlacedAt     time.Time           `json:"placed_at"`
	CreatedAt    time.Time           `json:"created_at"`
}

// BillingBreakdownResponse redisplays a saved order's total with the tax
// carved out of it rather than added on top.
type BillingBreakdownResponse struct {
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
	PreTax      decimal.Decimal `json:"pre_tax"`
	Tax         decimal.Decimal `json:"tax"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

func toOrderResponse(ord *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(ord.Items))
	for i, item := range ord.Items {
		items[i] = OrderItemResponse{
			ID:              item.GetID(),
			ItemNumber:      item.ItemNumber,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ServiceTier:     item.ServiceTier,
			Quantity:        item.Quantity,
			UnitRate:        item.UnitRate,
			DiscountPercent: item.DiscountPercent,
			Subtotal:        item.Subtotal,
		}
	}
	return &OrderResponse{
		ID:           ord.GetID(),
		OrderNumber:  ord.OrderNumber,
		CustomerID:   ord.CustomerID,
		CustomerName: ord.CustomerName,
		Items:        items,
		Subtotal:     ord.Subtotal,
		Discount:     ord.Discount,
		TaxRate:      ord.TaxRate,
		Tax:          ord.Tax,
		Total:        ord.Total,
		Payment: PaymentResponse{
			Method:     string(ord.Payment.Method),
			CashAmount: ord.Payment.CashAmount,
			CardAmount: ord.Payment.CardAmount,
			Delivery:   string(ord.Payment.Delivery),
			CODPayment: string(ord.Payment.CODPayment),
		},
		Status:    string(ord.Status),
		Notes:     ord.Notes,
		PlacedAt:  ord.PlacedAt,
		CreatedAt: ord.GetCreatedAt(),
	}
}
