package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washpos/backend/internal/domain/order"
)

// ReturnItemRequest addresses one order line by product. ProductRef is the
// product's UUID, falling back to a barcode lookup when it does not parse
// as one.
type ReturnItemRequest struct {
	ProductRef string `json:"product_ref" binding:"required"`
	Quantity   int64  `json:"quantity" binding:"required,gt=0"`
}

type ProcessReturnRequest struct {
	OrderNumber    string              `json:"order_number" binding:"required"`
	Items          []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
	Reason         string              `json:"reason"`
	IdempotencyKey string              `json:"idempotency_key" binding:"required"`
}

type ReturnItemResponse struct {
	ReturnItemNumber string          `json:"return_item_number"`
	OrderItemNumber  string          `json:"order_item_number"`
	ProductName      string          `json:"product_name"`
	ServiceTier      string          `json:"service_tier"`
	OriginalQuantity int64           `json:"original_quantity"`
	ReturnQuantity   int64           `json:"return_quantity"`
	UnitRate         decimal.Decimal `json:"unit_rate"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	RefundAmount     decimal.Decimal `json:"refund_amount"`
}

type ReturnResponse struct {
	ID           uuid.UUID            `json:"id"`
	ReturnNumber string               `json:"return_number"`
	OrderNumber  string               `json:"order_number"`
	Items        []ReturnItemResponse `json:"items"`
	TotalRefund  decimal.Decimal      `json:"total_refund"`
	Complete     bool                 `json:"complete"`
	Reason       string               `json:"reason,omitempty"`
	ProcessedAt  time.Time            `json:"processed_at"`
}

func toReturnResponse(ret *order.Return) *ReturnResponse {
	items := make([]ReturnItemResponse, len(ret.Items))
	for i, item := range ret.Items {
		items[i] = ReturnItemResponse{
			ReturnItemNumber: item.ReturnItemNumber,
			OrderItemNumber:  item.OrderItemNumber,
			ProductName:      item.ProductName,
			ServiceTier:      item.ServiceTier,
			OriginalQuantity: item.OriginalQuantity,
			ReturnQuantity:   item.ReturnQuantity,
			UnitRate:         item.UnitRate,
			DiscountPercent:  item.DiscountPercent,
			RefundAmount:     item.RefundAmount,
		}
	}
	return &ReturnResponse{
		ID:           ret.GetID(),
		ReturnNumber: ret.ReturnNumber,
		OrderNumber:  ret.OrderNumber,
		Items:        items,
		TotalRefund:  ret.TotalRefund,
		Complete:     ret.Complete,
		Reason:       ret.Reason,
		ProcessedAt:  ret.ProcessedAt,
	}
}
