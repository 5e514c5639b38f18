package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washpos/backend/internal/domain/shared"
)

// ReturnItem is one returned line. Its refund mirrors the original line's
// effective pricing: quantity times the unit rate net of the original line
// discount. Current catalog rates are never consulted.
type ReturnItem struct {
	shared.BaseEntity
	ReturnID         uuid.UUID
	ReturnItemNumber string
	OrderItemID      uuid.UUID
	OrderItemNumber  string
	ProductID        uuid.UUID
	ProductName      string
	ServiceTier      string
	OriginalQuantity int64
	ReturnQuantity   int64
	UnitRate         decimal.Decimal
	DiscountPercent  decimal.Decimal
	RefundAmount     decimal.Decimal
}

// NewReturnItem prices a returned line against the original order line
func NewReturnItem(returnItemNumber string, original Item, returnQuantity int64) (*ReturnItem, error) {
	if returnQuantity <= 0 {
		return nil, shared.NewDomainError("INVALID_RETURN_QUANTITY", "Return quantity must be positive")
	}
	if returnQuantity > original.Quantity {
		return nil, shared.NewDomainError("RETURN_QUANTITY_EXCEEDED", "Return quantity cannot exceed the original quantity")
	}

	gross := original.UnitRate.Mul(decimal.NewFromInt(returnQuantity))
	refund := gross
	if !original.DiscountPercent.IsZero() {
		factor := decimal.NewFromInt(1).Sub(original.DiscountPercent.Div(decimal.NewFromInt(100)))
		refund = gross.Mul(factor)
	}

	return &ReturnItem{
		BaseEntity:       shared.NewBaseEntity(),
		ReturnItemNumber: returnItemNumber,
		OrderItemID:      original.GetID(),
		OrderItemNumber:  original.ItemNumber,
		ProductID:        original.ProductID,
		ProductName:      original.ProductName,
		ServiceTier:      original.ServiceTier,
		OriginalQuantity: original.Quantity,
		ReturnQuantity:   returnQuantity,
		UnitRate:         original.UnitRate,
		DiscountPercent:  original.DiscountPercent,
		RefundAmount:     refund,
	}, nil
}

// Return records returned items against one order and the refund owed.
// Complete means every line of the order came back in full. Processing a
// return of either kind flips the parent order to returned, so an order
// can go through this path once.
type Return struct {
	shared.BaseAggregateRoot
	ReturnNumber   string
	OrderID        uuid.UUID
	OrderNumber    string
	Items          []ReturnItem
	TotalRefund    decimal.Decimal
	Complete       bool
	Reason         string
	IdempotencyKey string
	ProcessedAt    time.Time
}

// ReturnLine pairs a resolved order line with the quantity brought back
type ReturnLine struct {
	Original *Item
	Quantity int64
}

// NewReturn builds a return against ord from already-resolved lines. Every
// line is validated before any document number is minted, so a rejected
// request leaves the counters untouched. The return is complete when each
// line of the order is returned at its full original quantity.
func NewReturn(ord *Order, lines []ReturnLine, mintReturnNumber, mintItemNumber func() (string, error), reason, idempotencyKey string) (*Return, error) {
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_RETURN", "Return must contain at least one item")
	}
	if !ord.IsReturnable() {
		return nil, shared.NewDomainError("ORDER_NOT_RETURNABLE", "Order in status "+string(ord.Status)+" cannot be returned")
	}

	returned := make(map[string]int64, len(lines))
	for i, line := range lines {
		if line.Original == nil {
			return nil, shared.NewItemError("ITEM_NOT_ON_ORDER", i, "Item does not belong to order "+ord.OrderNumber)
		}
		if _, dup := returned[line.Original.ItemNumber]; dup {
			return nil, shared.NewItemError("DUPLICATE_RETURN_ITEM", i, "Item "+line.Original.ItemNumber+" listed more than once")
		}
		if line.Quantity <= 0 {
			return nil, shared.NewItemError("INVALID_RETURN_QUANTITY", i, "Return quantity must be positive")
		}
		if line.Quantity > line.Original.Quantity {
			return nil, shared.NewItemError("RETURN_QUANTITY_EXCEEDED", i, "Return quantity cannot exceed the original quantity")
		}
		returned[line.Original.ItemNumber] = line.Quantity
	}

	returnNumber, err := mintReturnNumber()
	if err != nil {
		return nil, err
	}
	ret := &Return{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ReturnNumber:      returnNumber,
		OrderID:           ord.GetID(),
		OrderNumber:       ord.OrderNumber,
		Reason:            reason,
		IdempotencyKey:    idempotencyKey,
		ProcessedAt:       time.Now(),
	}

	totalRefund := decimal.Zero
	for i, line := range lines {
		returnItemNumber, err := mintItemNumber()
		if err != nil {
			return nil, err
		}
		item, err := NewReturnItem(returnItemNumber, *line.Original, line.Quantity)
		if err != nil {
			if de, ok := err.(*shared.DomainError); ok {
				return nil, shared.NewItemError(de.Code, i, de.Message)
			}
			return nil, err
		}
		item.ReturnID = ret.GetID()
		ret.Items = append(ret.Items, *item)
		totalRefund = totalRefund.Add(item.RefundAmount)
	}

	ret.TotalRefund = totalRefund
	ret.Complete = coversOrderInFull(ord, returned)
	return ret, nil
}

// coversOrderInFull reports whether every line of the order, zero-rate lines
// included, was returned at its original quantity.
func coversOrderInFull(ord *Order, returned map[string]int64) bool {
	for _, item := range ord.Items {
		if returned[item.ItemNumber] != item.Quantity {
			return false
		}
	}
	return true
}
