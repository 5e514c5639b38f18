package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washpos/backend/internal/domain/checkout"
	"github.com/washpos/backend/internal/domain/shared"
)

// Status is the order lifecycle state
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusReturned  Status = "returned"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving to target.
// Cancelled and returned are terminal.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusCompleted || target == StatusCancelled || target == StatusReturned
	case StatusCompleted:
		return target == StatusReturned
	default:
		return false
	}
}

// PaymentMethod is how an order was settled
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentBoth   PaymentMethod = "both"
	PaymentCOD    PaymentMethod = "cod"
	PaymentCredit PaymentMethod = "credit"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentBoth, PaymentCOD, PaymentCredit:
		return true
	}
	return false
}

// DeliveryStatus tracks cash-on-delivery fulfilment
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryDelivered DeliveryStatus = "delivered"
)

// CODPaymentStatus tracks whether a cash-on-delivery order has been paid
type CODPaymentStatus string

const (
	CODUnpaid CODPaymentStatus = "unpaid"
	CODPaid   CODPaymentStatus = "paid"
)

// Payment captures how the order total was settled. For the "both" method
// the cash and card amounts must sum to the order total.
type Payment struct {
	Method     PaymentMethod
	CashAmount decimal.Decimal
	CardAmount decimal.Decimal
	Delivery   DeliveryStatus
	CODPayment CODPaymentStatus
}

// Item is one priced line on an order. UnitRate, DiscountPercent and
// Subtotal are snapshots taken at checkout; later rate changes on the
// product never affect a saved order.
type Item struct {
	shared.BaseEntity
	OrderID         uuid.UUID
	ItemNumber      string
	ProductID       uuid.UUID
	ProductName     string
	ServiceTier     string
	Quantity        int64
	UnitRate        decimal.Decimal
	DiscountPercent decimal.Decimal
	Subtotal        decimal.Decimal
}

// Order is a settled laundry sale. Totals are derived once at creation and
// stored; they are not recomputed on read.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber   string
	CustomerID    *uuid.UUID
	CustomerName  string
	Items         []Item
	Subtotal      decimal.Decimal
	DiscountType  checkout.DiscountType
	DiscountValue decimal.Decimal
	Discount      decimal.Decimal
	TaxRate       decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Payment       Payment
	Status        Status
	Notes         string
	PlacedAt      time.Time
}

// NewOrder assembles an order from pre-minted numbers, priced lines and a
// computed breakdown. Payment consistency is validated here so no order is
// ever persisted with a broken split.
func NewOrder(orderNumber string, customerID *uuid.UUID, customerName string, items []Item, discount checkout.CartDiscount, taxRate decimal.Decimal, totals checkout.Totals, payment Payment) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	if err := validatePayment(payment, totals.Total); err != nil {
		return nil, err
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerID:        customerID,
		CustomerName:      customerName,
		Items:             items,
		Subtotal:          totals.Subtotal,
		DiscountType:      discount.Type,
		DiscountValue:     discount.Value,
		Discount:          totals.Discount,
		TaxRate:           taxRate,
		Tax:               totals.Tax,
		Total:             totals.Total,
		Payment:           normalizePayment(payment),
		Status:            StatusPending,
		PlacedAt:          time.Now(),
	}
	for i := range o.Items {
		o.Items[i].OrderID = o.GetID()
	}
	return o, nil
}

func validatePayment(p Payment, total decimal.Decimal) error {
	if !p.Method.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method: "+string(p.Method))
	}
	if p.CashAmount.IsNegative() || p.CardAmount.IsNegative() {
		return shared.NewDomainError("INVALID_PAYMENT", "Payment amounts cannot be negative")
	}
	if p.Method == PaymentBoth && !p.CashAmount.Add(p.CardAmount).Equal(total) {
		return shared.NewDomainError("PAYMENT_SPLIT_MISMATCH", "Cash and card amounts must sum to the order total")
	}
	return nil
}

func normalizePayment(p Payment) Payment {
	if p.Method == PaymentCOD {
		if p.Delivery == "" {
			p.Delivery = DeliveryPending
		}
		if p.CODPayment == "" {
			p.CODPayment = CODUnpaid
		}
	} else {
		p.Delivery = ""
		p.CODPayment = ""
	}
	return p
}

// Complete marks a pending order as picked up and paid
func (o *Order) Complete() error {
	if !o.Status.CanTransitionTo(StatusCompleted) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Cannot complete an order in status "+string(o.Status))
	}
	o.Status = StatusCompleted
	o.IncrementVersion()
	return nil
}

// Cancel voids a pending order
func (o *Order) Cancel() error {
	if !o.Status.CanTransitionTo(StatusCancelled) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Cannot cancel an order in status "+string(o.Status))
	}
	o.Status = StatusCancelled
	o.IncrementVersion()
	return nil
}

// MarkReturned records that all items on the order have been returned
func (o *Order) MarkReturned() error {
	if !o.Status.CanTransitionTo(StatusReturned) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Cannot return an order in status "+string(o.Status))
	}
	o.Status = StatusReturned
	o.IncrementVersion()
	return nil
}

// MarkDelivered flips the delivery sub-status of a cash-on-delivery order
func (o *Order) MarkDelivered() error {
	if o.Payment.Method != PaymentCOD {
		return shared.NewDomainError("NOT_COD_ORDER", "Only cash-on-delivery orders have a delivery status")
	}
	o.Payment.Delivery = DeliveryDelivered
	o.IncrementVersion()
	return nil
}

// MarkCODPaid records that a cash-on-delivery order has been settled
func (o *Order) MarkCODPaid() error {
	if o.Payment.Method != PaymentCOD {
		return shared.NewDomainError("NOT_COD_ORDER", "Only cash-on-delivery orders have a payment sub-status")
	}
	o.Payment.CODPayment = CODPaid
	o.IncrementVersion()
	return nil
}

// IsReturnable reports whether a return may be opened against this order
func (o *Order) IsReturnable() bool {
	return o.Status == StatusPending || o.Status == StatusCompleted
}

// ItemByNumber finds a line by its ITM number
func (o *Order) ItemByNumber(itemNumber string) (*Item, bool) {
	for i := range o.Items {
		if o.Items[i].ItemNumber == itemNumber {
			return &o.Items[i], true
		}
	}
	return nil, false
}

// ItemByProduct finds the line that sold the given product
func (o *Order) ItemByProduct(productID uuid.UUID) (*Item, bool) {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return &o.Items[i], true
		}
	}
	return nil, false
}
