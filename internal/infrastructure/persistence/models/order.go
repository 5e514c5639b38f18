package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washpos/backend/internal/domain/checkout"
	"github.com/washpos/backend/internal/domain/order"
)

// OrderModel is the persistence model for the Order aggregate root
type OrderModel struct {
	AggregateModel
	OrderNumber   string                 `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerID    *uuid.UUID             `gorm:"type:uuid;index"`
	CustomerName  string                 `gorm:"type:varchar(200);not null"`
	Items         []OrderItemModel       `gorm:"foreignKey:OrderID;references:ID"`
	Subtotal      decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountType  string                 `gorm:"type:varchar(20)"`
	DiscountValue decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	Discount      decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	TaxRate       decimal.Decimal        `gorm:"type:decimal(8,4);not null;default:0"`
	Tax           decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	Total         decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod order.PaymentMethod    `gorm:"type:varchar(20);not null"`
	CashAmount    decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	CardAmount    decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	Delivery      order.DeliveryStatus   `gorm:"type:varchar(20)"`
	CODPayment    order.CODPaymentStatus `gorm:"type:varchar(20)"`
	Status        order.Status           `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes         string                 `gorm:"type:text"`
	PlacedAt      time.Time              `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *order.Order {
	ord := &order.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		CustomerID:        m.CustomerID,
		CustomerName:      m.CustomerName,
		Subtotal:          m.Subtotal,
		DiscountType:      checkout.DiscountType(m.DiscountType),
		DiscountValue:     m.DiscountValue,
		Discount:          m.Discount,
		TaxRate:           m.TaxRate,
		Tax:               m.Tax,
		Total:             m.Total,
		Payment: order.Payment{
			Method:     m.PaymentMethod,
			CashAmount: m.CashAmount,
			CardAmount: m.CardAmount,
			Delivery:   m.Delivery,
			CODPayment: m.CODPayment,
		},
		Status:   m.Status,
		Notes:    m.Notes,
		PlacedAt: m.PlacedAt,
		Items:    make([]order.Item, len(m.Items)),
	}
	for i, item := range m.Items {
		ord.Items[i] = *item.ToDomainItem()
	}
	return ord
}

// FromDomain populates the persistence model from a domain Order
func (m *OrderModel) FromDomain(ord *order.Order) {
	m.FromDomainAggregateRoot(ord.BaseAggregateRoot)
	m.OrderNumber = ord.OrderNumber
	m.CustomerID = ord.CustomerID
	m.CustomerName = ord.CustomerName
	m.Subtotal = ord.Subtotal
	m.DiscountType = string(ord.DiscountType)
	m.DiscountValue = ord.DiscountValue
	m.Discount = ord.Discount
	m.TaxRate = ord.TaxRate
	m.Tax = ord.Tax
	m.Total = ord.Total
	m.PaymentMethod = ord.Payment.Method
	m.CashAmount = ord.Payment.CashAmount
	m.CardAmount = ord.Payment.CardAmount
	m.Delivery = ord.Payment.Delivery
	m.CODPayment = ord.Payment.CODPayment
	m.Status = ord.Status
	m.Notes = ord.Notes
	m.PlacedAt = ord.PlacedAt
	m.Items = make([]OrderItemModel, len(ord.Items))
	for i, item := range ord.Items {
		m.Items[i] = *OrderItemModelFromDomain(&item)
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order
func OrderModelFromDomain(ord *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(ord)
	return m
}

// OrderItemModel is the persistence model for an order line
type OrderItemModel struct {
	BaseModel
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemNumber      string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName     string          `gorm:"type:varchar(200);not null"`
	ServiceTier     string          `gorm:"type:varchar(20);not null"`
	Quantity        int64           `gorm:"not null"`
	UnitRate        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomainItem converts the persistence model to a domain order Item
func (m *OrderItemModel) ToDomainItem() *order.Item {
	return &order.Item{
		BaseEntity:      m.ToDomain(),
		OrderID:         m.OrderID,
		ItemNumber:      m.ItemNumber,
		ProductID:       m.ProductID,
		ProductName:     m.ProductName,
		ServiceTier:     m.ServiceTier,
		Quantity:        m.Quantity,
		UnitRate:        m.UnitRate,
		DiscountPercent: m.DiscountPercent,
		Subtotal:        m.Subtotal,
	}
}

// OrderItemModelFromDomain creates a new persistence model from a domain order Item
func OrderItemModelFromDomain(item *order.Item) *OrderItemModel {
	m := &OrderItemModel{}
	m.FromDomainBaseEntity(item.BaseEntity)
	m.OrderID = item.OrderID
	m.ItemNumber = item.ItemNumber
	m.ProductID = item.ProductID
	m.ProductName = item.ProductName
	m.ServiceTier = item.ServiceTier
	m.Quantity = item.Quantity
	m.UnitRate = item.UnitRate
	m.DiscountPercent = item.DiscountPercent
	m.Subtotal = item.Subtotal
	return m
}

// ReturnModel is the persistence model for the Return aggregate root
type ReturnModel struct {
	AggregateModel
	ReturnNumber   string            `gorm:"type:varchar(20);not null;uniqueIndex"`
	OrderID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrderNumber    string            `gorm:"type:varchar(20);not null;index"`
	Items          []ReturnItemModel `gorm:"foreignKey:ReturnID;references:ID"`
	TotalRefund    decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	Complete       bool              `gorm:"not null;default:false"`
	Reason         string            `gorm:"type:varchar(500)"`
	IdempotencyKey string            `gorm:"type:varchar(100);index"`
	ProcessedAt    time.Time         `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReturnModel) TableName() string {
	return "order_returns"
}

// ToDomain converts the persistence model to a domain Return
func (m *ReturnModel) ToDomain() *order.Return {
	ret := &order.Return{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ReturnNumber:      m.ReturnNumber,
		OrderID:           m.OrderID,
		OrderNumber:       m.OrderNumber,
		TotalRefund:       m.TotalRefund,
		Complete:          m.Complete,
		Reason:            m.Reason,
		IdempotencyKey:    m.IdempotencyKey,
		ProcessedAt:       m.ProcessedAt,
		Items:             make([]order.ReturnItem, len(m.Items)),
	}
	for i, item := range m.Items {
		ret.Items[i] = *item.ToDomainItem()
	}
	return ret
}

// FromDomain populates the persistence model from a domain Return
func (m *ReturnModel) FromDomain(ret *order.Return) {
	m.FromDomainAggregateRoot(ret.BaseAggregateRoot)
	m.ReturnNumber = ret.ReturnNumber
	m.OrderID = ret.OrderID
	m.OrderNumber = ret.OrderNumber
	m.TotalRefund = ret.TotalRefund
	m.Complete = ret.Complete
	m.Reason = ret.Reason
	m.IdempotencyKey = ret.IdempotencyKey
	m.ProcessedAt = ret.ProcessedAt
	m.Items = make([]ReturnItemModel, len(ret.Items))
	for i, item := range ret.Items {
		m.Items[i] = *ReturnItemModelFromDomain(&item)
	}
}

// ReturnModelFromDomain creates a new persistence model from a domain Return
func ReturnModelFromDomain(ret *order.Return) *ReturnModel {
	m := &ReturnModel{}
	m.FromDomain(ret)
	return m
}

// ReturnItemModel is the persistence model for a returned line
type ReturnItemModel struct {
	BaseModel
	ReturnID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReturnItemNumber string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	OrderItemID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderItemNumber  string          `gorm:"type:varchar(20);not null"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName      string          `gorm:"type:varchar(200);not null"`
	ServiceTier      string          `gorm:"type:varchar(20);not null"`
	OriginalQuantity int64           `gorm:"not null"`
	ReturnQuantity   int64           `gorm:"not null"`
	UnitRate         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DiscountPercent  decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	RefundAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (ReturnItemModel) TableName() string {
	return "order_return_items"
}

// ToDomainItem converts the persistence model to a domain ReturnItem
func (m *ReturnItemModel) ToDomainItem() *order.ReturnItem {
	return &order.ReturnItem{
		BaseEntity:       m.ToDomain(),
		ReturnID:         m.ReturnID,
		ReturnItemNumber: m.ReturnItemNumber,
		OrderItemID:      m.OrderItemID,
		OrderItemNumber:  m.OrderItemNumber,
		ProductID:        m.ProductID,
		ProductName:      m.ProductName,
		ServiceTier:      m.ServiceTier,
		OriginalQuantity: m.OriginalQuantity,
		ReturnQuantity:   m.ReturnQuantity,
		UnitRate:         m.UnitRate,
		DiscountPercent:  m.DiscountPercent,
		RefundAmount:     m.RefundAmount,
	}
}

// ReturnItemModelFromDomain creates a new persistence model from a domain ReturnItem
func ReturnItemModelFromDomain(item *order.ReturnItem) *ReturnItemModel {
	m := &ReturnItemModel{}
	m.FromDomainBaseEntity(item.BaseEntity)
	m.ReturnID = item.ReturnID
	m.ReturnItemNumber = item.ReturnItemNumber
	m.OrderItemID = item.OrderItemID
	m.OrderItemNumber = item.OrderItemNumber
	m.ProductID = item.ProductID
	m.ProductName = item.ProductName
	m.ServiceTier = item.ServiceTier
	m.OriginalQuantity = item.OriginalQuantity
	m.ReturnQuantity = item.ReturnQuantity
	m.UnitRate = item.UnitRate
	m.DiscountPercent = item.DiscountPercent
	m.RefundAmount = item.RefundAmount
	return m
}
