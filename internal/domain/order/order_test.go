package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washpos/backend/internal/domain/checkout"
	"github.com/washpos/backend/internal/domain/shared"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testItem(number string, quantity int64, rate string) Item {
	unitRate := dec(rate)
	return Item{
		BaseEntity:  shared.NewBaseEntity(),
		ItemNumber:  number,
		ProductName: "Shirt",
		ServiceTier: "iron",
		Quantity:    quantity,
		UnitRate:    unitRate,
		Subtotal:    unitRate.Mul(decimal.NewFromInt(quantity)),
	}
}

func testTotals(items []Item) checkout.Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	return checkout.Totals{Subtotal: subtotal, Total: subtotal}
}

func testOrder(t *testing.T, payment Payment) *Order {
	t.Helper()
	items := []Item{testItem("ITM000001", 2, "5.00")}
	ord, err := NewOrder("TRX000001", nil, "Walk-in", items, checkout.NoDiscount(), decimal.Zero, testTotals(items), payment)
	require.NoError(t, err)
	return ord
}

func TestNewOrder(t *testing.T) {
	cash := Payment{Method: PaymentCash}

	t.Run("creates pending order with stamped items", func(t *testing.T) {
		ord := testOrder(t, cash)

		assert.Equal(t, StatusPending, ord.Status)
		assert.Equal(t, "TRX000001", ord.OrderNumber)
		require.Len(t, ord.Items, 1)
		assert.Equal(t, ord.GetID(), ord.Items[0].OrderID)
		assert.True(t, dec("10").Equal(ord.Total))
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		items := []Item{testItem("ITM000001", 1, "5.00")}
		_, err := NewOrder("", nil, "", items, checkout.NoDiscount(), decimal.Zero, testTotals(items), cash)
		assert.Error(t, err)
	})

	t.Run("rejects order without items", func(t *testing.T) {
		_, err := NewOrder("TRX000001", nil, "", nil, checkout.NoDiscount(), decimal.Zero, checkout.Totals{}, cash)
		assert.Error(t, err)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		items := []Item{testItem("ITM000001", 1, "5.00")}
		_, err := NewOrder("TRX000001", nil, "", items, checkout.NoDiscount(), decimal.Zero, testTotals(items), Payment{Method: PaymentMethod("barter")})
		assert.Error(t, err)
	})
}

func TestNewOrder_SplitPayment(t *testing.T) {
	items := []Item{testItem("ITM000001", 2, "5.00")}
	totals := testTotals(items)

	t.Run("accepts split summing to total", func(t *testing.T) {
		payment := Payment{Method: PaymentBoth, CashAmount: dec("4"), CardAmount: dec("6")}
		ord, err := NewOrder("TRX000001", nil, "", items, checkout.NoDiscount(), decimal.Zero, totals, payment)
		require.NoError(t, err)
		assert.True(t, dec("4").Equal(ord.Payment.CashAmount))
	})

	t.Run("rejects split not summing to total", func(t *testing.T) {
		payment := Payment{Method: PaymentBoth, CashAmount: dec("4"), CardAmount: dec("5")}
		_, err := NewOrder("TRX000001", nil, "", items, checkout.NoDiscount(), decimal.Zero, totals, payment)
		assert.Error(t, err)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		payment := Payment{Method: PaymentBoth, CashAmount: dec("-1"), CardAmount: dec("11")}
		_, err := NewOrder("TRX000001", nil, "", items, checkout.NoDiscount(), decimal.Zero, totals, payment)
		assert.Error(t, err)
	})
}

func TestNewOrder_COD(t *testing.T) {
	t.Run("defaults delivery and payment sub-status", func(t *testing.T) {
		ord := testOrder(t, Payment{Method: PaymentCOD})
		assert.Equal(t, DeliveryPending, ord.Payment.Delivery)
		assert.Equal(t, CODUnpaid, ord.Payment.CODPayment)
	})

	t.Run("clears sub-statuses for non COD methods", func(t *testing.T) {
		ord := testOrder(t, Payment{Method: PaymentCard, Delivery: DeliveryPending})
		assert.Empty(t, ord.Payment.Delivery)
	})

	t.Run("marks delivered and paid", func(t *testing.T) {
		ord := testOrder(t, Payment{Method: PaymentCOD})
		require.NoError(t, ord.MarkDelivered())
		require.NoError(t, ord.MarkCODPaid())
		assert.Equal(t, DeliveryDelivered, ord.Payment.Delivery)
		assert.Equal(t, CODPaid, ord.Payment.CODPayment)
	})

	t.Run("rejects delivery updates on cash orders", func(t *testing.T) {
		ord := testOrder(t, Payment{Method: PaymentCash})
		assert.Error(t, ord.MarkDelivered())
	})
}

func TestOrder_StatusTransitions(t *testing.T) {
	cash := Payment{Method: PaymentCash}

	t.Run("pending completes", func(t *testing.T) {
		ord := testOrder(t, cash)
		require.NoError(t, ord.Complete())
		assert.Equal(t, StatusCompleted, ord.Status)
	})

	t.Run("completed can be returned", func(t *testing.T) {
		ord := testOrder(t, cash)
		require.NoError(t, ord.Complete())
		require.NoError(t, ord.MarkReturned())
		assert.Equal(t, StatusReturned, ord.Status)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		ord := testOrder(t, cash)
		require.NoError(t, ord.Cancel())
		assert.Error(t, ord.Complete())
		assert.Error(t, ord.MarkReturned())
	})

	t.Run("returned orders are not returnable again", func(t *testing.T) {
		ord := testOrder(t, cash)
		require.NoError(t, ord.MarkReturned())
		assert.False(t, ord.IsReturnable())
	})
}
