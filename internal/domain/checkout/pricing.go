package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/washpos/backend/internal/domain/catalog"
	"github.com/washpos/backend/internal/domain/shared"
)

// DiscountType distinguishes cart-level discount semantics
type DiscountType string

const (
	DiscountTypeFlat       DiscountType = "flat"
	DiscountTypePercentage DiscountType = "percentage"
)

// IsValid checks if the type is a known DiscountType
func (t DiscountType) IsValid() bool {
	return t == DiscountTypeFlat || t == DiscountTypePercentage
}

// CartDiscount is a single discount applied to the whole cart, either a flat
// currency amount or a percentage of the subtotal.
type CartDiscount struct {
	Type  DiscountType
	Value decimal.Decimal
}

// NoDiscount returns an empty flat discount
func NoDiscount() CartDiscount {
	return CartDiscount{Type: DiscountTypeFlat, Value: decimal.Zero}
}

// TaxConvention selects how the tax rate is applied to the discounted
// subtotal. The two conventions are never mixed within one computation.
type TaxConvention string

const (
	// TaxExclusive adds tax on top of the discounted subtotal (checkout).
	TaxExclusive TaxConvention = "exclusive"
	// TaxInclusive treats the discounted subtotal as already containing tax
	// (redisplay of a saved order's billing breakdown).
	TaxInclusive TaxConvention = "inclusive"
)

// IsValid checks if the convention is known
func (c TaxConvention) IsValid() bool {
	return c == TaxExclusive || c == TaxInclusive
}

// Line is one priced cart line: a resolved per-unit rate, a positive
// quantity, and a per-line discount percentage in [0,100].
type Line struct {
	UnitRate        decimal.Decimal
	Quantity        int64
	DiscountPercent decimal.Decimal
}

// LineFromProduct builds a Line by resolving the product's rate for the
// given service tier. A missing rate resolves to zero (see Product.RateFor).
func LineFromProduct(p *catalog.Product, tier catalog.ServiceTier, quantity int64, discountPercent decimal.Decimal) Line {
	return Line{
		UnitRate:        p.RateFor(tier),
		Quantity:        quantity,
		DiscountPercent: discountPercent,
	}
}

// Subtotal computes quantity * rate * (1 - discount/100).
// Intermediate values are not rounded.
func (l Line) Subtotal() decimal.Decimal {
	gross := l.UnitRate.Mul(decimal.NewFromInt(l.Quantity))
	if l.DiscountPercent.IsZero() {
		return gross
	}
	factor := decimal.NewFromInt(1).Sub(l.DiscountPercent.Div(decimal.NewFromInt(100)))
	return gross.Mul(factor)
}

// Validate checks a line's own invariants
func (l Line) Validate() error {
	if l.Quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if l.UnitRate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Unit rate cannot be negative")
	}
	if l.DiscountPercent.IsNegative() || l.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Line discount must be between 0 and 100 percent")
	}
	return nil
}

// Totals is the derived breakdown for a cart or order.
// All amounts are unrounded; round only at presentation time.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals derives subtotal, cart discount, tax, and grand total from a
// set of lines. The cart discount is clamped so it never exceeds the
// subtotal. Tax is applied under the given convention.
//
// The function is pure: identical inputs always produce identical outputs.
func ComputeTotals(lines []Line, discount CartDiscount, taxRatePercent decimal.Decimal, convention TaxConvention) (Totals, error) {
	if !convention.IsValid() {
		return Totals{}, shared.NewDomainError("INVALID_TAX_CONVENTION", "Unknown tax convention: "+string(convention))
	}
	if taxRatePercent.IsNegative() {
		return Totals{}, shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	}
	if discount.Value.IsNegative() {
		return Totals{}, shared.NewDomainError("INVALID_DISCOUNT", "Cart discount cannot be negative")
	}
	if discount.Type != "" && !discount.Type.IsValid() {
		return Totals{}, shared.NewDomainError("INVALID_DISCOUNT", "Unknown discount type: "+string(discount.Type))
	}

	subtotal := decimal.Zero
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			var de *shared.DomainError
			if d, ok := err.(*shared.DomainError); ok {
				de = d
			} else {
				de = shared.NewDomainError("INVALID_LINE", err.Error())
			}
			return Totals{}, shared.NewItemError(de.Code, i, de.Message)
		}
		subtotal = subtotal.Add(line.Subtotal())
	}

	discountAmount := decimal.Zero
	switch discount.Type {
	case DiscountTypePercentage:
		discountAmount = subtotal.Mul(discount.Value).Div(decimal.NewFromInt(100))
	case DiscountTypeFlat:
		discountAmount = discount.Value
	}
	if discountAmount.GreaterThan(subtotal) {
		discountAmount = subtotal
	}

	discounted := subtotal.Sub(discountAmount)

	var tax, total decimal.Decimal
	switch convention {
	case TaxExclusive:
		tax = discounted.Mul(taxRatePercent).Div(decimal.NewFromInt(100))
		total = discounted.Add(tax)
	case TaxInclusive:
		divisor := decimal.NewFromInt(1).Add(taxRatePercent.Div(decimal.NewFromInt(100)))
		preTax := discounted.Div(divisor)
		tax = discounted.Sub(preTax)
		total = discounted
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discountAmount,
		Tax:      tax,
		Total:    total,
	}, nil
}
