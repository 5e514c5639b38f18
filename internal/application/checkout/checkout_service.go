package checkout

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/washpos/backend/internal/domain/catalog"
	"github.com/washpos/backend/internal/domain/checkout"
	"github.com/washpos/backend/internal/domain/order"
	"github.com/washpos/backend/internal/domain/partner"
	"github.com/washpos/backend/internal/domain/sequence"
	"github.com/washpos/backend/internal/domain/shared"
)

// CheckoutService turns carts into priced, numbered orders. Checkout always
// applies tax on top of the discounted subtotal; BillingBreakdown offers the
// inclusive reading of an already saved total.
type CheckoutService struct {
	orderRepo    order.Repository
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	numbers      *sequence.Generator
	taxRate      decimal.Decimal
	logger       *zap.Logger
}

func NewCheckoutService(
	orderRepo order.Repository,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	numbers *sequence.Generator,
	taxRate decimal.Decimal,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		numbers:      numbers,
		taxRate:      taxRate,
		logger:       logger,
	}
}

func (s *CheckoutService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error) {
	customerName := "Walk-in"
	if req.CustomerID != nil {
		customer, err := s.customerRepo.FindByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, err
		}
		customerName = customer.Name
	}

	lines := make([]checkout.Line, len(req.Items))
	items := make([]order.Item, len(req.Items))
	for i, itemReq := range req.Items {
		tier := catalog.ServiceTier(itemReq.ServiceTier)
		if !tier.IsValid() {
			return nil, shared.NewItemError("INVALID_SERVICE_TIER", i, "Unknown service tier: "+itemReq.ServiceTier)
		}

		product, err := s.productRepo.FindByID(ctx, itemReq.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.IsActive() {
			return nil, shared.NewItemError("PRODUCT_INACTIVE", i, "Product "+product.Name+" is not available")
		}

		line := checkout.LineFromProduct(product, tier, itemReq.Quantity, itemReq.DiscountPercent)
		if err := line.Validate(); err != nil {
			if de, ok := err.(*shared.DomainError); ok {
				return nil, shared.NewItemError(de.Code, i, de.Message)
			}
			return nil, err
		}
		lines[i] = line

		itemNumber, err := s.numbers.Generate(ctx, sequence.PrefixOrderItem, sequence.Width(sequence.PrefixOrderItem))
		if err != nil {
			return nil, err
		}
		items[i] = order.Item{
			BaseEntity:      shared.NewBaseEntity(),
			ItemNumber:      itemNumber,
			ProductID:       product.GetID(),
			ProductName:     product.Name,
			ServiceTier:     string(tier),
			Quantity:        itemReq.Quantity,
			UnitRate:        line.UnitRate,
			DiscountPercent: itemReq.DiscountPercent,
			Subtotal:        line.Subtotal(),
		}
	}

	discount := checkout.NoDiscount()
	if req.Discount != nil {
		discount = checkout.CartDiscount{Type: checkout.DiscountType(req.Discount.Type), Value: req.Discount.Value}
	}

	totals, err := checkout.ComputeTotals(lines, discount, s.taxRate, checkout.TaxExclusive)
	if err != nil {
		return nil, err
	}

	orderNumber, err := s.numbers.Generate(ctx, sequence.PrefixOrder, sequence.Width(sequence.PrefixOrder))
	if err != nil {
		return nil, err
	}

	ord, err := order.NewOrder(orderNumber, req.CustomerID, customerName, items, discount, s.taxRate, totals, order.Payment{
		Method:     order.PaymentMethod(req.Payment.Method),
		CashAmount: req.Payment.CashAmount,
		CardAmount: req.Payment.CardAmount,
	})
	if err != nil {
		return nil, err
	}
	ord.Notes = req.Notes

	if err := s.orderRepo.Save(ctx, ord); err != nil {
		return nil, err
	}

	for _, item := range ord.Items {
		if err := s.adjustStock(ctx, item.ProductID, decimal.NewFromInt(item.Quantity).Neg()); err != nil {
			s.logger.Warn("stock decrement failed after order save",
				zap.String("order_number", ord.OrderNumber),
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("order created",
		zap.String("order_number", ord.OrderNumber),
		zap.String("total", ord.Total.String()))
	return toOrderResponse(ord), nil
}

// adjustStock is a no-op for products that do not track stock
func (s *CheckoutService) adjustStock(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.TrackStock {
		return nil
	}
	return s.productRepo.AdjustStock(ctx, productID, delta)
}

func (s *CheckoutService) GetOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	ord, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

func (s *CheckoutService) GetOrderByNumber(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	ord, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

func (s *CheckoutService) ListOrders(ctx context.Context, filter shared.Filter) (*shared.Paginated[*OrderResponse], error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, len(orders))
	for i, ord := range orders {
		responses[i] = toOrderResponse(ord)
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *CheckoutService) CompleteOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*order.Order).Complete)
}

func (s *CheckoutService) CancelOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, func(ord *order.Order) error {
		if err := ord.Cancel(); err != nil {
			return err
		}
		// put reserved stock back
		for _, item := range ord.Items {
			if err := s.adjustStock(ctx, item.ProductID, decimal.NewFromInt(item.Quantity)); err != nil {
				s.logger.Warn("stock restore failed on cancel",
					zap.String("order_number", ord.OrderNumber),
					zap.Error(err))
			}
		}
		return nil
	})
}

func (s *CheckoutService) MarkDelivered(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*order.Order).MarkDelivered)
}

func (s *CheckoutService) MarkCODPaid(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*order.Order).MarkCODPaid)
}

func (s *CheckoutService) transition(ctx context.Context, id uuid.UUID, fn func(*order.Order) error) (*OrderResponse, error) {
	ord, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(ord); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, ord); err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// BillingBreakdown reinterprets a saved order's grand total as tax
// inclusive: the stored total stays fixed and the tax portion is derived
// out of it.
func (s *CheckoutService) BillingBreakdown(ctx context.Context, orderNumber string) (*BillingBreakdownResponse, error) {
	ord, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	divisor := decimal.NewFromInt(1).Add(ord.TaxRate.Div(decimal.NewFromInt(100)))
	preTax := ord.Total.Div(divisor)
	return &BillingBreakdownResponse{
		OrderNumber: ord.OrderNumber,
		Total:       ord.Total,
		PreTax:      preTax,
		Tax:         ord.Total.Sub(preTax),
		TaxRate:     ord.TaxRate,
	}, nil
}
