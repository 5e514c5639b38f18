package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/washpos/backend/internal/domain/catalog"
	"github.com/washpos/backend/internal/domain/order"
	"github.com/washpos/backend/internal/domain/sequence"
	"github.com/washpos/backend/internal/domain/shared"
)

// ReturnService reconciles returned laundry against its original order.
// Refunds always mirror the pricing captured at checkout.
type ReturnService struct {
	orderRepo   order.Repository
	returnRepo  order.ReturnRepository
	productRepo catalog.ProductRepository
	numbers     *sequence.Generator
	idempotency shared.IdempotencyStore
	idemConfig  shared.IdempotencyConfig
	logger      *zap.Logger
}

func NewReturnService(
	orderRepo order.Repository,
	returnRepo order.ReturnRepository,
	productRepo catalog.ProductRepository,
	numbers *sequence.Generator,
	idempotency shared.IdempotencyStore,
	idemConfig shared.IdempotencyConfig,
	logger *zap.Logger,
) *ReturnService {
	return &ReturnService{
		orderRepo:   orderRepo,
		returnRepo:  returnRepo,
		productRepo: productRepo,
		numbers:     numbers,
		idempotency: idempotency,
		idemConfig:  idemConfig,
		logger:      logger,
	}
}

// ProcessReturn runs the full reconciliation:
//  1. load the order and check it has not already been returned
//  2. resolve each requested product to its order line and validate the
//     quantities; nothing is written until this passes
//  3. claim the idempotency key so a retried request is rejected, not doubled
//  4. price and persist the return
//  5. restock tracked products
//  6. flip the order to returned, partial or not; a second return against
//     the same order trips the status check in step 1
//
// A failure in step 6 deletes the saved return so the books stay consistent
// with the order's status.
func (s *ReturnService) ProcessReturn(ctx context.Context, req *ProcessReturnRequest) (*ReturnResponse, error) {
	ord, err := s.orderRepo.FindByOrderNumber(ctx, req.OrderNumber)
	if err != nil {
		return nil, err
	}
	if !ord.IsReturnable() {
		if ord.Status == order.StatusReturned {
			return nil, shared.ErrAlreadyReturned
		}
		return nil, shared.NewDomainError("ORDER_NOT_RETURNABLE", "Order in status "+string(ord.Status)+" cannot be returned")
	}

	lines, err := s.resolveLines(ctx, ord, req.Items)
	if err != nil {
		return nil, err
	}

	mintReturn := func() (string, error) {
		return s.numbers.Generate(ctx, sequence.PrefixReturn, sequence.Width(sequence.PrefixReturn))
	}
	mintItem := func() (string, error) {
		return s.numbers.Generate(ctx, sequence.PrefixReturnItem, sequence.Width(sequence.PrefixReturnItem))
	}
	ret, err := order.NewReturn(ord, lines, mintReturn, mintItem, req.Reason, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	if s.idemConfig.Enabled {
		fresh, err := s.idempotency.MarkProcessed(ctx, req.IdempotencyKey, s.idemConfig.TTL)
		if err != nil {
			return nil, err
		}
		if !fresh {
			return nil, shared.NewDomainError("DUPLICATE_REQUEST", "This return has already been processed")
		}
	}

	if err := s.returnRepo.Save(ctx, ret); err != nil {
		return nil, err
	}

	for _, item := range ret.Items {
		if err := s.restock(ctx, item.ProductID, item.ReturnQuantity); err != nil {
			s.logger.Warn("restock failed during return",
				zap.String("return_number", ret.ReturnNumber),
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err))
		}
	}

	err = ord.MarkReturned()
	if err == nil {
		err = s.orderRepo.SaveWithLock(ctx, ord)
	}
	if err != nil {
		// roll the return back rather than leave a saved return against an
		// order still marked active
		if delErr := s.returnRepo.Delete(ctx, ret.GetID()); delErr != nil {
			s.logger.Error("compensating delete failed, books are inconsistent",
				zap.String("return_number", ret.ReturnNumber),
				zap.NamedError("delete_error", delErr),
				zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("return processed",
		zap.String("return_number", ret.ReturnNumber),
		zap.String("order_number", ord.OrderNumber),
		zap.String("refund", ret.TotalRefund.String()),
		zap.Bool("complete", ret.Complete))
	return toReturnResponse(ret), nil
}

// resolveLines maps each requested product reference onto the order line
// that sold it. A reference that parses as a UUID is treated as the product
// ID; anything else is looked up as a barcode.
func (s *ReturnService) resolveLines(ctx context.Context, ord *order.Order, items []ReturnItemRequest) ([]order.ReturnLine, error) {
	lines := make([]order.ReturnLine, len(items))
	for i, item := range items {
		productID, parseErr := uuid.Parse(item.ProductRef)
		if parseErr != nil {
			product, err := s.productRepo.FindByBarcode(ctx, item.ProductRef)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return nil, shared.NewItemError("PRODUCT_NOT_FOUND", i, "No product matches reference "+item.ProductRef)
				}
				return nil, err
			}
			productID = product.GetID()
		}
		original, ok := ord.ItemByProduct(productID)
		if !ok {
			return nil, shared.NewItemError("ITEM_NOT_ON_ORDER", i, "Product "+item.ProductRef+" was not sold on order "+ord.OrderNumber)
		}
		lines[i] = order.ReturnLine{Original: original, Quantity: item.Quantity}
	}
	return lines, nil
}

func (s *ReturnService) restock(ctx context.Context, productID uuid.UUID, quantity int64) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.TrackStock {
		return nil
	}
	return s.productRepo.AdjustStock(ctx, productID, decimal.NewFromInt(quantity))
}

func (s *ReturnService) GetReturn(ctx context.Context, id uuid.UUID) (*ReturnResponse, error) {
	ret, err := s.returnRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

func (s *ReturnService) GetReturnByNumber(ctx context.Context, returnNumber string) (*ReturnResponse, error) {
	ret, err := s.returnRepo.FindByReturnNumber(ctx, returnNumber)
	if err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

// ListReturnsForOrder shows the return history of one order
func (s *ReturnService) ListReturnsForOrder(ctx context.Context, orderNumber string) ([]*ReturnResponse, error) {
	ord, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	returns, err := s.returnRepo.FindByOrderID(ctx, ord.GetID())
	if err != nil {
		return nil, err
	}

	responses := make([]*ReturnResponse, len(returns))
	for i, ret := range returns {
		responses[i] = toReturnResponse(ret)
	}
	return responses, nil
}

func (s *ReturnService) ListReturns(ctx context.Context, filter shared.Filter) (*shared.Paginated[*ReturnResponse], error) {
	returns, err := s.returnRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.returnRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*ReturnResponse, len(returns))
	for i, ret := range returns {
		responses[i] = toReturnResponse(ret)
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}
