package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washpos/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Product, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByBarcode(ctx context.Context, barcode string) (bool, error)

	// AdjustStock atomically adds delta (which may be negative) to the stock
	// of a tracked product. It is a no-op for products that do not track
	// stock. Implementations must not use read-modify-write.
	AdjustStock(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) error
}
