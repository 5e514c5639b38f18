package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/washpos/backend/internal/domain/shared"
)

// Repository persists orders together with their items
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, ord *Order) error
	// SaveWithLock persists the order only if the stored version still
	// matches; a stale version yields shared.ErrConcurrencyConflict.
	SaveWithLock(ctx context.Context, ord *Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReturnRepository persists returns and their items
type ReturnRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Return, error)
	FindByReturnNumber(ctx context.Context, returnNumber string) (*Return, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*Return, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Return, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, ret *Return) error
	// Delete removes a return and its items. Used to compensate when a
	// later step of return processing fails.
	Delete(ctx context.Context, id uuid.UUID) error
}
