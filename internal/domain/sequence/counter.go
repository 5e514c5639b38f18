package sequence

import (
	"context"
	"fmt"
	"strings"

	"github.com/washpos/backend/internal/domain/shared"
)

// Well-known document number prefixes and their zero-padded widths.
const (
	PrefixOrder      = "TRX"
	PrefixCustomer   = "C"
	PrefixReturn     = "R"
	PrefixReturnItem = "RI"
	PrefixOrderItem  = "ITM"
)

// Width returns the zero-padded digit width for a known prefix.
// Unknown prefixes default to six digits.
func Width(prefix string) int {
	switch prefix {
	case PrefixCustomer:
		return 5
	default:
		return 6
	}
}

// CounterStore hands out the next value of a named monotonic counter.
// Each prefix owns an independent sequence starting at 1. Implementations
// must be safe for concurrent callers; two calls may never observe the
// same value for the same prefix.
type CounterStore interface {
	// Next atomically increments the counter for prefix and returns the
	// incremented value.
	Next(ctx context.Context, prefix string) (int64, error)
	Close() error
}

// Generator mints formatted document numbers from a CounterStore.
type Generator struct {
	store CounterStore
}

func NewGenerator(store CounterStore) *Generator {
	return &Generator{store: store}
}

// Generate returns the next number for prefix, zero-padded to digitWidth.
// A non-positive digitWidth falls back to the prefix's standard width.
// Values past the width widen naturally rather than truncate.
func (g *Generator) Generate(ctx context.Context, prefix string, digitWidth int) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", shared.NewDomainError("INVALID_PREFIX", "Counter prefix cannot be empty")
	}
	if digitWidth <= 0 {
		digitWidth = Width(prefix)
	}
	n, err := g.store.Next(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("next value for %s: %w", prefix, err)
	}
	return Format(prefix, n, digitWidth), nil
}

// Format renders a counter value as a document number
func Format(prefix string, n int64, digitWidth int) string {
	return fmt.Sprintf("%s%0*d", prefix, digitWidth, n)
}
