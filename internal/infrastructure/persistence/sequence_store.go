package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/washpos/backend/internal/domain/sequence"
	"github.com/washpos/backend/internal/infrastructure/retry"
)

// GormCounterStore implements sequence.CounterStore on a counters table.
// The increment runs as a single upsert so two concurrent callers can never
// read the same value.
type GormCounterStore struct {
	db     *gorm.DB
	policy retry.Policy
}

var _ sequence.CounterStore = (*GormCounterStore)(nil)

func NewGormCounterStore(db *gorm.DB, policy retry.Policy) *GormCounterStore {
	return &GormCounterStore{db: db, policy: policy}
}

// Next atomically increments the counter row for prefix and returns the new
// value, creating the row at 1 on first use. Transient failures are retried
// under the store's policy.
func (s *GormCounterStore) Next(ctx context.Context, prefix string) (int64, error) {
	var value int64
	err := s.policy.Do(ctx, func() error {
		return s.db.WithContext(ctx).Raw(`
			INSERT INTO sequence_counters (prefix, value, updated_at)
			VALUES (?, 1, NOW())
			ON CONFLICT (prefix)
			DO UPDATE SET value = sequence_counters.value + 1, updated_at = NOW()
			RETURNING value`, prefix).Scan(&value).Error
	}, nil)
	if err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", prefix, err)
	}
	return value, nil
}

func (s *GormCounterStore) Close() error { return nil }
