package retry

import (
	"context"
	"time"
)

// Policy controls how an operation is retried. Delay grows by Multiplier
// after each failed attempt.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

// DefaultPolicy suits short database contention: five attempts with
// exponential backoff starting at 50ms.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 5,
		BaseDelay:   50 * time.Millisecond,
		Multiplier:  2,
	}
}

// Do runs op until it succeeds, attempts are exhausted, or ctx is done.
// retryable decides whether a given error is worth another attempt; a nil
// retryable retries every error.
func (p Policy) Do(ctx context.Context, op func() error, retryable func(error) bool) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	delay := p.BaseDelay
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = time.Duration(float64(delay) * p.Multiplier)
	}
	return err
}
