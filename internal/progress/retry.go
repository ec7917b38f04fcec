package progress

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig controls the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig is the store contract's stance on transient failures:
// up to three attempts with exponential backoff.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 200 * time.Millisecond,
		MaxWait:     2 * time.Second,
		Multiplier:  2.0,
	}
}

// retryStore is a decorator that retries transient store errors with
// exponential backoff and jitter.
type retryStore struct {
	inner  Store
	config RetryConfig
}

// WithRetry wraps a Store with retry logic. Not-found results and context
// cancellation pass through untouched; exhausting the attempts surfaces an
// UnavailableError wrapping the last failure.
func WithRetry(s Store, cfg RetryConfig) Store {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryStore{inner: s, config: cfg}
}

func (r *retryStore) Get(ctx context.Context, userID string) (*UserProgress, error) {
	var doc *UserProgress
	err := r.do(ctx, "get", func() error {
		var err error
		doc, err = r.inner.Get(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *retryStore) Set(ctx context.Context, userID string, fields map[string]any) error {
	return r.do(ctx, "set", func() error {
		return r.inner.Set(ctx, userID, fields)
	})
}

func (r *retryStore) AppendToSet(ctx context.Context, userID, field string, members ...string) error {
	return r.do(ctx, "append", func() error {
		return r.inner.AppendToSet(ctx, userID, field, members...)
	})
}

func (r *retryStore) Increment(ctx context.Context, userID, field string, delta int) error {
	return r.do(ctx, "increment", func() error {
		return r.inner.Increment(ctx, userID, field, delta)
	})
}

func (r *retryStore) do(ctx context.Context, op string, fn func() error) error {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return err
		}

		// Last attempt: no sleep, just report exhaustion.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}

	return &UnavailableError{Op: op, Attempts: r.config.MaxAttempts, Err: lastErr}
}

// shouldRetry determines if a store error is transient.
func shouldRetry(err error) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// A missing document is an answer, not a failure.
	if errors.Is(err, ErrNotFound) {
		return false
	}
	// Everything else (network, timeouts) is treated as transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *retryStore) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
