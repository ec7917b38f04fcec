package progress

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// flakyStore fails a fixed number of calls before delegating to a MemStore.
type flakyStore struct {
	inner    *MemStore
	failures int
	calls    int
	err      error
}

func newFlakyStore(failures int, err error) *flakyStore {
	if err == nil {
		err = fmt.Errorf("connection refused")
	}
	return &flakyStore{inner: NewMemStore(), failures: failures, err: err}
}

func (f *flakyStore) fail() error {
	f.calls++
	if f.calls <= f.failures {
		return f.err
	}
	return nil
}

func (f *flakyStore) Get(ctx context.Context, userID string) (*UserProgress, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.inner.Get(ctx, userID)
}

func (f *flakyStore) Set(ctx context.Context, userID string, fields map[string]any) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.inner.Set(ctx, userID, fields)
}

func (f *flakyStore) AppendToSet(ctx context.Context, userID, field string, members ...string) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.inner.AppendToSet(ctx, userID, field, members...)
}

func (f *flakyStore) Increment(ctx context.Context, userID, field string, delta int) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.inner.Increment(ctx, userID, field, delta)
}

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     2 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	flaky := newFlakyStore(2, nil)
	s := WithRetry(flaky, fastRetryConfig(3))

	err := s.Increment(context.Background(), "u", FieldXP, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flaky.calls != 3 {
		t.Errorf("got %d calls, want 3", flaky.calls)
	}

	doc, err := flaky.inner.Get(context.Background(), "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.XP != 10 {
		t.Errorf("got xp %d, want 10 (write must land exactly once)", doc.XP)
	}
}

func TestRetry_ExhaustionReturnsUnavailable(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	flaky := newFlakyStore(100, cause)
	s := WithRetry(flaky, fastRetryConfig(3))

	err := s.Set(context.Background(), "u", map[string]any{FieldXP: 1})
	if err == nil {
		t.Fatal("expected error after exhausting retries, got nil")
	}

	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("error should be *UnavailableError, got: %v", err)
	}
	if unavail.Attempts != 3 {
		t.Errorf("got %d attempts, want 3", unavail.Attempts)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error should wrap the last failure, got: %v", err)
	}
	if flaky.calls != 3 {
		t.Errorf("got %d calls, want 3", flaky.calls)
	}
}

func TestRetry_NotFoundPassesThrough(t *testing.T) {
	flaky := newFlakyStore(0, nil)
	s := WithRetry(flaky, fastRetryConfig(3))

	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got: %v", err)
	}
	if flaky.calls != 1 {
		t.Errorf("got %d calls, want 1 (not-found is never retried)", flaky.calls)
	}
}

func TestRetry_ContextCancellationStopsRetrying(t *testing.T) {
	flaky := newFlakyStore(100, nil)
	s := WithRetry(flaky, RetryConfig{
		MaxAttempts: 5,
		InitialWait: time.Hour, // would hang if the context were ignored
		MaxWait:     time.Hour,
		Multiplier:  2.0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Increment(ctx, "u", FieldXP, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got: %v", err)
	}
	if flaky.calls != 1 {
		t.Errorf("got %d calls, want 1", flaky.calls)
	}
}

func TestRetry_ContextErrorNotRetried(t *testing.T) {
	flaky := newFlakyStore(100, context.DeadlineExceeded)
	s := WithRetry(flaky, fastRetryConfig(3))

	err := s.Increment(context.Background(), "u", FieldXP, 1)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline error, got: %v", err)
	}
	if flaky.calls != 1 {
		t.Errorf("got %d calls, want 1", flaky.calls)
	}
}
