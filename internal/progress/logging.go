package progress

import (
	"context"
	"errors"
	"time"

	"github.com/starpathlabs/starpath/internal/logger"
)

// loggingStore is a decorator that logs every store call with its outcome.
// It sits below the retry decorator so each attempt is visible.
type loggingStore struct {
	inner Store
	log   *logger.Logger
}

// WithLogging wraps a Store with call logging.
func WithLogging(s Store, log *logger.Logger) Store {
	return &loggingStore{inner: s, log: log.With("component", "progress-store")}
}

func (l *loggingStore) Get(ctx context.Context, userID string) (*UserProgress, error) {
	start := time.Now()
	doc, err := l.inner.Get(ctx, userID)
	l.observe("get", userID, start, err)
	return doc, err
}

func (l *loggingStore) Set(ctx context.Context, userID string, fields map[string]any) error {
	start := time.Now()
	err := l.inner.Set(ctx, userID, fields)
	l.observe("set", userID, start, err)
	return err
}

func (l *loggingStore) AppendToSet(ctx context.Context, userID, field string, members ...string) error {
	start := time.Now()
	err := l.inner.AppendToSet(ctx, userID, field, members...)
	l.observe("append "+field, userID, start, err)
	return err
}

func (l *loggingStore) Increment(ctx context.Context, userID, field string, delta int) error {
	start := time.Now()
	err := l.inner.Increment(ctx, userID, field, delta)
	l.observe("increment "+field, userID, start, err)
	return err
}

func (l *loggingStore) observe(op, userID string, start time.Time, err error) {
	kv := []any{"op", op, "user", userID, "duration_ms", time.Since(start).Milliseconds()}
	if err != nil && !errors.Is(err, ErrNotFound) {
		l.log.Warn("store call failed", append(kv, "error", err)...)
		return
	}
	l.log.Debug("store call", kv...)
}
