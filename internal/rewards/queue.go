package rewards

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/store"
)

// Grant is a queued token grant.
type Grant struct {
	UserID string
	Amount int
	Reason string
}

// QueueConfig controls buffering and per-grant retry behavior.
type QueueConfig struct {
	Buffer      int
	MaxAttempts int
	InitialWait time.Duration
	Multiplier  float64
}

// DefaultQueueConfig returns the standard queue configuration.
func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		Buffer:      64,
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// Queue delivers token grants to the rail from a single background
// worker. Enqueue never blocks, and delivery failures never reach the
// caller: they are logged and recorded in the voyage log so nothing is
// lost silently.
type Queue struct {
	rail   Granter
	events store.EventRepo
	log    *logger.Logger
	config QueueConfig

	mu     sync.RWMutex
	closed bool
	ch     chan Grant
	done   chan struct{}
}

// NewQueue starts the worker. events may be nil, in which case failures
// are only logged.
func NewQueue(rail Granter, events store.EventRepo, log *logger.Logger, config QueueConfig) *Queue {
	if config.Buffer < 1 {
		config.Buffer = 1
	}
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	q := &Queue{
		rail:   rail,
		events: events,
		log:    log.With("component", "reward-queue"),
		config: config,
		ch:     make(chan Grant, config.Buffer),
		done:   make(chan struct{}),
	}
	go q.worker()
	return q
}

// Enqueue hands a grant to the worker. It never blocks: when the buffer
// is full or the queue is closed the grant is dropped, logged, and
// recorded as a failed grant.
func (q *Queue) Enqueue(g Grant) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.log.Warn("queue closed, dropping grant", "user", g.UserID, "amount", g.Amount)
		return false
	}

	select {
	case q.ch <- g:
		return true
	default:
		q.log.Warn("queue full, dropping grant", "user", g.UserID, "amount", g.Amount, "reason", g.Reason)
		q.recordFailure(g, "queue full")
		return false
	}
}

// QueueTokens records a pending grant in the voyage log and enqueues it.
func (q *Queue) QueueTokens(ctx context.Context, userID string, amount int, reason string) {
	if amount <= 0 {
		return
	}
	if q.events != nil {
		err := q.events.AppendReward(ctx, store.RewardEventData{
			Kind:   store.RewardTokensQueued,
			Amount: amount,
			Reason: reason,
		})
		if err != nil {
			q.log.Warn("record queued tokens", "err", err)
		}
	}
	q.Enqueue(Grant{UserID: userID, Amount: amount, Reason: reason})
}

// Close stops accepting grants and waits for the worker to drain.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()
	<-q.done
}

func (q *Queue) worker() {
	defer close(q.done)
	for g := range q.ch {
		q.deliver(g)
	}
}

// deliver pushes one grant through the rail with bounded retries. The
// queue outlives request contexts, so delivery runs on its own context.
func (q *Queue) deliver(g Grant) {
	ctx := context.Background()

	var lastErr error
	wait := q.config.InitialWait
	for attempt := range q.config.MaxAttempts {
		err := q.rail.Grant(ctx, g.UserID, g.Amount, g.Reason)
		if err == nil {
			q.log.Debug("grant delivered",
				"user", g.UserID, "amount", g.Amount, "reason", g.Reason, "attempt", attempt+1)
			return
		}
		lastErr = err

		if !isTemporary(err) || attempt == q.config.MaxAttempts-1 {
			break
		}
		q.log.Debug("grant attempt failed, retrying",
			"attempt", attempt+1, "wait", wait, "err", err)
		time.Sleep(wait)
		wait = time.Duration(float64(wait) * q.config.Multiplier)
	}

	q.log.Warn("grant failed",
		"user", g.UserID, "amount", g.Amount, "reason", g.Reason, "err", lastErr)
	q.recordFailure(g, lastErr.Error())
}

func (q *Queue) recordFailure(g Grant, cause string) {
	if q.events == nil {
		return
	}
	err := q.events.AppendReward(context.Background(), store.RewardEventData{
		Kind:   store.RewardGrantFailed,
		Amount: g.Amount,
		Reason: g.Reason + ": " + cause,
	})
	if err != nil {
		q.log.Warn("record failed grant", "err", err)
	}
}

// isTemporary reports whether a grant error is worth retrying.
func isTemporary(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	// Transport errors are assumed transient.
	return true
}
