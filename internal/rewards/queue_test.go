package rewards

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockGranter counts grants and fails the first failN calls with err.
type mockGranter struct {
	mu      sync.Mutex
	calls   []Grant
	failN   int
	err     error
	started chan struct{} // closed when the first call arrives
	release chan struct{} // when non-nil, calls wait until closed
	once    sync.Once
}

func (m *mockGranter) Grant(_ context.Context, userID string, amount int, reason string) error {
	if m.started != nil {
		m.once.Do(func() { close(m.started) })
	}
	if m.release != nil {
		<-m.release
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Grant{UserID: userID, Amount: amount, Reason: reason})
	if len(m.calls) <= m.failN {
		return m.err
	}
	return nil
}

func (m *mockGranter) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func fastQueueConfig() QueueConfig {
	return QueueConfig{
		Buffer:      8,
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		Multiplier:  2.0,
	}
}

func failedGrants(repo *mockEventRepo) []store.RewardEventData {
	var out []store.RewardEventData
	for _, e := range repo.rewardData() {
		if e.Kind == store.RewardGrantFailed {
			out = append(out, e)
		}
	}
	return out
}

func TestQueueDeliversGrant(t *testing.T) {
	granter := &mockGranter{}
	repo := newMockEventRepo()
	q := NewQueue(granter, repo, logger.Nop(), fastQueueConfig())

	q.QueueTokens(context.Background(), "0xWALLET", 10, "module completed: what-is-blockchain")
	q.Close()

	if got := granter.callCount(); got != 1 {
		t.Fatalf("granter called %d times, want 1", got)
	}
	granter.mu.Lock()
	g := granter.calls[0]
	granter.mu.Unlock()
	if g.UserID != "0xWALLET" || g.Amount != 10 {
		t.Errorf("grant = %+v, want user 0xWALLET amount 10", g)
	}

	queued := 0
	for _, e := range repo.rewardData() {
		if e.Kind == store.RewardTokensQueued {
			queued++
			if e.Amount != 10 {
				t.Errorf("queued amount = %d, want 10", e.Amount)
			}
		}
	}
	if queued != 1 {
		t.Errorf("recorded %d queued events, want 1", queued)
	}
	if len(failedGrants(repo)) != 0 {
		t.Error("unexpected failed grant events")
	}
}

func TestQueueRetriesTemporaryFailures(t *testing.T) {
	granter := &mockGranter{
		failN: 2,
		err:   &StatusError{StatusCode: http.StatusServiceUnavailable, Body: "overloaded"},
	}
	repo := newMockEventRepo()
	q := NewQueue(granter, repo, logger.Nop(), fastQueueConfig())

	q.Enqueue(Grant{UserID: "0xWALLET", Amount: 10, Reason: "module completed: finality"})
	q.Close()

	if got := granter.callCount(); got != 3 {
		t.Fatalf("granter called %d times, want 3", got)
	}
	if len(failedGrants(repo)) != 0 {
		t.Error("grant succeeded on final attempt, no failure should be recorded")
	}
}

func TestQueueExhaustsRetries(t *testing.T) {
	granter := &mockGranter{
		failN: 99,
		err:   &StatusError{StatusCode: http.StatusServiceUnavailable, Body: "overloaded"},
	}
	repo := newMockEventRepo()
	q := NewQueue(granter, repo, logger.Nop(), fastQueueConfig())

	q.Enqueue(Grant{UserID: "0xWALLET", Amount: 10, Reason: "box opened: abc"})
	q.Close()

	if got := granter.callCount(); got != 3 {
		t.Fatalf("granter called %d times, want 3", got)
	}

	failed := failedGrants(repo)
	if len(failed) != 1 {
		t.Fatalf("recorded %d failed grants, want 1", len(failed))
	}
	if failed[0].Amount != 10 {
		t.Errorf("failed amount = %d, want 10", failed[0].Amount)
	}
}

func TestQueuePermanentErrorNotRetried(t *testing.T) {
	granter := &mockGranter{
		failN: 99,
		err:   &StatusError{StatusCode: http.StatusBadRequest, Body: "unknown wallet"},
	}
	repo := newMockEventRepo()
	q := NewQueue(granter, repo, logger.Nop(), fastQueueConfig())

	q.Enqueue(Grant{UserID: "0xNOBODY", Amount: 10, Reason: "test"})
	q.Close()

	if got := granter.callCount(); got != 1 {
		t.Fatalf("granter called %d times, want 1 (no retries on 4xx)", got)
	}
	if len(failedGrants(repo)) != 1 {
		t.Errorf("recorded %d failed grants, want 1", len(failedGrants(repo)))
	}
}

func TestQueueFullDropsGrant(t *testing.T) {
	granter := &mockGranter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	repo := newMockEventRepo()
	config := fastQueueConfig()
	config.Buffer = 1
	q := NewQueue(granter, repo, logger.Nop(), config)

	// First grant occupies the worker.
	if !q.Enqueue(Grant{UserID: "u", Amount: 1, Reason: "first"}) {
		t.Fatal("first enqueue should succeed")
	}
	<-granter.started

	// Second fills the buffer, third must drop.
	if !q.Enqueue(Grant{UserID: "u", Amount: 2, Reason: "second"}) {
		t.Fatal("second enqueue should succeed")
	}
	if q.Enqueue(Grant{UserID: "u", Amount: 3, Reason: "third"}) {
		t.Fatal("third enqueue should report a drop")
	}

	close(granter.release)
	q.Close()

	if got := granter.callCount(); got != 2 {
		t.Errorf("granter called %d times, want 2", got)
	}

	failed := failedGrants(repo)
	if len(failed) != 1 {
		t.Fatalf("recorded %d failed grants, want 1", len(failed))
	}
	if failed[0].Amount != 3 {
		t.Errorf("dropped amount = %d, want 3", failed[0].Amount)
	}
}

func TestEnqueueAfterClose(t *testing.T) {
	q := NewQueue(&mockGranter{}, newMockEventRepo(), logger.Nop(), fastQueueConfig())
	q.Close()

	if q.Enqueue(Grant{UserID: "u", Amount: 1, Reason: "late"}) {
		t.Error("enqueue after close should return false")
	}
}

func TestQueueTokensSkipsNonPositive(t *testing.T) {
	granter := &mockGranter{}
	repo := newMockEventRepo()
	q := NewQueue(granter, repo, logger.Nop(), fastQueueConfig())

	q.QueueTokens(context.Background(), "0xWALLET", 0, "empty box")
	q.Close()

	if got := granter.callCount(); got != 0 {
		t.Errorf("granter called %d times, want 0", got)
	}
	if got := len(repo.rewardData()); got != 0 {
		t.Errorf("recorded %d events, want 0", got)
	}
}

func TestQueueNilEventRepo(t *testing.T) {
	granter := &mockGranter{
		failN: 99,
		err:   &StatusError{StatusCode: http.StatusBadRequest, Body: "nope"},
	}
	q := NewQueue(granter, nil, logger.Nop(), fastQueueConfig())

	// Must not panic without an event repo.
	q.QueueTokens(context.Background(), "0xWALLET", 5, "test")
	q.Close()

	if got := granter.callCount(); got != 1 {
		t.Errorf("granter called %d times, want 1", got)
	}
}
