package rewards

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/starpathlabs/starpath/internal/bus"
	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/progress"
	"github.com/starpathlabs/starpath/internal/store"
)

// mockEventRepo implements store.EventRepo for reward tests. Reward
// events are kept in memory so inventory queries behave like the real
// repo; the other event types are no-ops.
type mockEventRepo struct {
	mu      sync.Mutex
	seq     int64
	rewards []store.RewardEventRecord
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{}
}

func (m *mockEventRepo) AppendCompletion(_ context.Context, _ store.CompletionEventData) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return m.seq, nil
}
func (m *mockEventRepo) QueryCompletions(_ context.Context, _ store.QueryOpts) ([]store.CompletionEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) UnsyncedCompletions(_ context.Context) ([]store.CompletionEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) MarkCompletionSynced(_ context.Context, _ int64) error {
	return nil
}
func (m *mockEventRepo) AppendStreak(_ context.Context, _ store.StreakEventData) error {
	return nil
}
func (m *mockEventRepo) QueryStreaks(_ context.Context, _ store.QueryOpts) ([]store.StreakEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendPurchase(_ context.Context, _ store.PurchaseEventData) error {
	return nil
}
func (m *mockEventRepo) QueryPurchases(_ context.Context, _ store.QueryOpts) ([]store.PurchaseEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) AppendReward(_ context.Context, data store.RewardEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.rewards = append(m.rewards, store.RewardEventRecord{
		Kind:      data.Kind,
		Rarity:    data.Rarity,
		Amount:    data.Amount,
		Reason:    data.Reason,
		BoxID:     data.BoxID,
		Sequence:  m.seq,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (m *mockEventRepo) QueryRewards(_ context.Context, opts store.QueryOpts) ([]store.RewardEventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.RewardEventRecord, len(m.rewards))
	copy(out, m.rewards)
	slices.Reverse(out)
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *mockEventRepo) BoxInventory(_ context.Context) ([]store.BoxRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	opened := make(map[string]bool)
	for _, e := range m.rewards {
		if e.Kind == store.RewardBoxOpened && e.BoxID != nil {
			opened[*e.BoxID] = true
		}
	}

	var boxes []store.BoxRecord
	for _, e := range m.rewards {
		if e.Kind != store.RewardBoxGranted || e.BoxID == nil || opened[*e.BoxID] {
			continue
		}
		var rarity string
		if e.Rarity != nil {
			rarity = *e.Rarity
		}
		boxes = append(boxes, store.BoxRecord{
			BoxID:     *e.BoxID,
			Rarity:    rarity,
			Reason:    e.Reason,
			GrantedAt: e.Timestamp,
		})
	}
	return boxes, nil
}

func (m *mockEventRepo) RewardTotals(_ context.Context) (store.RewardTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var totals store.RewardTotals
	for _, e := range m.rewards {
		switch e.Kind {
		case store.RewardTokensQueued:
			totals.TokensQueued += e.Amount
		case store.RewardGrantFailed:
			totals.GrantsFailed++
		case store.RewardBoxGranted:
			totals.BoxesGranted++
		case store.RewardBoxOpened:
			totals.BoxesOpened++
		}
	}
	return totals, nil
}

func (m *mockEventRepo) rewardData() []store.RewardEventData {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.RewardEventData, len(m.rewards))
	for i, r := range m.rewards {
		out[i] = store.RewardEventData{
			Kind:   r.Kind,
			Rarity: r.Rarity,
			Amount: r.Amount,
			Reason: r.Reason,
			BoxID:  r.BoxID,
		}
	}
	return out
}

func newTestService(t *testing.T) (*Service, *mockEventRepo, *mockGranter, *progress.MemStore, *bus.Bus) {
	t.Helper()

	repo := newMockEventRepo()
	granter := &mockGranter{}
	q := NewQueue(granter, repo, logger.Nop(), fastQueueConfig())
	t.Cleanup(q.Close)

	st := progress.NewMemStore()
	b := bus.New(logger.Nop(), 16)
	t.Cleanup(b.Close)

	svc := NewService(Config{
		Queue:    q,
		Events:   repo,
		Progress: st,
		Bus:      b,
		Log:      logger.Nop(),
		Rng:      rand.New(rand.NewPCG(1, 2)),
	})
	return svc, repo, granter, st, b
}

func TestGrantBoxAndInventory(t *testing.T) {
	svc, repo, _, _, _ := newTestService(t)
	ctx := context.Background()

	box, err := svc.GrantBox(ctx, "0xWALLET", "streak milestone day 14", RarityRare)
	if err != nil {
		t.Fatalf("grant box: %v", err)
	}
	if box.ID == "" {
		t.Fatal("expected non-empty box ID")
	}

	inventory, err := svc.Inventory(ctx)
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(inventory) != 1 {
		t.Fatalf("got %d boxes, want 1", len(inventory))
	}
	if inventory[0].ID != box.ID {
		t.Errorf("inventory ID = %q, want %q", inventory[0].ID, box.ID)
	}
	if inventory[0].Rarity != RarityRare {
		t.Errorf("inventory rarity = %q, want %q", inventory[0].Rarity, RarityRare)
	}
	if inventory[0].Source != "streak milestone day 14" {
		t.Errorf("inventory source = %q, want the grant source", inventory[0].Source)
	}

	granted := 0
	for _, e := range repo.rewardData() {
		if e.Kind == store.RewardBoxGranted {
			granted++
		}
	}
	if granted != 1 {
		t.Errorf("recorded %d grant events, want 1", granted)
	}
}

func TestOpenBox(t *testing.T) {
	svc, repo, granter, st, b := newTestService(t)
	ctx := context.Background()

	events, cancel := b.Subscribe(bus.BoxOpened)
	defer cancel()

	box, err := svc.GrantBox(ctx, "0xWALLET", "galaxy 5 completed", RarityLegendary)
	if err != nil {
		t.Fatalf("grant box: %v", err)
	}

	opened, contents, err := svc.OpenBox(ctx, "0xWALLET", box.ID)
	if err != nil {
		t.Fatalf("open box: %v", err)
	}
	if !opened.Opened() {
		t.Error("returned box should carry an opened timestamp")
	}
	if contents.Tokens < 80 || contents.Tokens > 150 {
		t.Errorf("tokens = %d, want legendary range [80, 150]", contents.Tokens)
	}

	// The box leaves the inventory.
	inventory, err := svc.Inventory(ctx)
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(inventory) != 0 {
		t.Errorf("inventory has %d boxes after open, want 0", len(inventory))
	}

	// Tokens are credited to the progress document.
	doc, err := st.Get(ctx, "0xWALLET")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if doc.TokensEarned != contents.Tokens {
		t.Errorf("tokens earned = %d, want %d", doc.TokensEarned, contents.Tokens)
	}
	if contents.CosmeticID != "" && !doc.Owns(contents.CosmeticID) {
		t.Errorf("cosmetic drop %q not in owned set", contents.CosmeticID)
	}

	// The bus carries the open.
	select {
	case e := <-events:
		payload, ok := e.Payload.(bus.BoxOpenedPayload)
		if !ok {
			t.Fatalf("payload type %T", e.Payload)
		}
		if payload.BoxID != box.ID || payload.Tokens != contents.Tokens {
			t.Errorf("payload = %+v, want box %s tokens %d", payload, box.ID, contents.Tokens)
		}
	case <-time.After(time.Second):
		t.Fatal("no BoxOpened event received")
	}

	// The grant reaches the rail once the queue drains.
	svc.queue.Close()
	if got := granter.callCount(); got != 1 {
		t.Errorf("granter called %d times, want 1", got)
	}

	var kinds []string
	for _, e := range repo.rewardData() {
		kinds = append(kinds, e.Kind)
	}
	want := []string{
		store.RewardBoxGranted,
		store.RewardBoxOpened,
		store.RewardTokensQueued,
	}
	if !slices.Equal(kinds, want) {
		t.Errorf("event kinds = %v, want %v", kinds, want)
	}
}

func TestOpenBoxTwice(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := context.Background()

	box, err := svc.GrantBox(ctx, "0xWALLET", "streak milestone day 7", RarityCommon)
	if err != nil {
		t.Fatalf("grant box: %v", err)
	}
	if _, _, err := svc.OpenBox(ctx, "0xWALLET", box.ID); err != nil {
		t.Fatalf("first open: %v", err)
	}

	_, _, err = svc.OpenBox(ctx, "0xWALLET", box.ID)
	if !errors.Is(err, ErrAlreadyOpened) {
		t.Errorf("second open err = %v, want ErrAlreadyOpened", err)
	}
}

func TestOpenBoxUnknown(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)

	_, _, err := svc.OpenBox(context.Background(), "0xWALLET", "no-such-box")
	if !errors.Is(err, ErrBoxNotFound) {
		t.Errorf("err = %v, want ErrBoxNotFound", err)
	}
}
