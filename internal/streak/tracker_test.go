package streak

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/starpathlabs/starpath/internal/bus"
	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/progress"
	"github.com/starpathlabs/starpath/internal/rewards"
	"github.com/starpathlabs/starpath/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockEventRepo implements store.EventRepo for tracker tests, capturing
// streak and reward appends.
type mockEventRepo struct {
	mu           sync.Mutex
	streakEvents []store.StreakEventData
	rewardEvents []store.RewardEventData
}

func (m *mockEventRepo) AppendCompletion(_ context.Context, _ store.CompletionEventData) (int64, error) {
	return 0, nil
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
func (m *mockEventRepo) AppendStreak(_ context.Context, data store.StreakEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streakEvents = append(m.streakEvents, data)
	return nil
}
func (m *mockEventRepo) QueryStreaks(_ context.Context, _ store.QueryOpts) ([]store.StreakEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendReward(_ context.Context, data store.RewardEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rewardEvents = append(m.rewardEvents, data)
	return nil
}
func (m *mockEventRepo) QueryRewards(_ context.Context, _ store.QueryOpts) ([]store.RewardEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) BoxInventory(_ context.Context) ([]store.BoxRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) RewardTotals(_ context.Context) (store.RewardTotals, error) {
	return store.RewardTotals{}, nil
}
func (m *mockEventRepo) AppendPurchase(_ context.Context, _ store.PurchaseEventData) error {
	return nil
}
func (m *mockEventRepo) QueryPurchases(_ context.Context, _ store.QueryOpts) ([]store.PurchaseEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) streaks() []store.StreakEventData {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.StreakEventData, len(m.streakEvents))
	copy(out, m.streakEvents)
	return out
}

type trackerFixture struct {
	tracker *Tracker
	repo    *mockEventRepo
	store   *progress.MemStore
	bus     *bus.Bus
	today   string
}

func newTestTracker(t *testing.T, today string) *trackerFixture {
	t.Helper()

	repo := &mockEventRepo{}
	st := progress.NewMemStore()
	b := bus.New(logger.Nop(), 16)
	t.Cleanup(b.Close)

	q := rewards.NewQueue(rewards.NopRail{}, repo, logger.Nop(), rewards.DefaultQueueConfig())
	t.Cleanup(q.Close)

	boxes := rewards.NewService(rewards.Config{
		Queue:    q,
		Events:   repo,
		Progress: st,
		Bus:      b,
		Log:      logger.Nop(),
		Rng:      rand.New(rand.NewPCG(1, 2)),
	})

	day, err := time.Parse(time.DateOnly, today)
	if err != nil {
		t.Fatalf("parse today: %v", err)
	}

	tracker := NewTracker(Config{
		Progress: st,
		Rewards:  boxes,
		Events:   repo,
		Bus:      b,
		Log:      logger.Nop(),
		Now:      func() time.Time { return day },
	})
	return &trackerFixture{tracker: tracker, repo: repo, store: st, bus: b, today: today}
}

func seedDoc(t *testing.T, f *trackerFixture, streak progress.StreakState) *progress.UserProgress {
	t.Helper()
	doc := progress.NewUserProgress("0xWALLET", "what-is-blockchain", 1)
	doc.Streak = streak
	f.store.Put(doc)
	return doc
}

func TestCheckInFirstEver(t *testing.T) {
	f := newTestTracker(t, "2026-03-10")
	doc := seedDoc(t, f, progress.StreakState{})

	events, cancel := f.bus.Subscribe(bus.DailyStreakChecked)
	defer cancel()

	res, err := f.tracker.CheckIn(context.Background(), doc)
	if err != nil {
		t.Fatalf("check in: %v", err)
	}
	if !res.Counted || res.Count != 1 {
		t.Errorf("result = %+v, want counted with count 1", res)
	}
	if doc.Streak.Count != 1 || doc.Streak.LastActiveDate != f.today {
		t.Errorf("doc streak = %+v, want count 1 on %s", doc.Streak, f.today)
	}

	stored, err := f.store.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Streak.Count != 1 || stored.Streak.LastActiveDate != f.today {
		t.Errorf("stored streak = %+v, want count 1 on %s", stored.Streak, f.today)
	}

	if got := f.repo.streaks(); len(got) != 1 || got[0].Action != store.StreakActionCheck {
		t.Errorf("streak events = %+v, want one check", got)
	}

	select {
	case e := <-events:
		payload := e.Payload.(bus.StreakCheckedPayload)
		if payload.Count != 1 || !payload.Counted {
			t.Errorf("payload = %+v, want count 1 counted", payload)
		}
	case <-time.After(time.Second):
		t.Fatal("no DailyStreakChecked event received")
	}
}

func TestCheckInSameDayNoop(t *testing.T) {
	f := newTestTracker(t, "2026-03-10")
	doc := seedDoc(t, f, progress.StreakState{Count: 5, LastActiveDate: "2026-03-10"})

	res, err := f.tracker.CheckIn(context.Background(), doc)
	if err != nil {
		t.Fatalf("check in: %v", err)
	}
	if res.Counted {
		t.Error("second check on the same day should not count")
	}
	if res.Count != 5 {
		t.Errorf("count = %d, want 5", res.Count)
	}
	if got := f.repo.streaks(); len(got) != 0 {
		t.Errorf("streak events = %+v, want none", got)
	}
}

func TestCheckInReachesMilestone(t *testing.T) {
	f := newTestTracker(t, "2026-03-10")
	doc := seedDoc(t, f, progress.StreakState{Count: 6, LastActiveDate: "2026-03-09"})

	res, err := f.tracker.CheckIn(context.Background(), doc)
	if err != nil {
		t.Fatalf("check in: %v", err)
	}
	if res.Count != 7 || res.Milestone != 7 {
		t.Errorf("result = %+v, want count 7 milestone 7", res)
	}

	if got := f.repo.streaks(); len(got) != 1 || got[0].Milestone != 7 {
		t.Errorf("streak events = %+v, want milestone 7 recorded", got)
	}
}

func TestCheckInGapResets(t *testing.T) {
	f := newTestTracker(t, "2026-03-10")
	doc := seedDoc(t, f, progress.StreakState{Count: 20, LastActiveDate: "2026-03-05"})

	res, err := f.tracker.CheckIn(context.Background(), doc)
	if err != nil {
		t.Fatalf("check in: %v", err)
	}
	if res.Count != 1 {
		t.Errorf("count = %d, want reset to 1", res.Count)
	}
}

func TestClaimMilestone(t *testing.T) {
	f := newTestTracker(t, "2026-03-10")
	doc := seedDoc(t, f, progress.StreakState{Count: 14, LastActiveDate: "2026-03-10"})

	events, cancel := f.bus.Subscribe(bus.MilestoneClaimed)
	defer cancel()

	box, err := f.tracker.Claim(context.Background(), doc, 14)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if box.Rarity != rewards.RarityRare {
		t.Errorf("box rarity = %q, want %q for day 14", box.Rarity, rewards.RarityRare)
	}
	if !doc.Streak.Claimed(14) {
		t.Error("doc should record the claim")
	}

	stored, err := f.store.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.Streak.Claimed(14) {
		t.Errorf("stored claims = %v, want to include 14", stored.Streak.ClaimedMilestones)
	}

	var claims []store.StreakEventData
	for _, e := range f.repo.streaks() {
		if e.Action == store.StreakActionClaim {
			claims = append(claims, e)
		}
	}
	if len(claims) != 1 || claims[0].Milestone != 14 {
		t.Errorf("claim events = %+v, want one for day 14", claims)
	}

	select {
	case e := <-events:
		payload := e.Payload.(bus.MilestoneClaimedPayload)
		if payload.Milestone != 14 || payload.BoxID != box.ID {
			t.Errorf("payload = %+v, want milestone 14 box %s", payload, box.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("no MilestoneClaimed event received")
	}
}

func TestClaimTwice(t *testing.T) {
	f := newTestTracker(t, "2026-03-10")
	doc := seedDoc(t, f, progress.StreakState{Count: 7, LastActiveDate: "2026-03-10"})

	if _, err := f.tracker.Claim(context.Background(), doc, 7); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	_, err := f.tracker.Claim(context.Background(), doc, 7)
	if !errors.Is(err, ErrAlreadyClaimed) {
		t.Errorf("second claim err = %v, want ErrAlreadyClaimed", err)
	}
}

func TestClaimNotReached(t *testing.T) {
	f := newTestTracker(t, "2026-03-10")
	doc := seedDoc(t, f, progress.StreakState{Count: 6, LastActiveDate: "2026-03-10"})

	_, err := f.tracker.Claim(context.Background(), doc, 7)
	if !errors.Is(err, ErrNotClaimable) {
		t.Errorf("err = %v, want ErrNotClaimable", err)
	}
}

func TestClaimNotAMilestone(t *testing.T) {
	f := newTestTracker(t, "2026-03-10")
	doc := seedDoc(t, f, progress.StreakState{Count: 10, LastActiveDate: "2026-03-10"})

	_, err := f.tracker.Claim(context.Background(), doc, 5)
	if !errors.Is(err, ErrNotClaimable) {
		t.Errorf("err = %v, want ErrNotClaimable", err)
	}
}

func TestClaimPersistedAcrossReload(t *testing.T) {
	f := newTestTracker(t, "2026-03-10")
	doc := seedDoc(t, f, progress.StreakState{Count: 7, LastActiveDate: "2026-03-10"})

	if _, err := f.tracker.Claim(context.Background(), doc, 7); err != nil {
		t.Fatalf("claim: %v", err)
	}

	// A fresh read of the document still refuses the claim.
	reloaded, err := f.store.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_, err = f.tracker.Claim(context.Background(), reloaded, 7)
	if !errors.Is(err, ErrAlreadyClaimed) {
		t.Errorf("claim after reload err = %v, want ErrAlreadyClaimed", err)
	}
}
