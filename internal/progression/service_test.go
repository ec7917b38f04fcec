package progression

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/starpathlabs/starpath/internal/bus"
	"github.com/starpathlabs/starpath/internal/curriculum"
	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/progress"
	"github.com/starpathlabs/starpath/internal/rewards"
	"github.com/starpathlabs/starpath/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockEventRepo implements store.EventRepo for pipeline tests, tracking
// completion sequences and sync flags the way the real log does.
type mockEventRepo struct {
	mu            sync.Mutex
	seq           int64
	completionLog []store.CompletionEventRecord
	rewardLog     []store.RewardEventData
}

func (m *mockEventRepo) AppendCompletion(_ context.Context, data store.CompletionEventData) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.completionLog = append(m.completionLog, store.CompletionEventRecord{
		ModuleID:     data.ModuleID,
		GalaxyID:     data.GalaxyID,
		XPAwarded:    data.XPAwarded,
		TokensQueued: data.TokensQueued,
		Synced:       data.Synced,
		Sequence:     m.seq,
		Timestamp:    time.Now().UTC(),
	})
	return m.seq, nil
}
func (m *mockEventRepo) QueryCompletions(_ context.Context, _ store.QueryOpts) ([]store.CompletionEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) UnsyncedCompletions(_ context.Context) ([]store.CompletionEventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.CompletionEventRecord
	for _, rec := range m.completionLog {
		if !rec.Synced {
			out = append(out, rec)
		}
	}
	return out, nil
}
func (m *mockEventRepo) MarkCompletionSynced(_ context.Context, sequence int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.completionLog {
		if m.completionLog[i].Sequence == sequence {
			m.completionLog[i].Synced = true
			return nil
		}
	}
	return fmt.Errorf("completion %d not found", sequence)
}
func (m *mockEventRepo) AppendStreak(_ context.Context, _ store.StreakEventData) error {
	return nil
}
func (m *mockEventRepo) QueryStreaks(_ context.Context, _ store.QueryOpts) ([]store.StreakEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendReward(_ context.Context, data store.RewardEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rewardLog = append(m.rewardLog, data)
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

func (m *mockEventRepo) completions() []store.CompletionEventRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.CompletionEventRecord, len(m.completionLog))
	copy(out, m.completionLog)
	return out
}

func (m *mockEventRepo) rewardEvents() []store.RewardEventData {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.RewardEventData, len(m.rewardLog))
	copy(out, m.rewardLog)
	return out
}

// mockSnapshotRepo implements store.SnapshotRepo in memory.
type mockSnapshotRepo struct {
	mu    sync.Mutex
	snaps []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps = append(m.snaps, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.snaps) == 0 {
		return nil, nil
	}
	return m.snaps[len(m.snaps)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, keep int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.snaps) > keep {
		m.snaps = m.snaps[len(m.snaps)-keep:]
	}
	return nil
}

func (m *mockSnapshotRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snaps)
}

// flakyStore wraps a MemStore and can be switched offline, at which point
// every operation fails like an exhausted retry loop would.
type flakyStore struct {
	*progress.MemStore
	mu   sync.Mutex
	down bool
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemStore: progress.NewMemStore()}
}

func (s *flakyStore) setDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

func (s *flakyStore) fail(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.down {
		return nil
	}
	return &progress.UnavailableError{Op: op, Attempts: 3, Err: errors.New("connection refused")}
}

func (s *flakyStore) Get(ctx context.Context, userID string) (*progress.UserProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.fail("get"); err != nil {
		return nil, err
	}
	return s.MemStore.Get(ctx, userID)
}

func (s *flakyStore) Set(ctx context.Context, userID string, fields map[string]any) error {
	if err := s.fail("set"); err != nil {
		return err
	}
	return s.MemStore.Set(ctx, userID, fields)
}

func (s *flakyStore) AppendToSet(ctx context.Context, userID, field string, members ...string) error {
	if err := s.fail("append"); err != nil {
		return err
	}
	return s.MemStore.AppendToSet(ctx, userID, field, members...)
}

func (s *flakyStore) Increment(ctx context.Context, userID, field string, delta int) error {
	if err := s.fail("increment"); err != nil {
		return err
	}
	return s.MemStore.Increment(ctx, userID, field, delta)
}

type serviceFixture struct {
	svc   *Service
	graph *curriculum.Graph
	store *flakyStore
	repo  *mockEventRepo
	snaps *mockSnapshotRepo
	bus   *bus.Bus
}

func newTestService(t *testing.T) *serviceFixture {
	t.Helper()

	g := testGraph(t)
	st := newFlakyStore()
	repo := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
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
		Rng:      rand.New(rand.NewPCG(3, 9)),
	})

	svc := NewService(Config{
		Graph:     g,
		Progress:  st,
		Events:    repo,
		Snapshots: snaps,
		Bus:       b,
		Queue:     q,
		Boxes:     boxes,
		Log:       logger.Nop(),
	})
	return &serviceFixture{svc: svc, graph: g, store: st, repo: repo, snaps: snaps, bus: b}
}

func loadDoc(t *testing.T, f *serviceFixture) *progress.UserProgress {
	t.Helper()
	doc, err := f.svc.Load(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return doc
}

func recvEvent(t *testing.T, ch <-chan bus.Event) bus.Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return bus.Event{}
	}
}

func TestLoadFreshUser(t *testing.T) {
	f := newTestService(t)

	doc := loadDoc(t, f)
	if doc.UserID != "0xWALLET" {
		t.Errorf("user = %q, want 0xWALLET", doc.UserID)
	}
	if doc.CurrentModuleID != "what-is-blockchain" || doc.CurrentGalaxyID != 1 {
		t.Errorf("pointer = %q in galaxy %d, want the first module", doc.CurrentModuleID, doc.CurrentGalaxyID)
	}
	if doc.XP != 0 || len(doc.CompletedModules) != 0 {
		t.Errorf("fresh doc has XP %d and %d completions, want none", doc.XP, len(doc.CompletedModules))
	}
	if !slices.Equal(doc.UnlockedGalaxies, []int{1}) {
		t.Errorf("unlocked = %v, want [1]", doc.UnlockedGalaxies)
	}

	// The starting document is written back so the next load finds it.
	stored, err := f.store.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get after seed: %v", err)
	}
	if stored.CurrentModuleID != "what-is-blockchain" {
		t.Errorf("seeded pointer = %q, want what-is-blockchain", stored.CurrentModuleID)
	}
	if !slices.Equal(stored.UnlockedGalaxies, []int{1}) {
		t.Errorf("seeded unlocked = %v, want [1]", stored.UnlockedGalaxies)
	}
}

func TestLoadMergesSnapshotAndStore(t *testing.T) {
	f := newTestService(t)

	remote := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})
	remote.XP = 60
	f.store.Put(remote)

	local := testDoc([]string{"what-is-blockchain", "blocks-and-chains"}, "proof-of-work", 2, []int{1, 2})
	local.XP = 120
	if err := f.snaps.Save(context.Background(), &store.Snapshot{Data: *local}); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	doc := loadDoc(t, f)
	if doc.XP != 120 {
		t.Errorf("XP = %d, want the snapshot's 120", doc.XP)
	}
	for _, id := range []string{"what-is-blockchain", "blocks-and-chains"} {
		if !doc.Completed(id) {
			t.Errorf("merged doc should have %s completed", id)
		}
	}
	if !slices.Equal(doc.UnlockedGalaxies, []int{1, 2}) {
		t.Errorf("unlocked = %v, want [1 2]", doc.UnlockedGalaxies)
	}
	if doc.CurrentModuleID != "proof-of-work" || doc.CurrentGalaxyID != 2 {
		t.Errorf("pointer = %q in galaxy %d, want proof-of-work in galaxy 2",
			doc.CurrentModuleID, doc.CurrentGalaxyID)
	}
}

func TestLoadStoreDownUsesSnapshot(t *testing.T) {
	f := newTestService(t)

	local := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})
	local.XP = 60
	if err := f.snaps.Save(context.Background(), &store.Snapshot{Data: *local}); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	f.store.setDown(true)

	doc := loadDoc(t, f)
	if doc.XP != 60 || !doc.Completed("what-is-blockchain") {
		t.Errorf("offline doc = XP %d completed %v, want the snapshot state", doc.XP, doc.CompletedModules)
	}
	if doc.CurrentModuleID != "blocks-and-chains" {
		t.Errorf("pointer = %q, want blocks-and-chains", doc.CurrentModuleID)
	}
}

func TestLoadStoreDownStartsFresh(t *testing.T) {
	f := newTestService(t)
	f.store.setDown(true)

	doc := loadDoc(t, f)
	if doc.XP != 0 || doc.CurrentModuleID != "what-is-blockchain" {
		t.Errorf("doc = XP %d pointer %q, want a fresh start", doc.XP, doc.CurrentModuleID)
	}
}

func TestLoadIgnoresForeignSnapshot(t *testing.T) {
	f := newTestService(t)

	other := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})
	other.UserID = "0xSOMEONE"
	other.XP = 999
	if err := f.snaps.Save(context.Background(), &store.Snapshot{Data: *other}); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	doc := loadDoc(t, f)
	if doc.XP != 0 {
		t.Errorf("XP = %d, want 0: another traveler's snapshot leaked in", doc.XP)
	}
}

func TestLoadCanceledContext(t *testing.T) {
	f := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.Load(ctx, "0xWALLET")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled passed through", err)
	}
}

func TestCompleteModuleFirst(t *testing.T) {
	f := newTestService(t)
	doc := loadDoc(t, f)

	events, cancel := f.bus.Subscribe(bus.ModuleCompleted)
	defer cancel()

	comp, err := f.svc.CompleteModule(context.Background(), doc, "what-is-blockchain")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if comp.XPAwarded != 60 || comp.TokensQueued != 5 {
		t.Errorf("awards = %d xp / %d tokens, want 60 / 5", comp.XPAwarded, comp.TokensQueued)
	}
	if comp.Level != 1 || comp.LeveledUp {
		t.Errorf("level = %d (leveled %v), want to stay on 1", comp.Level, comp.LeveledUp)
	}
	if comp.NextModuleID != "blocks-and-chains" {
		t.Errorf("next = %q, want blocks-and-chains", comp.NextModuleID)
	}
	if comp.UnlockedGalaxy != nil || comp.GalaxyBox != nil {
		t.Errorf("comp = %+v, want no galaxy unlock mid-galaxy", comp)
	}
	if comp.SyncPending || comp.AlreadyCompleted {
		t.Errorf("comp flags = %+v, want a clean first completion", comp)
	}

	if !doc.Completed("what-is-blockchain") || doc.XP != 60 {
		t.Errorf("doc = %d xp completed %v, want the local transition applied", doc.XP, doc.CompletedModules)
	}
	if doc.CurrentModuleID != "blocks-and-chains" || doc.CurrentGalaxyID != 1 {
		t.Errorf("pointer = %q in galaxy %d, want blocks-and-chains in galaxy 1",
			doc.CurrentModuleID, doc.CurrentGalaxyID)
	}

	stored, err := f.store.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.XP != 60 || !stored.Completed("what-is-blockchain") || stored.CurrentModuleID != "blocks-and-chains" {
		t.Errorf("stored = %d xp pointer %q, want the completion persisted", stored.XP, stored.CurrentModuleID)
	}

	comps := f.repo.completions()
	if len(comps) != 1 {
		t.Fatalf("completion events = %d, want 1", len(comps))
	}
	if comps[0].ModuleID != "what-is-blockchain" || comps[0].GalaxyID != 1 || !comps[0].Synced {
		t.Errorf("event = %+v, want a synced what-is-blockchain completion", comps[0])
	}

	queued := 0
	for _, rec := range f.repo.rewardEvents() {
		if rec.Kind == store.RewardTokensQueued {
			queued++
			if rec.Amount != 5 || rec.Reason != "module completed: what-is-blockchain" {
				t.Errorf("queued grant = %+v, want 5 tokens for the module", rec)
			}
		}
	}
	if queued != 1 {
		t.Errorf("tokens-queued events = %d, want 1", queued)
	}

	if f.snaps.count() != 1 {
		t.Errorf("snapshots = %d, want 1", f.snaps.count())
	}

	e := recvEvent(t, events)
	payload := e.Payload.(bus.ModuleCompletedPayload)
	if payload.ModuleID != "what-is-blockchain" || payload.XPAwarded != 60 {
		t.Errorf("payload = %+v, want the completed module", payload)
	}
}

func TestCompleteModuleUnlocksGalaxy(t *testing.T) {
	f := newTestService(t)

	doc := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})
	doc.XP = 60
	f.store.Put(doc)

	events, cancel := f.bus.Subscribe(bus.ModuleCompleted, bus.GalaxyUnlocked, bus.LevelUp)
	defer cancel()

	comp, err := f.svc.CompleteModule(context.Background(), doc, "blocks-and-chains")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if comp.UnlockedGalaxy == nil || comp.UnlockedGalaxy.ID != 2 {
		t.Fatalf("unlocked galaxy = %+v, want Consensus", comp.UnlockedGalaxy)
	}
	if comp.NextModuleID != "proof-of-work" {
		t.Errorf("next = %q, want proof-of-work", comp.NextModuleID)
	}
	if comp.Level != 2 || !comp.LeveledUp {
		t.Errorf("level = %d (leveled %v), want a level-up to 2 at 120 xp", comp.Level, comp.LeveledUp)
	}
	if comp.GalaxyBox == nil {
		t.Fatal("finishing Genesis should grant a mystery box")
	}
	if comp.GalaxyBox.Rarity != rewards.RarityCommon {
		t.Errorf("box rarity = %q, want %q for the first galaxy", comp.GalaxyBox.Rarity, rewards.RarityCommon)
	}

	if !slices.Equal(doc.UnlockedGalaxies, []int{1, 2}) {
		t.Errorf("unlocked = %v, want [1 2]", doc.UnlockedGalaxies)
	}
	if doc.CurrentModuleID != "proof-of-work" || doc.CurrentGalaxyID != 2 {
		t.Errorf("pointer = %q in galaxy %d, want proof-of-work in galaxy 2",
			doc.CurrentModuleID, doc.CurrentGalaxyID)
	}

	stored, err := f.store.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !slices.Equal(stored.UnlockedGalaxies, []int{1, 2}) {
		t.Errorf("stored unlocked = %v, want [1 2]", stored.UnlockedGalaxies)
	}

	granted := 0
	for _, rec := range f.repo.rewardEvents() {
		if rec.Kind == store.RewardBoxGranted {
			granted++
			if rec.Reason != "galaxy 1 complete" {
				t.Errorf("grant reason = %q, want galaxy 1 complete", rec.Reason)
			}
		}
	}
	if granted != 1 {
		t.Errorf("box grants = %d, want 1", granted)
	}

	// Completion, unlock, and level-up land on the bus in that order.
	wantOrder := []bus.EventType{bus.ModuleCompleted, bus.GalaxyUnlocked, bus.LevelUp}
	for _, want := range wantOrder {
		e := recvEvent(t, events)
		if e.Type != want {
			t.Fatalf("event = %s, want %s", e.Type, want)
		}
		switch p := e.Payload.(type) {
		case bus.GalaxyUnlockedPayload:
			if p.GalaxyID != 2 || p.Name != "Consensus" {
				t.Errorf("unlock payload = %+v, want Consensus", p)
			}
		case bus.LevelUpPayload:
			if p.Level != 2 {
				t.Errorf("level payload = %+v, want level 2", p)
			}
		}
	}
}

func TestCompleteModuleAgainIsNoop(t *testing.T) {
	f := newTestService(t)
	doc := loadDoc(t, f)

	if _, err := f.svc.CompleteModule(context.Background(), doc, "what-is-blockchain"); err != nil {
		t.Fatalf("first completion: %v", err)
	}

	comp, err := f.svc.CompleteModule(context.Background(), doc, "what-is-blockchain")
	if err != nil {
		t.Fatalf("second completion: %v", err)
	}
	if !comp.AlreadyCompleted {
		t.Error("second completion should report AlreadyCompleted")
	}
	if comp.XPAwarded != 0 {
		t.Errorf("second completion awarded %d xp, want 0", comp.XPAwarded)
	}
	if doc.XP != 60 {
		t.Errorf("XP = %d, want 60 awarded exactly once", doc.XP)
	}
	if got := len(f.repo.completions()); got != 1 {
		t.Errorf("completion events = %d, want 1", got)
	}
	if f.snaps.count() != 1 {
		t.Errorf("snapshots = %d, want 1", f.snaps.count())
	}
}

func TestCompleteModuleLocked(t *testing.T) {
	f := newTestService(t)
	doc := loadDoc(t, f)

	for _, id := range []string{"blocks-and-chains", "proof-of-work"} {
		_, err := f.svc.CompleteModule(context.Background(), doc, id)
		if !errors.Is(err, ErrModuleLocked) {
			t.Errorf("complete %s err = %v, want ErrModuleLocked", id, err)
		}
	}
	if doc.XP != 0 || len(doc.CompletedModules) != 0 {
		t.Errorf("doc = %d xp completed %v, want untouched", doc.XP, doc.CompletedModules)
	}
	if got := len(f.repo.completions()); got != 0 {
		t.Errorf("completion events = %d, want none", got)
	}
}

func TestCompleteModuleUnknown(t *testing.T) {
	f := newTestService(t)
	doc := loadDoc(t, f)

	_, err := f.svc.CompleteModule(context.Background(), doc, "warp-navigation")
	if !errors.Is(err, curriculum.ErrNotFound) {
		t.Errorf("err = %v, want curriculum.ErrNotFound", err)
	}
}

func TestCompleteModuleFinishesCurriculum(t *testing.T) {
	f := newTestService(t)

	doc := testDoc(
		[]string{"what-is-blockchain", "blocks-and-chains", "proof-of-work"},
		"proof-of-stake", 2, []int{1, 2})
	doc.XP = 200

	comp, err := f.svc.CompleteModule(context.Background(), doc, "proof-of-stake")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !comp.CurriculumComplete {
		t.Error("finishing the last module should report CurriculumComplete")
	}
	if comp.NextModuleID != "" {
		t.Errorf("next = %q, want none", comp.NextModuleID)
	}
	if doc.CurrentModuleID != "proof-of-stake" {
		t.Errorf("pointer = %q, want to stay parked on the last module", doc.CurrentModuleID)
	}
	if comp.Level != 3 || !comp.LeveledUp {
		t.Errorf("level = %d (leveled %v), want 3 at 280 xp", comp.Level, comp.LeveledUp)
	}
	if comp.GalaxyBox == nil || comp.GalaxyBox.Rarity != rewards.RarityRare {
		t.Errorf("box = %+v, want a rare box for galaxy 2", comp.GalaxyBox)
	}
}

func TestCompleteModuleStoreDownSyncsLater(t *testing.T) {
	f := newTestService(t)
	doc := loadDoc(t, f)
	f.store.setDown(true)

	comp, err := f.svc.CompleteModule(context.Background(), doc, "what-is-blockchain")

	var spe *SyncPendingError
	if !errors.As(err, &spe) {
		t.Fatalf("err = %v, want a *SyncPendingError", err)
	}
	if comp == nil || !comp.SyncPending {
		t.Fatalf("comp = %+v, want a valid completion flagged sync-pending", comp)
	}
	if comp.XPAwarded != 60 {
		t.Errorf("awarded = %d xp, want 60 despite the store being down", comp.XPAwarded)
	}
	if !doc.Completed("what-is-blockchain") || doc.XP != 60 || doc.CurrentModuleID != "blocks-and-chains" {
		t.Errorf("doc = %d xp pointer %q, want the local transition kept", doc.XP, doc.CurrentModuleID)
	}

	// The store never saw the write; the event log and snapshot hold it.
	stored, err := f.store.MemStore.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.XP != 0 || stored.Completed("what-is-blockchain") {
		t.Errorf("stored = %d xp completed %v, want the pre-completion state", stored.XP, stored.CompletedModules)
	}
	comps := f.repo.completions()
	if len(comps) != 1 || comps[0].Synced {
		t.Fatalf("completion events = %+v, want one unsynced", comps)
	}
	if f.snaps.count() != 1 {
		t.Errorf("snapshots = %d, want the offline completion captured", f.snaps.count())
	}

	// Store recovers; SyncPending lands the completion.
	f.store.setDown(false)
	n, err := f.svc.SyncPending(context.Background(), doc)
	if err != nil {
		t.Fatalf("sync pending: %v", err)
	}
	if n != 1 {
		t.Errorf("synced = %d completions, want 1", n)
	}

	stored, err = f.store.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get after sync: %v", err)
	}
	if stored.XP != 60 || !stored.Completed("what-is-blockchain") || stored.CurrentModuleID != "blocks-and-chains" {
		t.Errorf("stored = %d xp pointer %q, want the synced completion", stored.XP, stored.CurrentModuleID)
	}
	if comps := f.repo.completions(); !comps[0].Synced {
		t.Error("completion event should be marked synced")
	}

	// Nothing left to push.
	n, err = f.svc.SyncPending(context.Background(), doc)
	if err != nil || n != 0 {
		t.Errorf("second sync = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSyncPendingStoreStillDown(t *testing.T) {
	f := newTestService(t)
	doc := loadDoc(t, f)
	f.store.setDown(true)

	if _, err := f.svc.CompleteModule(context.Background(), doc, "what-is-blockchain"); err == nil {
		t.Fatal("completion with the store down should return a sync error")
	}

	_, err := f.svc.SyncPending(context.Background(), doc)
	var spe *SyncPendingError
	if !errors.As(err, &spe) {
		t.Fatalf("err = %v, want a *SyncPendingError", err)
	}

	// The event stays pending for the next attempt.
	pending, err := f.repo.UnsyncedCompletions(context.Background())
	if err != nil {
		t.Fatalf("unsynced: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("pending = %d, want 1", len(pending))
	}
}

func TestCompleteRunRequiresAllParts(t *testing.T) {
	f := newTestService(t)
	doc := loadDoc(t, f)

	mod, err := f.graph.Module("what-is-blockchain")
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	run := NewRun(mod)

	_, err = f.svc.CompleteRun(context.Background(), doc, run)
	if !errors.Is(err, ErrRunNotReady) {
		t.Fatalf("err = %v, want ErrRunNotReady", err)
	}
	if !strings.Contains(err.Error(), "flashcards") {
		t.Errorf("err = %v, want the missing parts named", err)
	}

	run.MarkFlashcards()
	run.MarkQuiz()

	comp, err := f.svc.CompleteRun(context.Background(), doc, run)
	if err != nil {
		t.Fatalf("complete run: %v", err)
	}
	if comp.XPAwarded != 60 {
		t.Errorf("awarded = %d xp, want 60", comp.XPAwarded)
	}
}

func TestConcurrentCompletionsApplyOnce(t *testing.T) {
	f := newTestService(t)
	doc := loadDoc(t, f)

	const workers = 4
	results := make(chan *Completion, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comp, err := f.svc.CompleteModule(context.Background(), doc, "what-is-blockchain")
			if err != nil {
				t.Errorf("complete: %v", err)
				return
			}
			results <- comp
		}()
	}
	wg.Wait()
	close(results)

	applied := 0
	for comp := range results {
		if !comp.AlreadyCompleted {
			applied++
		}
	}
	if applied != 1 {
		t.Errorf("applied completions = %d, want exactly 1", applied)
	}
	if doc.XP != 60 {
		t.Errorf("XP = %d, want 60 awarded once", doc.XP)
	}
	if got := len(f.repo.completions()); got != 1 {
		t.Errorf("completion events = %d, want 1", got)
	}
}
