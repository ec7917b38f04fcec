package store

import (
	"context"
	"testing"
	"time"

	"github.com/starpathlabs/starpath/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testProgressDoc(xp int) progress.UserProgress {
	return progress.UserProgress{
		UserID:           "0xWALLET",
		CompletedModules: []string{"what-is-blockchain"},
		CurrentModuleID:  "blocks-and-chains",
		CurrentGalaxyID:  1,
		XP:               xp,
		UnlockedGalaxies: []int{1},
		UpdatedAt:        time.Now().UTC().Truncate(time.Second),
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      testProgressDoc(140),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.UserID != "0xWALLET" {
		t.Errorf("data.user_id = %q, want %q", snap.Data.UserID, "0xWALLET")
	}
	if snap.Data.XP != 140 {
		t.Errorf("data.xp = %d, want 140", snap.Data.XP)
	}
	if snap.Data.CurrentModuleID != "blocks-and-chains" {
		t.Errorf("data.current_module_id = %q, want %q",
			snap.Data.CurrentModuleID, "blocks-and-chains")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      testProgressDoc((i + 1) * 40),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.XP != 120 {
		t.Errorf("data.xp = %d, want 120", snap.Data.XP)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      testProgressDoc(40),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      testProgressDoc(40),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"snapshots",
		"completion_events",
		"streak_events",
		"reward_events",
		"purchase_events",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestAppendAndQueryCompletions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	modules := []string{"what-is-blockchain", "blocks-and-chains", "decentralization"}
	for i, id := range modules {
		_, err := repo.AppendCompletion(ctx, CompletionEventData{
			ModuleID:     id,
			GalaxyID:     1,
			XPAwarded:    40 + i,
			TokensQueued: 10,
			Synced:       true,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	records, err := repo.QueryCompletions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// Newest first.
	if records[0].ModuleID != "decentralization" {
		t.Errorf("records[0].ModuleID = %q, want %q", records[0].ModuleID, "decentralization")
	}
	if records[0].XPAwarded != 42 {
		t.Errorf("records[0].XPAwarded = %d, want 42", records[0].XPAwarded)
	}
	if !records[0].Synced {
		t.Error("records[0].Synced = false, want true")
	}

	// Limit.
	records, err = repo.QueryCompletions(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records with limit 1, want 1", len(records))
	}
}

func TestUnsyncedCompletionsAndMark(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seq1, err := repo.AppendCompletion(ctx, CompletionEventData{
		ModuleID: "what-is-blockchain", GalaxyID: 1, XPAwarded: 40, Synced: false,
	})
	if err != nil {
		t.Fatalf("append 1: %v", err)
	}
	if _, err := repo.AppendCompletion(ctx, CompletionEventData{
		ModuleID: "blocks-and-chains", GalaxyID: 1, XPAwarded: 40, Synced: true,
	}); err != nil {
		t.Fatalf("append 2: %v", err)
	}
	seq3, err := repo.AppendCompletion(ctx, CompletionEventData{
		ModuleID: "decentralization", GalaxyID: 1, XPAwarded: 45, Synced: false,
	})
	if err != nil {
		t.Fatalf("append 3: %v", err)
	}

	pending, err := repo.UnsyncedCompletions(ctx)
	if err != nil {
		t.Fatalf("unsynced: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("got %d unsynced, want 2", len(pending))
	}

	// Oldest first, so replay preserves order.
	if pending[0].Sequence != seq1 || pending[1].Sequence != seq3 {
		t.Errorf("unsynced sequences = %d, %d, want %d, %d",
			pending[0].Sequence, pending[1].Sequence, seq1, seq3)
	}

	if err := repo.MarkCompletionSynced(ctx, seq1); err != nil {
		t.Fatalf("mark synced: %v", err)
	}

	pending, err = repo.UnsyncedCompletions(ctx)
	if err != nil {
		t.Fatalf("unsynced after mark: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("got %d unsynced after mark, want 1", len(pending))
	}
	if pending[0].ModuleID != "decentralization" {
		t.Errorf("remaining unsynced = %q, want %q", pending[0].ModuleID, "decentralization")
	}

	// Marking a sequence that doesn't exist should error.
	if err := repo.MarkCompletionSynced(ctx, 9999); err == nil {
		t.Error("expected error marking unknown sequence")
	}
}

func TestAppendAndQueryStreaks(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendStreak(ctx, StreakEventData{Action: StreakActionCheck, Count: 7, Milestone: 7}); err != nil {
		t.Fatalf("append check: %v", err)
	}
	if err := repo.AppendStreak(ctx, StreakEventData{Action: StreakActionClaim, Count: 7, Milestone: 7}); err != nil {
		t.Fatalf("append claim: %v", err)
	}

	records, err := repo.QueryStreaks(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Action != StreakActionClaim {
		t.Errorf("records[0].Action = %q, want %q", records[0].Action, StreakActionClaim)
	}
	if records[1].Count != 7 || records[1].Milestone != 7 {
		t.Errorf("check record = count %d milestone %d, want 7 and 7",
			records[1].Count, records[1].Milestone)
	}
}

func TestBoxInventory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rare := "rare"
	common := "common"
	boxA := "box-a"
	boxB := "box-b"

	grants := []RewardEventData{
		{Kind: RewardBoxGranted, Rarity: &rare, Reason: "streak milestone day 7", BoxID: &boxA},
		{Kind: RewardBoxGranted, Rarity: &common, Reason: "galaxy 1 completed", BoxID: &boxB},
	}
	for i, g := range grants {
		if err := repo.AppendReward(ctx, g); err != nil {
			t.Fatalf("append grant %d: %v", i, err)
		}
	}

	// Open box A.
	if err := repo.AppendReward(ctx, RewardEventData{
		Kind: RewardBoxOpened, Rarity: &rare, Amount: 25, Reason: "box opened", BoxID: &boxA,
	}); err != nil {
		t.Fatalf("append open: %v", err)
	}

	boxes, err := repo.BoxInventory(ctx)
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(boxes) != 1 {
		t.Fatalf("got %d boxes, want 1", len(boxes))
	}
	if boxes[0].BoxID != boxB {
		t.Errorf("boxes[0].BoxID = %q, want %q", boxes[0].BoxID, boxB)
	}
	if boxes[0].Rarity != "common" {
		t.Errorf("boxes[0].Rarity = %q, want %q", boxes[0].Rarity, "common")
	}
}

func TestRewardTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rare := "rare"
	boxA := "box-a"
	events := []RewardEventData{
		{Kind: RewardTokensQueued, Amount: 10, Reason: "module completed"},
		{Kind: RewardTokensQueued, Amount: 12, Reason: "module completed"},
		{Kind: RewardGrantFailed, Amount: 10, Reason: "rail unreachable"},
		{Kind: RewardBoxGranted, Rarity: &rare, Reason: "streak milestone day 7", BoxID: &boxA},
		{Kind: RewardBoxOpened, Rarity: &rare, Amount: 25, Reason: "box opened", BoxID: &boxA},
	}
	for i, e := range events {
		if err := repo.AppendReward(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	totals, err := repo.RewardTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	want := RewardTotals{TokensQueued: 22, GrantsFailed: 1, BoxesGranted: 1, BoxesOpened: 1}
	if totals != want {
		t.Errorf("totals = %+v, want %+v", totals, want)
	}
}

func TestAppendAndQueryPurchases(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendPurchase(ctx, PurchaseEventData{CosmeticID: "nebula-trail", Price: 120}); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryPurchases(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].CosmeticID != "nebula-trail" || records[0].Price != 120 {
		t.Errorf("record = %q at %d, want nebula-trail at 120",
			records[0].CosmeticID, records[0].Price)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seq1, err := repo.AppendCompletion(ctx, CompletionEventData{
		ModuleID: "what-is-blockchain", GalaxyID: 1, XPAwarded: 40, Synced: true,
	})
	if err != nil {
		t.Fatalf("append completion: %v", err)
	}
	if err := repo.AppendStreak(ctx, StreakEventData{Action: StreakActionCheck, Count: 1}); err != nil {
		t.Fatalf("append streak: %v", err)
	}
	if err := repo.AppendReward(ctx, RewardEventData{
		Kind: RewardTokensQueued, Amount: 10, Reason: "module completed",
	}); err != nil {
		t.Fatalf("append reward: %v", err)
	}

	streaks, err := repo.QueryStreaks(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query streaks: %v", err)
	}
	rewards, err := repo.QueryRewards(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query rewards: %v", err)
	}

	if streaks[0].Sequence != seq1+1 {
		t.Errorf("streak sequence = %d, want %d", streaks[0].Sequence, seq1+1)
	}
	if rewards[0].Sequence != seq1+2 {
		t.Errorf("reward sequence = %d, want %d", rewards[0].Sequence, seq1+2)
	}
}
