package store

import (
	"context"
	"time"

	"github.com/starpathlabs/starpath/internal/progress"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Snapshot is a point-in-time capture of the traveler's progress document.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      progress.UserProgress
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// Reward event kinds.
const (
	RewardBoxGranted   = "box-granted"
	RewardBoxOpened    = "box-opened"
	RewardTokensQueued = "tokens-queued"
	RewardGrantFailed  = "grant-failed"
)

// Streak event actions.
const (
	StreakActionCheck = "check"
	StreakActionClaim = "claim"
)

// CompletionEventData captures a finished module for the voyage log.
type CompletionEventData struct {
	ModuleID     string
	GalaxyID     int
	XPAwarded    int
	TokensQueued int
	Synced       bool
}

// CompletionEventRecord is a completion event read back from the log.
type CompletionEventRecord struct {
	ModuleID     string
	GalaxyID     int
	XPAwarded    int
	TokensQueued int
	Synced       bool
	Sequence     int64
	Timestamp    time.Time
}

// StreakEventData captures a streak check-in or milestone claim.
type StreakEventData struct {
	Action    string // "check" or "claim"
	Count     int
	Milestone int // 0 when no milestone was involved
}

// StreakEventRecord is a streak event read back from the log.
type StreakEventRecord struct {
	Action    string
	Count     int
	Milestone int
	Sequence  int64
	Timestamp time.Time
}

// RewardEventData captures reward activity: box grants and opens, token
// grants queued for the rail, and grant failures.
type RewardEventData struct {
	Kind   string // "box-granted", "box-opened", "tokens-queued", "grant-failed"
	Rarity *string
	Amount int
	Reason string
	BoxID  *string
}

// RewardEventRecord is a reward event read back from the log.
type RewardEventRecord struct {
	Kind      string
	Rarity    *string
	Amount    int
	Reason    string
	BoxID     *string
	Sequence  int64
	Timestamp time.Time
}

// PurchaseEventData captures a cosmetic bought from the shop.
type PurchaseEventData struct {
	CosmeticID string
	Price      int
}

// PurchaseEventRecord is a purchase event read back from the log.
type PurchaseEventRecord struct {
	CosmeticID string
	Price      int
	Sequence   int64
	Timestamp  time.Time
}

// BoxRecord describes a granted mystery box that has not been opened yet,
// derived from the reward event log.
type BoxRecord struct {
	BoxID     string
	Rarity    string
	Reason    string
	GrantedAt time.Time
}

// RewardTotals aggregates the reward event log for display.
type RewardTotals struct {
	TokensQueued int
	GrantsFailed int
	BoxesGranted int
	BoxesOpened  int
}

// EventRepo provides append and query access to the voyage log.
type EventRepo interface {
	// AppendCompletion records a module completion. It returns the sequence
	// number assigned to the event so it can be marked synced later.
	AppendCompletion(ctx context.Context, data CompletionEventData) (int64, error)

	// QueryCompletions returns completion events, newest first.
	QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEventRecord, error)

	// UnsyncedCompletions returns completions that never reached the
	// progress store, oldest first so replay preserves order.
	UnsyncedCompletions(ctx context.Context) ([]CompletionEventRecord, error)

	// MarkCompletionSynced flags the completion with the given sequence as
	// delivered to the progress store.
	MarkCompletionSynced(ctx context.Context, sequence int64) error

	// AppendStreak records a streak check-in or claim.
	AppendStreak(ctx context.Context, data StreakEventData) error

	// QueryStreaks returns streak events, newest first.
	QueryStreaks(ctx context.Context, opts QueryOpts) ([]StreakEventRecord, error)

	// AppendReward records reward activity.
	AppendReward(ctx context.Context, data RewardEventData) error

	// QueryRewards returns reward events, newest first.
	QueryRewards(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error)

	// BoxInventory returns granted boxes that have not been opened,
	// oldest grant first.
	BoxInventory(ctx context.Context) ([]BoxRecord, error)

	// RewardTotals aggregates the reward log.
	RewardTotals(ctx context.Context) (RewardTotals, error)

	// AppendPurchase records a shop purchase.
	AppendPurchase(ctx context.Context, data PurchaseEventData) error

	// QueryPurchases returns purchase events, newest first.
	QueryPurchases(ctx context.Context, opts QueryOpts) ([]PurchaseEventRecord, error)
}
