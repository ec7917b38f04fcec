package streak

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/starpathlabs/starpath/internal/bus"
	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/progress"
	"github.com/starpathlabs/starpath/internal/rewards"
	"github.com/starpathlabs/starpath/internal/store"
)

var (
	// ErrNotClaimable is returned when the streak has not reached the
	// milestone or the day is not a milestone at all.
	ErrNotClaimable = errors.New("milestone not claimable")

	// ErrAlreadyClaimed is returned when the milestone reward was
	// claimed before.
	ErrAlreadyClaimed = errors.New("milestone already claimed")
)

// Config wires the tracker's collaborators.
type Config struct {
	Progress progress.Store
	Rewards  *rewards.Service
	Events   store.EventRepo
	Bus      *bus.Bus
	Log      *logger.Logger
	Now      func() time.Time // defaults to time.Now
}

// Tracker applies daily streak checks and milestone claims to a
// traveler's progress document.
type Tracker struct {
	progress progress.Store
	rewards  *rewards.Service
	events   store.EventRepo
	bus      *bus.Bus
	log      *logger.Logger
	now      func() time.Time
}

// NewTracker creates a streak tracker.
func NewTracker(cfg Config) *Tracker {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		progress: cfg.Progress,
		rewards:  cfg.Rewards,
		events:   cfg.Events,
		bus:      cfg.Bus,
		log:      cfg.Log.With("component", "streak"),
		now:      now,
	}
}

// CheckIn applies today's streak transition to doc and persists the
// outcome. A second check on the same day is a no-op. The document is
// updated in place so the caller sees the new state.
func (t *Tracker) CheckIn(ctx context.Context, doc *progress.UserProgress) (Result, error) {
	next, res := Check(doc.Streak, t.now())
	if !res.Counted {
		return res, nil
	}

	if err := t.progress.Set(ctx, doc.UserID, map[string]any{progress.FieldStreakCount: next.Count}); err != nil {
		return Result{}, fmt.Errorf("persist streak count: %w", err)
	}
	if err := t.progress.Set(ctx, doc.UserID, map[string]any{progress.FieldStreakLastActive: next.LastActiveDate}); err != nil {
		return Result{}, fmt.Errorf("persist streak date: %w", err)
	}
	doc.Streak = next

	if err := t.events.AppendStreak(ctx, store.StreakEventData{
		Action:    store.StreakActionCheck,
		Count:     res.Count,
		Milestone: res.Milestone,
	}); err != nil {
		t.log.Warn("record streak check", "err", err)
	}

	t.bus.Publish(bus.Event{
		Type:   bus.DailyStreakChecked,
		UserID: doc.UserID,
		Payload: bus.StreakCheckedPayload{
			Count:     res.Count,
			Counted:   res.Counted,
			Milestone: res.Milestone,
		},
	})

	t.log.Info("streak checked",
		"user", doc.UserID, "count", res.Count, "milestone", res.Milestone)
	return res, nil
}

// Claim hands out the mystery box for a reached milestone. Each
// milestone is claimable at most once, even across streak resets.
func (t *Tracker) Claim(ctx context.Context, doc *progress.UserProgress, milestone int) (rewards.Box, error) {
	if !IsMilestone(milestone) {
		return rewards.Box{}, fmt.Errorf("day %d: %w", milestone, ErrNotClaimable)
	}
	if doc.Streak.Count < milestone {
		return rewards.Box{}, fmt.Errorf("streak at %d of %d: %w", doc.Streak.Count, milestone, ErrNotClaimable)
	}
	if doc.Streak.Claimed(milestone) {
		return rewards.Box{}, ErrAlreadyClaimed
	}

	source := fmt.Sprintf("streak milestone day %d", milestone)
	box, err := t.rewards.GrantBox(ctx, doc.UserID, source, rewards.MilestoneRarity(milestone))
	if err != nil {
		return rewards.Box{}, fmt.Errorf("grant milestone box: %w", err)
	}

	err = t.progress.AppendToSet(ctx, doc.UserID, progress.FieldClaimedMilestones, progress.IntMember(milestone))
	if err != nil {
		return rewards.Box{}, fmt.Errorf("persist claim: %w", err)
	}
	doc.Streak.ClaimedMilestones = append(doc.Streak.ClaimedMilestones, milestone)

	if err := t.events.AppendStreak(ctx, store.StreakEventData{
		Action:    store.StreakActionClaim,
		Count:     doc.Streak.Count,
		Milestone: milestone,
	}); err != nil {
		t.log.Warn("record milestone claim", "err", err)
	}

	t.bus.Publish(bus.Event{
		Type:   bus.MilestoneClaimed,
		UserID: doc.UserID,
		Payload: bus.MilestoneClaimedPayload{
			Milestone: milestone,
			BoxID:     box.ID,
		},
	})

	t.log.Info("milestone claimed", "user", doc.UserID, "day", milestone, "box", box.ID)
	return box, nil
}
