package progression

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/starpathlabs/starpath/internal/bus"
	"github.com/starpathlabs/starpath/internal/curriculum"
	"github.com/starpathlabs/starpath/internal/level"
	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/progress"
	"github.com/starpathlabs/starpath/internal/rewards"
	"github.com/starpathlabs/starpath/internal/store"
)

// ErrModuleLocked reports an attempt to complete a module the reconciler
// still considers locked.
var ErrModuleLocked = errors.New("module is locked")

// ErrRunNotReady reports a completion attempt before every required part of
// the run is done.
var ErrRunNotReady = errors.New("module run is not finished")

// SyncPendingError reports that a completion was applied locally but could
// not reach the progress store after retries. The local document is the
// live one until a later SyncPending call lands it.
type SyncPendingError struct {
	Err error
}

func (e *SyncPendingError) Error() string {
	return fmt.Sprintf("progress saved locally, store sync pending: %v", e.Err)
}

func (e *SyncPendingError) Unwrap() error { return e.Err }

// Completion reports what one CompleteModule call did.
type Completion struct {
	Module             curriculum.Module
	XPAwarded          int
	TokensQueued       int
	Level              int
	LeveledUp          bool
	UnlockedGalaxy     *curriculum.Galaxy
	GalaxyBox          *rewards.Box
	NextModuleID       string
	CurriculumComplete bool
	AlreadyCompleted   bool
	SyncPending        bool
}

// snapshotKeep bounds how many local snapshots Prune retains.
const snapshotKeep = 20

// Config wires the completion pipeline's collaborators. Boxes may be nil,
// in which case finishing a galaxy grants no mystery box.
type Config struct {
	Graph     *curriculum.Graph
	Progress  progress.Store
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Bus       *bus.Bus
	Queue     *rewards.Queue
	Boxes     *rewards.Service
	Log       *logger.Logger
}

// Service is the completion pipeline. Mutations for one user are serialized
// through a per-user mutex; distinct users never contend.
type Service struct {
	graph     *curriculum.Graph
	progress  progress.Store
	events    store.EventRepo
	snapshots store.SnapshotRepo
	bus       *bus.Bus
	queue     *rewards.Queue
	boxes     *rewards.Service
	log       *logger.Logger

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

func NewService(cfg Config) *Service {
	return &Service{
		graph:     cfg.Graph,
		progress:  cfg.Progress,
		events:    cfg.Events,
		snapshots: cfg.Snapshots,
		bus:       cfg.Bus,
		queue:     cfg.Queue,
		boxes:     cfg.Boxes,
		log:       cfg.Log.With("component", "progression"),
		users:     make(map[string]*sync.Mutex),
	}
}

func (s *Service) userMu(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	mu, ok := s.users[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.users[userID] = mu
	}
	return mu
}

// Load returns the user's progress document. The store copy and the latest
// local snapshot are merged so progress made while the store was down is
// never hidden. A first-time user gets the starting document, written back
// to the store. When the store is unreachable the snapshot (or a fresh
// start) serves as an offline view until the next sync.
func (s *Service) Load(ctx context.Context, userID string) (*progress.UserProgress, error) {
	local := s.latestSnapshot(ctx, userID)

	doc, err := s.progress.Get(ctx, userID)
	switch {
	case err == nil:
		return Merge(s.graph, local, doc), nil

	case errors.Is(err, progress.ErrNotFound):
		if local != nil {
			// The store lost the document; reseed it from the snapshot.
			doc = Merge(s.graph, local, nil)
		} else {
			doc = s.freshDocument(userID)
		}
		if err := s.seed(ctx, doc); err != nil {
			s.log.Warn("seed progress document", "user", userID, "err", err)
		}
		return doc, nil

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, err

	default:
		if local != nil {
			s.log.Warn("progress store unreachable, using local snapshot", "err", err)
			return Merge(s.graph, local, nil), nil
		}
		s.log.Warn("progress store unreachable, starting offline", "err", err)
		return s.freshDocument(userID), nil
	}
}

func (s *Service) freshDocument(userID string) *progress.UserProgress {
	first := s.graph.FirstModule()
	return progress.NewUserProgress(userID, first.ID, s.graph.FirstGalaxy().ID)
}

// latestSnapshot returns the newest local snapshot for the user, or nil.
// Errors only log; a broken snapshot never blocks a load.
func (s *Service) latestSnapshot(ctx context.Context, userID string) *progress.UserProgress {
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		s.log.Warn("load snapshot", "err", err)
		return nil
	}
	if snap == nil || snap.Data.UserID != userID {
		return nil
	}
	return snap.Data.Clone()
}

// seed writes a full document to the store, used on first access and when
// the store has lost the document.
func (s *Service) seed(ctx context.Context, doc *progress.UserProgress) error {
	fields := map[string]any{
		progress.FieldCurrentModuleID:  doc.CurrentModuleID,
		progress.FieldCurrentGalaxyID:  doc.CurrentGalaxyID,
		progress.FieldXP:               doc.XP,
		progress.FieldTokensEarned:     doc.TokensEarned,
		progress.FieldTokensSpent:      doc.TokensSpent,
		progress.FieldStreakCount:      doc.Streak.Count,
		progress.FieldStreakLastActive: doc.Streak.LastActiveDate,
		progress.FieldEquipped:         doc.Equipped,
		progress.FieldUpdatedAt:        time.Now().UTC(),
	}
	if err := s.progress.Set(ctx, doc.UserID, fields); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	sets := []struct {
		field   string
		members []string
	}{
		{progress.FieldCompletedModules, doc.CompletedModules},
		{progress.FieldUnlockedGalaxies, intMembers(doc.UnlockedGalaxies)},
		{progress.FieldCosmetics, doc.Cosmetics},
		{progress.FieldClaimedMilestones, intMembers(doc.Streak.ClaimedMilestones)},
	}
	for _, set := range sets {
		if len(set.members) == 0 {
			continue
		}
		if err := s.progress.AppendToSet(ctx, doc.UserID, set.field, set.members...); err != nil {
			return fmt.Errorf("write %s: %w", set.field, err)
		}
	}
	return nil
}

// CompleteModule runs the completion pipeline for one module: the id joins
// the completed set exactly once, XP and token rewards are granted, the
// current pointer advances, and crossing into a new galaxy unlocks it.
// Completing an already-completed module is a no-op, not an error.
//
// The transition always lands locally first. If the progress store cannot
// be reached after retries, the returned error is a *SyncPendingError and
// the Completion is still valid with SyncPending set; nothing is rolled
// back.
func (s *Service) CompleteModule(ctx context.Context, p *progress.UserProgress, moduleID string) (*Completion, error) {
	mu := s.userMu(p.UserID)
	mu.Lock()
	defer mu.Unlock()

	mod, err := s.graph.Module(moduleID)
	if err != nil {
		return nil, err
	}

	if p.Completed(moduleID) {
		return &Completion{Module: mod, AlreadyCompleted: true, Level: level.ForXP(p.XP)}, nil
	}

	if ms, ok := Lookup(Reconcile(s.graph, p), moduleID); !ok || ms.Locked {
		return nil, fmt.Errorf("module %q: %w", moduleID, ErrModuleLocked)
	}

	galaxyID, _, err := s.graph.Locate(moduleID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	levelBefore := level.ForXP(p.XP)

	// Local transition first; the store write follows and may lag behind.
	p.CompletedModules = append(p.CompletedModules, moduleID)
	p.XP += mod.XPReward
	p.UpdatedAt = now

	comp := &Completion{
		Module:       mod,
		XPAwarded:    mod.XPReward,
		TokensQueued: mod.TokenReward,
	}

	var newGalaxy *curriculum.Galaxy
	next, ok, err := s.graph.NextModule(moduleID)
	if err != nil {
		return nil, err
	}
	if ok {
		p.CurrentModuleID = next.ID
		comp.NextModuleID = next.ID
		if nextGalaxyID, _, err := s.graph.Locate(next.ID); err == nil {
			p.CurrentGalaxyID = nextGalaxyID
			if !p.GalaxyUnlocked(nextGalaxyID) {
				p.UnlockedGalaxies = append(p.UnlockedGalaxies, nextGalaxyID)
				slices.Sort(p.UnlockedGalaxies)
				if gal, err := s.graph.GalaxyByID(nextGalaxyID); err == nil {
					newGalaxy = &gal
					comp.UnlockedGalaxy = &gal
				}
			}
		}
	} else {
		comp.CurriculumComplete = true
	}

	comp.Level = level.ForXP(p.XP)
	comp.LeveledUp = comp.Level > levelBefore

	// Reward side effects are fire-and-forget: a failed grant never rolls
	// back the completion.
	if mod.TokenReward > 0 {
		s.queue.QueueTokens(ctx, p.UserID, mod.TokenReward, "module completed: "+moduleID)
	}
	if s.boxes != nil && s.graph.GalaxyCompleted(galaxyID, p.CompletedSet()) {
		source := fmt.Sprintf("galaxy %d complete", galaxyID)
		box, err := s.boxes.GrantBox(ctx, p.UserID, source, rewards.GalaxyRarity(galaxyID))
		if err != nil {
			s.log.Warn("grant galaxy box", "galaxy", galaxyID, "err", err)
		} else {
			comp.GalaxyBox = &box
		}
	}

	seq, err := s.events.AppendCompletion(ctx, store.CompletionEventData{
		ModuleID:     moduleID,
		GalaxyID:     galaxyID,
		XPAwarded:    mod.XPReward,
		TokensQueued: mod.TokenReward,
	})
	if err != nil {
		s.log.Warn("record completion", "module", moduleID, "err", err)
		seq = 0
	}

	syncErr := s.persistCompletion(ctx, p, mod, newGalaxy)
	if syncErr == nil {
		if seq != 0 {
			if err := s.events.MarkCompletionSynced(ctx, seq); err != nil {
				s.log.Warn("mark completion synced", "sequence", seq, "err", err)
			}
		}
	} else {
		comp.SyncPending = true
		s.log.Warn("progress store write failed, completion kept locally",
			"module", moduleID, "err", syncErr)
	}

	s.saveSnapshot(ctx, p, seq)

	s.bus.Publish(bus.Event{
		Type:   bus.ModuleCompleted,
		UserID: p.UserID,
		Payload: bus.ModuleCompletedPayload{
			ModuleID:    mod.ID,
			ModuleTitle: mod.Title,
			XPAwarded:   mod.XPReward,
		},
	})
	if newGalaxy != nil {
		s.bus.Publish(bus.Event{
			Type:    bus.GalaxyUnlocked,
			UserID:  p.UserID,
			Payload: bus.GalaxyUnlockedPayload{GalaxyID: newGalaxy.ID, Name: newGalaxy.Name},
		})
	}
	if comp.LeveledUp {
		s.bus.Publish(bus.Event{
			Type:    bus.LevelUp,
			UserID:  p.UserID,
			Payload: bus.LevelUpPayload{Level: comp.Level},
		})
	}

	s.log.Info("module completed",
		"module", moduleID, "xp", mod.XPReward, "level", comp.Level, "synced", syncErr == nil)

	if syncErr != nil {
		return comp, &SyncPendingError{Err: syncErr}
	}
	return comp, nil
}

// CompleteRun completes the run's module once every required part is done.
func (s *Service) CompleteRun(ctx context.Context, p *progress.UserProgress, run *ModuleRun) (*Completion, error) {
	if !run.Ready() {
		return nil, fmt.Errorf("module %q still needs %s: %w",
			run.Module().ID, strings.Join(run.Remaining(), ", "), ErrRunNotReady)
	}
	return s.CompleteModule(ctx, p, run.Module().ID)
}

// persistCompletion pushes one completion to the progress store. Set fields
// go through atomic unions and XP through an atomic increment so concurrent
// writers merge instead of clobbering each other; only the pointer fields
// are plain writes, and only this pipeline sets those.
func (s *Service) persistCompletion(ctx context.Context, p *progress.UserProgress, mod curriculum.Module, newGalaxy *curriculum.Galaxy) error {
	if err := s.progress.AppendToSet(ctx, p.UserID, progress.FieldCompletedModules, mod.ID); err != nil {
		return fmt.Errorf("append completed module: %w", err)
	}
	if mod.XPReward != 0 {
		if err := s.progress.Increment(ctx, p.UserID, progress.FieldXP, mod.XPReward); err != nil {
			return fmt.Errorf("add xp: %w", err)
		}
	}
	if newGalaxy != nil {
		if err := s.progress.AppendToSet(ctx, p.UserID, progress.FieldUnlockedGalaxies, progress.IntMember(newGalaxy.ID)); err != nil {
			return fmt.Errorf("append unlocked galaxy: %w", err)
		}
	}
	fields := map[string]any{
		progress.FieldCurrentModuleID: p.CurrentModuleID,
		progress.FieldCurrentGalaxyID: p.CurrentGalaxyID,
		progress.FieldUpdatedAt:       p.UpdatedAt,
	}
	if err := s.progress.Set(ctx, p.UserID, fields); err != nil {
		return fmt.Errorf("advance pointer: %w", err)
	}
	return nil
}

// SyncPending pushes completions that never reached the progress store.
// Rather than replaying events one by one, the local document state is
// re-asserted wholesale: set fields are unioned and scalars written
// outright, so the operation is safe to repeat no matter which writes
// failed the first time. Events are marked synced only after every write
// lands. p should come from Load, so it already folds in the store's own
// view.
func (s *Service) SyncPending(ctx context.Context, p *progress.UserProgress) (int, error) {
	mu := s.userMu(p.UserID)
	mu.Lock()
	defer mu.Unlock()

	pending, err := s.events.UnsyncedCompletions(ctx)
	if err != nil {
		return 0, fmt.Errorf("load pending completions: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	if len(p.CompletedModules) > 0 {
		if err := s.progress.AppendToSet(ctx, p.UserID, progress.FieldCompletedModules, p.CompletedModules...); err != nil {
			return 0, &SyncPendingError{Err: fmt.Errorf("append completed modules: %w", err)}
		}
	}
	if len(p.UnlockedGalaxies) > 0 {
		if err := s.progress.AppendToSet(ctx, p.UserID, progress.FieldUnlockedGalaxies, intMembers(p.UnlockedGalaxies)...); err != nil {
			return 0, &SyncPendingError{Err: fmt.Errorf("append unlocked galaxies: %w", err)}
		}
	}
	fields := map[string]any{
		progress.FieldXP:              p.XP,
		progress.FieldCurrentModuleID: p.CurrentModuleID,
		progress.FieldCurrentGalaxyID: p.CurrentGalaxyID,
		progress.FieldUpdatedAt:       time.Now().UTC(),
	}
	if err := s.progress.Set(ctx, p.UserID, fields); err != nil {
		return 0, &SyncPendingError{Err: fmt.Errorf("write scalars: %w", err)}
	}

	for _, e := range pending {
		if err := s.events.MarkCompletionSynced(ctx, e.Sequence); err != nil {
			s.log.Warn("mark completion synced", "sequence", e.Sequence, "err", err)
		}
	}
	s.log.Info("synced pending completions", "count", len(pending))
	return len(pending), nil
}

// saveSnapshot captures the document locally so play can continue when the
// store is unreachable. Failures only log; the event log still holds every
// transition.
func (s *Service) saveSnapshot(ctx context.Context, p *progress.UserProgress, seq int64) {
	snap := &store.Snapshot{Sequence: seq, Timestamp: time.Now().UTC(), Data: *p.Clone()}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		s.log.Warn("save snapshot", "err", err)
		return
	}
	if err := s.snapshots.Prune(ctx, snapshotKeep); err != nil {
		s.log.Warn("prune snapshots", "err", err)
	}
}

func intMembers(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = progress.IntMember(v)
	}
	return out
}
