package rewards

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/starpathlabs/starpath/internal/bus"
	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/progress"
	"github.com/starpathlabs/starpath/internal/store"
)

// ErrBoxNotFound is returned when a box ID matches no granted box.
var ErrBoxNotFound = errors.New("box not found")

// Config wires the reward service's collaborators.
type Config struct {
	Queue    *Queue
	Events   store.EventRepo
	Progress progress.Store
	Bus      *bus.Bus
	Log      *logger.Logger
	Rng      *rand.Rand
}

// Service coordinates mystery boxes: granting, inventory, and opening.
type Service struct {
	queue    *Queue
	events   store.EventRepo
	progress progress.Store
	bus      *bus.Bus
	log      *logger.Logger

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewService creates the reward service.
func NewService(cfg Config) *Service {
	return &Service{
		queue:    cfg.Queue,
		events:   cfg.Events,
		progress: cfg.Progress,
		bus:      cfg.Bus,
		log:      cfg.Log.With("component", "rewards"),
		rng:      cfg.Rng,
	}
}

// GrantBox mints a box and records the grant in the voyage log.
func (s *Service) GrantBox(ctx context.Context, userID, source string, rarity Rarity) (Box, error) {
	box := NewBox(source, rarity, time.Now().UTC())

	rarityStr := string(box.Rarity)
	err := s.events.AppendReward(ctx, store.RewardEventData{
		Kind:   store.RewardBoxGranted,
		Rarity: &rarityStr,
		Reason: source,
		BoxID:  &box.ID,
	})
	if err != nil {
		return Box{}, fmt.Errorf("record box grant: %w", err)
	}

	s.log.Info("mystery box granted",
		"user", userID, "box", box.ID, "rarity", box.Rarity, "source", source)
	return box, nil
}

// Inventory returns granted boxes that have not been opened, oldest first.
func (s *Service) Inventory(ctx context.Context) ([]Box, error) {
	records, err := s.events.BoxInventory(ctx)
	if err != nil {
		return nil, err
	}

	boxes := make([]Box, len(records))
	for i, r := range records {
		boxes[i] = Box{
			ID:        r.BoxID,
			Source:    r.Reason,
			Rarity:    Rarity(r.Rarity),
			GrantedAt: r.GrantedAt,
		}
	}
	return boxes, nil
}

// OpenBox opens a granted box, queues its token grant, and adds any
// cosmetic drop to the traveler's owned set.
func (s *Service) OpenBox(ctx context.Context, userID, boxID string) (Box, Contents, error) {
	box, err := s.findUnopened(ctx, boxID)
	if err != nil {
		return Box{}, Contents{}, err
	}

	s.mu.Lock()
	contents, err := Open(box, s.rng)
	s.mu.Unlock()
	if err != nil {
		return Box{}, Contents{}, err
	}

	rarityStr := string(box.Rarity)
	err = s.events.AppendReward(ctx, store.RewardEventData{
		Kind:   store.RewardBoxOpened,
		Rarity: &rarityStr,
		Amount: contents.Tokens,
		Reason: "box opened",
		BoxID:  &box.ID,
	})
	if err != nil {
		return Box{}, Contents{}, fmt.Errorf("record box open: %w", err)
	}
	box.OpenedAt = time.Now().UTC()

	if contents.Tokens > 0 {
		if err := s.progress.Increment(ctx, userID, progress.FieldTokensEarned, contents.Tokens); err != nil {
			s.log.Warn("credit box tokens", "user", userID, "err", err)
		}
		s.queue.QueueTokens(ctx, userID, contents.Tokens, "box opened: "+box.ID)
	}
	if contents.CosmeticID != "" {
		if err := s.progress.AppendToSet(ctx, userID, progress.FieldCosmetics, contents.CosmeticID); err != nil {
			s.log.Warn("add cosmetic drop", "user", userID, "cosmetic", contents.CosmeticID, "err", err)
		}
	}

	s.bus.Publish(bus.Event{
		Type:   bus.BoxOpened,
		UserID: userID,
		Payload: bus.BoxOpenedPayload{
			BoxID:      box.ID,
			Rarity:     string(box.Rarity),
			Tokens:     contents.Tokens,
			CosmeticID: contents.CosmeticID,
		},
	})

	s.log.Info("mystery box opened",
		"user", userID, "box", box.ID, "tokens", contents.Tokens, "cosmetic", contents.CosmeticID)
	return box, contents, nil
}

// findUnopened resolves a box ID against the voyage log, distinguishing
// unknown boxes from already-opened ones.
func (s *Service) findUnopened(ctx context.Context, boxID string) (Box, error) {
	inventory, err := s.Inventory(ctx)
	if err != nil {
		return Box{}, err
	}
	for _, b := range inventory {
		if b.ID == boxID {
			return b, nil
		}
	}

	records, err := s.events.QueryRewards(ctx, store.QueryOpts{})
	if err != nil {
		return Box{}, err
	}
	for _, r := range records {
		if r.Kind == store.RewardBoxOpened && r.BoxID != nil && *r.BoxID == boxID {
			return Box{}, ErrAlreadyOpened
		}
	}
	return Box{}, ErrBoxNotFound
}
