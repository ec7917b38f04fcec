package cosmetics

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/starpathlabs/starpath/internal/bus"
	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/progress"
	"github.com/starpathlabs/starpath/internal/store"
)

var (
	// ErrNotFound is returned for ids the catalog does not carry.
	ErrNotFound = errors.New("cosmetic not found")

	// ErrAlreadyOwned is returned when buying a cosmetic twice. The second
	// attempt charges nothing.
	ErrAlreadyOwned = errors.New("cosmetic already owned")

	// ErrNotOwned is returned when equipping a cosmetic the traveler has
	// not bought or unboxed.
	ErrNotOwned = errors.New("cosmetic not owned")

	// ErrInsufficientTokens is returned when the balance cannot cover the
	// price.
	ErrInsufficientTokens = errors.New("not enough tokens")
)

// Config wires the shop's collaborators.
type Config struct {
	Progress progress.Store
	Events   store.EventRepo
	Bus      *bus.Bus
	Log      *logger.Logger
}

// Service sells and equips cosmetics against the progress document.
type Service struct {
	progress progress.Store
	events   store.EventRepo
	bus      *bus.Bus
	log      *logger.Logger
}

func NewService(cfg Config) *Service {
	return &Service{
		progress: cfg.Progress,
		events:   cfg.Events,
		bus:      cfg.Bus,
		log:      cfg.Log.With("component", "cosmetics"),
	}
}

// Purchase buys one cosmetic. Unlike module completions, a purchase is an
// exchange, so it only stands once the store accepts it: on a store failure
// the document is restored and the caller gets the error back. Ownership is
// written before the charge, so an interrupted purchase can never leave the
// traveler paid-but-empty-handed.
func (s *Service) Purchase(ctx context.Context, p *progress.UserProgress, id string) (Item, error) {
	item, ok := ByID(id)
	if !ok {
		return Item{}, fmt.Errorf("cosmetic %q: %w", id, ErrNotFound)
	}
	if p.Owns(id) {
		return Item{}, fmt.Errorf("cosmetic %q: %w", id, ErrAlreadyOwned)
	}
	if balance := p.TokenBalance(); balance < item.Price {
		return Item{}, fmt.Errorf("cosmetic %q costs %d, balance %d: %w",
			id, item.Price, balance, ErrInsufficientTokens)
	}

	before := p.UpdatedAt
	p.Cosmetics = append(p.Cosmetics, id)
	p.TokensSpent += item.Price
	p.UpdatedAt = time.Now().UTC()

	revert := func() {
		p.Cosmetics = slices.DeleteFunc(p.Cosmetics, func(c string) bool { return c == id })
		p.TokensSpent -= item.Price
		p.UpdatedAt = before
	}

	if err := s.progress.AppendToSet(ctx, p.UserID, progress.FieldCosmetics, id); err != nil {
		revert()
		return Item{}, fmt.Errorf("record ownership: %w", err)
	}
	if err := s.progress.Increment(ctx, p.UserID, progress.FieldTokensSpent, item.Price); err != nil {
		revert()
		return Item{}, fmt.Errorf("charge tokens: %w", err)
	}

	if err := s.events.AppendPurchase(ctx, store.PurchaseEventData{CosmeticID: id, Price: item.Price}); err != nil {
		s.log.Warn("record purchase", "cosmetic", id, "err", err)
	}

	s.bus.Publish(bus.Event{
		Type:    bus.CosmeticPurchased,
		UserID:  p.UserID,
		Payload: bus.CosmeticPurchasedPayload{CosmeticID: id, Price: item.Price},
	})
	s.log.Info("cosmetic purchased", "cosmetic", id, "price", item.Price, "balance", p.TokenBalance())
	return item, nil
}

// Equip puts an owned cosmetic into its slot, replacing whatever was there.
func (s *Service) Equip(ctx context.Context, p *progress.UserProgress, id string) (Item, error) {
	item, ok := ByID(id)
	if !ok {
		return Item{}, fmt.Errorf("cosmetic %q: %w", id, ErrNotFound)
	}
	if !p.Owns(id) {
		return Item{}, fmt.Errorf("cosmetic %q: %w", id, ErrNotOwned)
	}

	if p.Equipped == nil {
		p.Equipped = make(map[string]string)
	}
	prev, hadPrev := p.Equipped[item.Slot]
	before := p.UpdatedAt
	p.Equipped[item.Slot] = id
	p.UpdatedAt = time.Now().UTC()

	fields := map[string]any{
		progress.FieldEquipped:  p.Equipped,
		progress.FieldUpdatedAt: p.UpdatedAt,
	}
	if err := s.progress.Set(ctx, p.UserID, fields); err != nil {
		if hadPrev {
			p.Equipped[item.Slot] = prev
		} else {
			delete(p.Equipped, item.Slot)
		}
		p.UpdatedAt = before
		return Item{}, fmt.Errorf("equip %s: %w", item.Slot, err)
	}

	s.log.Info("cosmetic equipped", "cosmetic", id, "slot", item.Slot)
	return item, nil
}

// Owned resolves the traveler's cosmetics against the catalog. Ids no
// longer in the catalog are skipped.
func Owned(p *progress.UserProgress) []Item {
	out := make([]Item, 0, len(p.Cosmetics))
	for _, id := range p.Cosmetics {
		if item, ok := ByID(id); ok {
			out = append(out, item)
		}
	}
	return out
}
