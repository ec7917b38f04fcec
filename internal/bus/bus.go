// Package bus carries session signals between the progression core and
// whoever is listening. Publishing is fire-and-forget: the core never
// depends on subscribers existing or keeping up.
package bus

import (
	"sync"
	"time"

	"github.com/starpathlabs/starpath/internal/logger"
)

// EventType identifies a session signal.
type EventType string

const (
	ModuleCompleted    EventType = "module-completed"
	GalaxyUnlocked     EventType = "galaxy-unlocked"
	LevelUp            EventType = "level-up"
	DailyStreakChecked EventType = "daily-streak-checked"
	BoxOpened          EventType = "box-opened"
	MilestoneClaimed   EventType = "milestone-claimed"
	CosmeticPurchased  EventType = "cosmetic-purchased"
)

// Event is one session signal.
type Event struct {
	Type    EventType
	UserID  string
	At      time.Time
	Payload any
}

// Payloads carried by the core event types.
type (
	ModuleCompletedPayload struct {
		ModuleID    string
		ModuleTitle string
		XPAwarded   int
	}
	GalaxyUnlockedPayload struct {
		GalaxyID int
		Name     string
	}
	LevelUpPayload struct {
		Level int
	}
	StreakCheckedPayload struct {
		Count     int
		Counted   bool
		Milestone int
	}
	BoxOpenedPayload struct {
		BoxID      string
		Rarity     string
		Tokens     int
		CosmeticID string
	}
	MilestoneClaimedPayload struct {
		Milestone int
		BoxID     string
	}
	CosmeticPurchasedPayload struct {
		CosmeticID string
		Price      int
	}
)

// subscriber owns one delivery channel and the set of types it wants.
type subscriber struct {
	types map[EventType]bool // empty means all types
	ch    chan Event
}

func (s *subscriber) wants(t EventType) bool {
	return len(s.types) == 0 || s.types[t]
}

// Bus is an in-process publish/subscribe hub. Each subscriber gets its own
// buffered channel; a saturated subscriber loses events rather than ever
// stalling a publisher.
type Bus struct {
	mu     sync.RWMutex
	log    *logger.Logger
	subs   map[*subscriber]bool
	buffer int
	closed bool
}

// New builds a Bus whose subscriber channels buffer the given number of
// events.
func New(log *logger.Logger, buffer int) *Bus {
	if buffer < 1 {
		buffer = 16
	}
	return &Bus{
		log:    log.With("component", "bus"),
		subs:   make(map[*subscriber]bool),
		buffer: buffer,
	}
}

// Publish delivers the event to every matching subscriber without blocking.
// A zero At is stamped with the current time.
func (b *Bus) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for sub := range b.subs {
		if !sub.wants(e.Type) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			b.log.Warn("dropping event, subscriber buffer full", "type", e.Type)
		}
	}
}

// Subscribe registers interest in the given event types; with none named,
// every event is delivered. The returned cancel function unregisters the
// subscriber and closes its channel, and is safe to call more than once.
func (b *Bus) Subscribe(types ...EventType) (<-chan Event, func()) {
	sub := &subscriber{
		types: make(map[EventType]bool, len(types)),
		ch:    make(chan Event, b.buffer),
	}
	for _, t := range types {
		sub.types[t] = true
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	b.subs[sub] = true
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if b.closed {
				return
			}
			delete(b.subs, sub)
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Close drops all subscribers and closes their channels. Publishing after
// Close is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub.ch)
	}
	b.subs = make(map[*subscriber]bool)
}
