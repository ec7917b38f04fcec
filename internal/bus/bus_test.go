package bus

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/starpathlabs/starpath/internal/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishSubscribe(t *testing.T) {
	b := New(logger.Nop(), 4)
	defer b.Close()

	ch, cancel := b.Subscribe(ModuleCompleted)
	defer cancel()

	b.Publish(Event{
		Type:    ModuleCompleted,
		UserID:  "0xabc",
		Payload: ModuleCompletedPayload{ModuleID: "hash-functions", XPAwarded: 50},
	})

	select {
	case e := <-ch:
		if e.Type != ModuleCompleted {
			t.Errorf("got type %q, want %q", e.Type, ModuleCompleted)
		}
		if e.UserID != "0xabc" {
			t.Errorf("got user %q, want %q", e.UserID, "0xabc")
		}
		if e.At.IsZero() {
			t.Error("event should be stamped with a time")
		}
		p, ok := e.Payload.(ModuleCompletedPayload)
		if !ok {
			t.Fatalf("got payload %T", e.Payload)
		}
		if p.ModuleID != "hash-functions" || p.XPAwarded != 50 {
			t.Errorf("got payload %+v", p)
		}
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}
}

func TestSubscribe_TypeFilter(t *testing.T) {
	b := New(logger.Nop(), 4)
	defer b.Close()

	ch, cancel := b.Subscribe(LevelUp)
	defer cancel()

	b.Publish(Event{Type: ModuleCompleted, UserID: "u"})
	b.Publish(Event{Type: LevelUp, UserID: "u", Payload: LevelUpPayload{Level: 2}})

	select {
	case e := <-ch:
		if e.Type != LevelUp {
			t.Errorf("filter leaked event of type %q", e.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}

	select {
	case e, ok := <-ch:
		if ok {
			t.Errorf("unexpected second event: %+v", e)
		}
	default:
	}
}

func TestSubscribe_NoTypesMeansAll(t *testing.T) {
	b := New(logger.Nop(), 4)
	defer b.Close()

	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(Event{Type: ModuleCompleted, UserID: "u"})
	b.Publish(Event{Type: GalaxyUnlocked, UserID: "u"})

	for _, want := range []EventType{ModuleCompleted, GalaxyUnlocked} {
		select {
		case e := <-ch:
			if e.Type != want {
				t.Errorf("got type %q, want %q", e.Type, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("event %q never delivered", want)
		}
	}
}

func TestPublish_NeverBlocksOnFullSubscriber(t *testing.T) {
	b := New(logger.Nop(), 1)
	defer b.Close()

	_, cancel := b.Subscribe(ModuleCompleted)
	defer cancel()

	// Nobody drains the channel; the second publish must drop, not stall.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 10 {
			b.Publish(Event{Type: ModuleCompleted, UserID: "u"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a saturated subscriber")
	}
}

func TestPublish_NoSubscribers(t *testing.T) {
	b := New(logger.Nop(), 4)
	defer b.Close()

	// Must not panic or block.
	b.Publish(Event{Type: ModuleCompleted, UserID: "u"})
}

func TestCancel_Idempotent(t *testing.T) {
	b := New(logger.Nop(), 4)
	defer b.Close()

	ch, cancel := b.Subscribe(ModuleCompleted)
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after cancel")
	}

	// Publishing after cancel reaches nobody but stays safe.
	b.Publish(Event{Type: ModuleCompleted, UserID: "u"})
}

func TestClose_ClosesSubscriberChannels(t *testing.T) {
	b := New(logger.Nop(), 4)
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel after bus Close")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}

	// Publish and a late cancel after Close are no-ops.
	b.Publish(Event{Type: LevelUp, UserID: "u"})
	cancel()
}

func TestSubscribe_AfterClose(t *testing.T) {
	b := New(logger.Nop(), 4)
	b.Close()

	ch, cancel := b.Subscribe(ModuleCompleted)
	defer cancel()
	if _, ok := <-ch; ok {
		t.Error("subscription on a closed bus should be dead on arrival")
	}
}
