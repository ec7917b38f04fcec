package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestMemStore_GetNotFound(t *testing.T) {
	s := NewMemStore()
	_, err := s.Get(context.Background(), "0xabc")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error should wrap ErrNotFound, got: %v", err)
	}
}

func TestMemStore_SetCreatesDocument(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	err := s.Set(ctx, "0xabc", map[string]any{
		FieldCurrentModuleID: "what-is-blockchain",
		FieldCurrentGalaxyID: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := s.Get(ctx, "0xabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.UserID != "0xabc" {
		t.Errorf("got user id %q, want %q", doc.UserID, "0xabc")
	}
	if doc.CurrentModuleID != "what-is-blockchain" {
		t.Errorf("got current module %q, want %q", doc.CurrentModuleID, "what-is-blockchain")
	}
	if doc.CurrentGalaxyID != 1 {
		t.Errorf("got current galaxy %d, want 1", doc.CurrentGalaxyID)
	}
}

func TestMemStore_SetMergesFields(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if err := s.Set(ctx, "u", map[string]any{FieldCurrentModuleID: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Set(ctx, "u", map[string]any{FieldStreakLastActive: "2026-08-21"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := s.Get(ctx, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.CurrentModuleID != "a" {
		t.Errorf("merge lost current_module_id, got %q", doc.CurrentModuleID)
	}
	if doc.Streak.LastActiveDate != "2026-08-21" {
		t.Errorf("merge lost streak_last_active, got %q", doc.Streak.LastActiveDate)
	}
}

func TestMemStore_SetRejectsWrongType(t *testing.T) {
	s := NewMemStore()
	err := s.Set(context.Background(), "u", map[string]any{FieldXP: "lots"})
	if err == nil {
		t.Fatal("expected type error, got nil")
	}
}

func TestMemStore_SetRejectsUnknownField(t *testing.T) {
	s := NewMemStore()
	err := s.Set(context.Background(), "u", map[string]any{"nope": 1})
	if err == nil {
		t.Fatal("expected unknown-field error, got nil")
	}
}

func TestMemStore_AppendToSet_Union(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if err := s.AppendToSet(ctx, "u", FieldCompletedModules, "a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Duplicates and re-adds collapse.
	if err := s.AppendToSet(ctx, "u", FieldCompletedModules, "b", "c", "c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := s.Get(ctx, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.CompletedModules) != 3 {
		t.Errorf("got %d members, want 3: %v", len(doc.CompletedModules), doc.CompletedModules)
	}
	for _, id := range []string{"a", "b", "c"} {
		if !doc.Completed(id) {
			t.Errorf("set missing member %q", id)
		}
	}
}

func TestMemStore_AppendToSet_GalaxyIDs(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if err := s.AppendToSet(ctx, "u", FieldUnlockedGalaxies, IntMember(2), IntMember(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AppendToSet(ctx, "u", FieldUnlockedGalaxies, IntMember(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := s.Get(ctx, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.UnlockedGalaxies) != 2 {
		t.Fatalf("got %v, want two galaxies", doc.UnlockedGalaxies)
	}
	if doc.UnlockedGalaxies[0] != 1 || doc.UnlockedGalaxies[1] != 2 {
		t.Errorf("got %v, want [1 2]", doc.UnlockedGalaxies)
	}
}

func TestMemStore_AppendToSet_RejectsScalarField(t *testing.T) {
	s := NewMemStore()
	err := s.AppendToSet(context.Background(), "u", FieldXP, "10")
	if err == nil {
		t.Fatal("expected error for non-set field, got nil")
	}
}

func TestMemStore_Increment(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	for _, delta := range []int{40, 50, 10} {
		if err := s.Increment(ctx, "u", FieldXP, delta); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := s.Increment(ctx, "u", FieldTokensSpent, 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := s.Get(ctx, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.XP != 100 {
		t.Errorf("got xp %d, want 100", doc.XP)
	}
	if doc.TokensSpent != 30 {
		t.Errorf("got tokens spent %d, want 30", doc.TokensSpent)
	}
}

func TestMemStore_Increment_RejectsNonCounter(t *testing.T) {
	s := NewMemStore()
	err := s.Increment(context.Background(), "u", FieldCurrentModuleID, 1)
	if err == nil {
		t.Fatal("expected error for non-counter field, got nil")
	}
}

func TestMemStore_GetReturnsCopy(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	if err := s.AppendToSet(ctx, "u", FieldCompletedModules, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := s.Get(ctx, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc.CompletedModules[0] = "MUTATED"
	doc.Equipped["ship"] = "MUTATED"

	again, err := s.Get(ctx, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.CompletedModules[0] == "MUTATED" {
		t.Error("Get did not return a defensive copy of sets")
	}
	if len(again.Equipped) != 0 {
		t.Error("Get did not return a defensive copy of equipped")
	}
}

func TestMemStore_ConcurrentAppends(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.AppendToSet(ctx, "u", FieldCompletedModules, fmt.Sprintf("m-%02d", i))
		}()
	}
	wg.Wait()

	doc, err := s.Get(ctx, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.CompletedModules) != 50 {
		t.Errorf("got %d members, want 50", len(doc.CompletedModules))
	}
}

func TestMemStore_UpdatedAt(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()
	at := time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC)
	if err := s.Set(ctx, "u", map[string]any{FieldUpdatedAt: at}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := s.Get(ctx, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.UpdatedAt.Equal(at) {
		t.Errorf("got updated_at %v, want %v", doc.UpdatedAt, at)
	}
}
