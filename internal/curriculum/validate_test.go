package curriculum

import (
	"strings"
	"testing"
)

// makeTestGalaxies returns a minimal valid two-galaxy curriculum.
func makeTestGalaxies() []Galaxy {
	return []Galaxy{
		{ID: 1, Name: "Alpha", Modules: []Module{
			{ID: "a1", Title: "A1", Ordinal: 0, XPReward: 10, TokenReward: 1},
			{ID: "a2", Title: "A2", Ordinal: 1, XPReward: 10, TokenReward: 1},
		}},
		{ID: 2, Name: "Beta", Modules: []Module{
			{ID: "b1", Title: "B1", Ordinal: 0, XPReward: 10, TokenReward: 1},
		}},
	}
}

func TestNew_Valid(t *testing.T) {
	g, err := New(makeTestGalaxies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ModuleCount() != 3 {
		t.Errorf("got %d modules, want 3", g.ModuleCount())
	}
}

func TestNew_NoGalaxies(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatal("expected error for empty curriculum, got nil")
	}
	if !strings.Contains(err.Error(), "no galaxies") {
		t.Errorf("error should mention missing galaxies, got: %v", err)
	}
}

func TestNew_EmptyGalaxy(t *testing.T) {
	gals := makeTestGalaxies()
	gals[1].Modules = nil
	_, err := New(gals)
	if err == nil {
		t.Fatal("expected error for empty galaxy, got nil")
	}
	if !strings.Contains(err.Error(), "has no modules") {
		t.Errorf("error should mention the empty galaxy, got: %v", err)
	}
}

func TestNew_DuplicateModuleID(t *testing.T) {
	gals := makeTestGalaxies()
	gals[1].Modules[0].ID = "a1"
	_, err := New(gals)
	if err == nil {
		t.Fatal("expected error for duplicate id, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestNew_GalaxyIDsNotIncreasing(t *testing.T) {
	gals := makeTestGalaxies()
	gals[1].ID = 1
	_, err := New(gals)
	if err == nil {
		t.Fatal("expected error for non-increasing galaxy ids, got nil")
	}
	if !strings.Contains(err.Error(), "strictly increasing") {
		t.Errorf("error should mention ordering, got: %v", err)
	}
}

func TestNew_BadOrdinal(t *testing.T) {
	gals := makeTestGalaxies()
	gals[0].Modules[1].Ordinal = 5
	_, err := New(gals)
	if err == nil {
		t.Fatal("expected error for bad ordinal, got nil")
	}
	if !strings.Contains(err.Error(), "ordinal") {
		t.Errorf("error should mention the ordinal, got: %v", err)
	}
}

func TestNew_NegativeRewards(t *testing.T) {
	gals := makeTestGalaxies()
	gals[0].Modules[0].XPReward = -1
	gals[0].Modules[1].TokenReward = -1
	_, err := New(gals)
	if err == nil {
		t.Fatal("expected error for negative rewards, got nil")
	}
	if !strings.Contains(err.Error(), "negative XP reward") {
		t.Errorf("error should mention the XP reward, got: %v", err)
	}
	if !strings.Contains(err.Error(), "negative token reward") {
		t.Errorf("error should mention the token reward, got: %v", err)
	}
}

func TestNew_EmptyTitle(t *testing.T) {
	gals := makeTestGalaxies()
	gals[0].Modules[0].Title = ""
	_, err := New(gals)
	if err == nil {
		t.Fatal("expected error for empty title, got nil")
	}
	if !strings.Contains(err.Error(), "empty title") {
		t.Errorf("error should mention the title, got: %v", err)
	}
}

func TestNew_CombinesAllProblems(t *testing.T) {
	gals := makeTestGalaxies()
	gals[0].Modules[0].Title = ""
	gals[0].Modules[1].XPReward = -5
	gals[1].ID = 0
	_, err := New(gals)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"empty title", "negative XP reward", "strictly increasing"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("combined error missing %q, got: %v", want, err)
		}
	}
}
