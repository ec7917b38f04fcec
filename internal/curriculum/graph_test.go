package curriculum

import (
	"errors"
	"testing"
)

func TestModule_Exists(t *testing.T) {
	g := Default()
	m, err := g.Module("objects-ownership")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Title != "Objects and Ownership" {
		t.Errorf("got title %q, want %q", m.Title, "Objects and Ownership")
	}
	if !m.HasChallenge {
		t.Error("objects-ownership should have a coding challenge")
	}
	if m.XPReward <= 0 {
		t.Errorf("got XP reward %d, want > 0", m.XPReward)
	}
}

func TestModule_NotFound(t *testing.T) {
	g := Default()
	_, err := g.Module("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown module, got nil")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error should wrap ErrNotFound, got: %v", err)
	}
}

func TestModuleCount(t *testing.T) {
	g := Default()
	if got := g.ModuleCount(); got != 24 {
		t.Errorf("got %d modules, want 24", got)
	}
}

func TestGalaxies_Order(t *testing.T) {
	g := Default()
	gals := g.Galaxies()
	if len(gals) != 5 {
		t.Fatalf("got %d galaxies, want 5", len(gals))
	}
	for i := 1; i < len(gals); i++ {
		if gals[i].ID <= gals[i-1].ID {
			t.Errorf("galaxy ids not increasing: %d follows %d", gals[i].ID, gals[i-1].ID)
		}
	}
	for _, gal := range gals {
		for j, m := range gal.Modules {
			if m.Ordinal != j {
				t.Errorf("galaxy %d module %q: got ordinal %d, want %d", gal.ID, m.ID, m.Ordinal, j)
			}
		}
	}
}

func TestFirstModule(t *testing.T) {
	g := Default()
	first := g.FirstModule()
	if first.ID != "what-is-blockchain" {
		t.Errorf("got first module %q, want %q", first.ID, "what-is-blockchain")
	}
	if first.Ordinal != 0 {
		t.Errorf("got ordinal %d, want 0", first.Ordinal)
	}
	if g.FirstGalaxy().ID != 1 {
		t.Errorf("got first galaxy %d, want 1", g.FirstGalaxy().ID)
	}
}

func TestLocate(t *testing.T) {
	g := Default()
	galaxyID, ordinal, err := g.Locate("digital-signatures")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if galaxyID != 2 {
		t.Errorf("got galaxy %d, want 2", galaxyID)
	}
	if ordinal != 2 {
		t.Errorf("got ordinal %d, want 2", ordinal)
	}

	_, _, err = g.Locate("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error should wrap ErrNotFound, got: %v", err)
	}
}

func TestNextModule_WithinGalaxy(t *testing.T) {
	g := Default()
	next, ok, err := g.NextModule("what-is-blockchain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a next module")
	}
	if next.ID != "blocks-and-chains" {
		t.Errorf("got next %q, want %q", next.ID, "blocks-and-chains")
	}
}

func TestNextModule_CrossesGalaxyBoundary(t *testing.T) {
	g := Default()
	next, ok, err := g.NextModule("nodes-and-networks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a next module")
	}
	if next.ID != "hash-functions" {
		t.Errorf("got next %q, want %q", next.ID, "hash-functions")
	}
	if next.Ordinal != 0 {
		t.Errorf("got ordinal %d, want 0 (first of next galaxy)", next.Ordinal)
	}
}

func TestNextModule_EndOfCurriculum(t *testing.T) {
	g := Default()
	_, ok, err := g.NextModule("staking-and-yield")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("last module should have no successor")
	}
}

func TestNextModule_Unknown(t *testing.T) {
	g := Default()
	_, _, err := g.NextModule("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error should wrap ErrNotFound, got: %v", err)
	}
}

func TestGalaxyByID(t *testing.T) {
	g := Default()
	gal, err := g.GalaxyByID(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gal.Name != "Move Constellation" {
		t.Errorf("got name %q, want %q", gal.Name, "Move Constellation")
	}
	if len(gal.Modules) != 5 {
		t.Errorf("got %d modules, want 5", len(gal.Modules))
	}

	_, err = g.GalaxyByID(99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error should wrap ErrNotFound, got: %v", err)
	}
}

func TestGalaxyCompleted(t *testing.T) {
	g := Default()
	gal, err := g.GalaxyByID(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	completed := map[string]bool{}
	if g.GalaxyCompleted(1, completed) {
		t.Error("empty completed set should not complete galaxy 1")
	}

	for _, id := range gal.ModuleIDs()[:len(gal.Modules)-1] {
		completed[id] = true
	}
	if g.GalaxyCompleted(1, completed) {
		t.Error("galaxy 1 should not be complete with one module missing")
	}

	completed[gal.Modules[len(gal.Modules)-1].ID] = true
	if !g.GalaxyCompleted(1, completed) {
		t.Error("galaxy 1 should be complete with all modules completed")
	}

	if g.GalaxyCompleted(99, completed) {
		t.Error("unknown galaxy should never report completed")
	}
}

func TestGalaxies_ReturnsCopy(t *testing.T) {
	g := Default()
	a := g.Galaxies()
	a[0].Modules[0].Title = "MUTATED"
	b := g.Galaxies()
	if b[0].Modules[0].Title == "MUTATED" {
		t.Error("Galaxies did not return a defensive copy")
	}
}

func TestDefault_Singleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same graph on every call")
	}
}
