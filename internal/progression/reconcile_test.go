package progression

import (
	"reflect"
	"testing"

	"github.com/starpathlabs/starpath/internal/curriculum"
	"github.com/starpathlabs/starpath/internal/progress"
)

// testGraph builds a two-galaxy curriculum: Genesis holds the first two
// modules, Consensus the next two.
func testGraph(t *testing.T) *curriculum.Graph {
	t.Helper()
	g, err := curriculum.New([]curriculum.Galaxy{
		{ID: 1, Name: "Genesis", Modules: []curriculum.Module{
			{ID: "what-is-blockchain", Title: "What is a Blockchain?", Ordinal: 0, XPReward: 60, TokenReward: 5},
			{ID: "blocks-and-chains", Title: "Blocks and Chains", Ordinal: 1, XPReward: 60, TokenReward: 5, HasChallenge: true},
		}},
		{ID: 2, Name: "Consensus", Modules: []curriculum.Module{
			{ID: "proof-of-work", Title: "Proof of Work", Ordinal: 0, XPReward: 80, TokenReward: 8},
			{ID: "proof-of-stake", Title: "Proof of Stake", Ordinal: 1, XPReward: 80, TokenReward: 8},
		}},
	})
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func testDoc(completed []string, current string, galaxyID int, unlocked []int) *progress.UserProgress {
	return &progress.UserProgress{
		UserID:           "0xWALLET",
		CompletedModules: completed,
		CurrentModuleID:  current,
		CurrentGalaxyID:  galaxyID,
		UnlockedGalaxies: unlocked,
	}
}

func statusFor(t *testing.T, statuses []GalaxyStatus, moduleID string) ModuleStatus {
	t.Helper()
	ms, ok := Lookup(statuses, moduleID)
	if !ok {
		t.Fatalf("module %q not in reconciled listing", moduleID)
	}
	return ms
}

func galaxyFor(t *testing.T, statuses []GalaxyStatus, id int) GalaxyStatus {
	t.Helper()
	for _, gal := range statuses {
		if gal.ID == id {
			return gal
		}
	}
	t.Fatalf("galaxy %d not in reconciled listing", id)
	return GalaxyStatus{}
}

func TestReconcileFreshUser(t *testing.T) {
	g := testGraph(t)
	doc := testDoc(nil, "what-is-blockchain", 1, []int{1})

	statuses := Reconcile(g, doc)

	first := statusFor(t, statuses, "what-is-blockchain")
	if first.Locked || !first.Current || first.Completed {
		t.Errorf("first module = %+v, want unlocked and current", first)
	}
	second := statusFor(t, statuses, "blocks-and-chains")
	if !second.Locked {
		t.Error("second module should be locked before the first is completed")
	}
	if gal := galaxyFor(t, statuses, 2); gal.Unlocked {
		t.Error("second galaxy should be locked for a fresh user")
	}
	if gal := galaxyFor(t, statuses, 1); !gal.Unlocked || !gal.Current || gal.Completed {
		t.Errorf("first galaxy = %+v, want unlocked and current", gal)
	}
}

func TestReconcileAfterFirstCompletion(t *testing.T) {
	g := testGraph(t)
	doc := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})

	statuses := Reconcile(g, doc)

	first := statusFor(t, statuses, "what-is-blockchain")
	if !first.Completed || first.Locked {
		t.Errorf("first module = %+v, want completed and unlocked", first)
	}
	second := statusFor(t, statuses, "blocks-and-chains")
	if second.Locked || !second.Current {
		t.Errorf("second module = %+v, want unlocked and current", second)
	}
	if gal := galaxyFor(t, statuses, 2); gal.Unlocked {
		t.Error("second galaxy should stay locked with one module left")
	}
}

func TestReconcileGalaxyUnlocksWhenPreviousCompleted(t *testing.T) {
	g := testGraph(t)
	doc := testDoc([]string{"what-is-blockchain", "blocks-and-chains"}, "proof-of-work", 2, []int{1, 2})

	statuses := Reconcile(g, doc)

	gal1 := galaxyFor(t, statuses, 1)
	if !gal1.Completed {
		t.Error("first galaxy should be completed")
	}
	gal2 := galaxyFor(t, statuses, 2)
	if !gal2.Unlocked || !gal2.Current {
		t.Errorf("second galaxy = %+v, want unlocked and current", gal2)
	}
	third := statusFor(t, statuses, "proof-of-work")
	if third.Locked || !third.Current {
		t.Errorf("third module = %+v, want unlocked and current", third)
	}
	if fourth := statusFor(t, statuses, "proof-of-stake"); !fourth.Locked {
		t.Error("fourth module should wait for the third")
	}
}

func TestReconcileExplicitUnlockSet(t *testing.T) {
	g := testGraph(t)
	// Galaxy 2 explicitly unlocked without galaxy 1 being done.
	doc := testDoc(nil, "what-is-blockchain", 1, []int{1, 2})

	statuses := Reconcile(g, doc)

	gal2 := galaxyFor(t, statuses, 2)
	if !gal2.Unlocked {
		t.Error("explicitly unlocked galaxy should be open")
	}
	if third := statusFor(t, statuses, "proof-of-work"); third.Locked {
		t.Error("first module of an explicitly unlocked galaxy should be open")
	}
	if fourth := statusFor(t, statuses, "proof-of-stake"); !fourth.Locked {
		t.Error("later modules still wait on their predecessor")
	}
}

func TestReconcileCompletedForcedUnlocked(t *testing.T) {
	g := testGraph(t)
	// Drifted document: the second module completed without the first.
	doc := testDoc([]string{"blocks-and-chains"}, "what-is-blockchain", 1, []int{1})

	statuses := Reconcile(g, doc)

	second := statusFor(t, statuses, "blocks-and-chains")
	if second.Locked || !second.Completed {
		t.Errorf("completed module = %+v, want unlocked regardless of order", second)
	}
	if gal := galaxyFor(t, statuses, 2); gal.Unlocked {
		t.Error("second galaxy should stay locked while the first is incomplete")
	}
}

func TestReconcileRepairsCurrentInLockedGalaxy(t *testing.T) {
	g := testGraph(t)
	// Stale unlock set: the pointer moved into galaxy 2 but the explicit
	// unlock never persisted.
	doc := testDoc(nil, "proof-of-work", 2, []int{1})

	statuses := Reconcile(g, doc)

	gal2 := galaxyFor(t, statuses, 2)
	if !gal2.Unlocked {
		t.Error("galaxy holding the current module must be forced open")
	}
	third := statusFor(t, statuses, "proof-of-work")
	if third.Locked || !third.Current {
		t.Errorf("current module = %+v, want unlocked and current", third)
	}
	if fourth := statusFor(t, statuses, "proof-of-stake"); !fourth.Locked {
		t.Error("force-unlock covers the galaxy, not its later modules")
	}
}

func TestReconcileNoCurrentWhileLocked(t *testing.T) {
	g := testGraph(t)
	docs := []*progress.UserProgress{
		testDoc(nil, "what-is-blockchain", 1, []int{1}),
		testDoc(nil, "proof-of-stake", 2, nil),
		testDoc([]string{"blocks-and-chains"}, "proof-of-work", 2, nil),
		testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1}),
		testDoc([]string{"what-is-blockchain", "blocks-and-chains", "proof-of-work", "proof-of-stake"}, "proof-of-stake", 2, []int{1, 2}),
		testDoc(nil, "", 1, nil),
	}

	for _, doc := range docs {
		for _, gal := range Reconcile(g, doc) {
			for _, m := range gal.Modules {
				if m.Current && m.Locked {
					t.Errorf("doc %+v: module %s is current while locked", doc, m.ID)
				}
				if m.Current && !gal.Unlocked {
					t.Errorf("doc %+v: module %s is current inside locked galaxy %d", doc, m.ID, gal.ID)
				}
			}
		}
	}
}

func TestReconcileGalaxyUnlockCausality(t *testing.T) {
	g := testGraph(t)
	docs := []*progress.UserProgress{
		testDoc(nil, "what-is-blockchain", 1, []int{1}),
		testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1}),
		testDoc([]string{"what-is-blockchain", "blocks-and-chains"}, "proof-of-work", 2, []int{1}),
		testDoc(nil, "", 1, []int{1, 2}),
	}

	for _, doc := range docs {
		completed := doc.CompletedSet()
		statuses := Reconcile(g, doc)
		for i, gal := range statuses {
			if i == 0 || !gal.Unlocked || gal.Current {
				continue
			}
			prevDone := true
			for _, m := range statuses[i-1].Modules {
				if !completed[m.ID] {
					prevDone = false
				}
			}
			if !prevDone && !doc.GalaxyUnlocked(gal.ID) {
				t.Errorf("doc %+v: galaxy %d unlocked without cause", doc, gal.ID)
			}
		}
	}
}

func TestReconcileIsPure(t *testing.T) {
	g := testGraph(t)
	doc := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})
	before := doc.Clone()

	first := Reconcile(g, doc)
	second := Reconcile(g, doc)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated reconciliation changed its answer")
	}
	if !reflect.DeepEqual(doc, before) {
		t.Error("reconciliation mutated the document")
	}
}
