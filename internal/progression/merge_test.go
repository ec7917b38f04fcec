package progression

import (
	"slices"
	"testing"
	"time"

	"github.com/starpathlabs/starpath/internal/progress"
)

func TestMergeUnionsSetsAndKeepsMaxCounters(t *testing.T) {
	g := testGraph(t)

	local := testDoc([]string{"what-is-blockchain", "blocks-and-chains"}, "proof-of-work", 2, []int{1, 2})
	local.XP = 120
	local.TokensEarned = 10
	local.Cosmetics = []string{"star-sticker"}
	local.UpdatedAt = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	remote := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})
	remote.XP = 60
	remote.TokensEarned = 5
	remote.TokensSpent = 2
	remote.UpdatedAt = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	merged := Merge(g, local, remote)

	if merged.XP != 120 {
		t.Errorf("XP = %d, want 120", merged.XP)
	}
	if merged.TokensEarned != 10 || merged.TokensSpent != 2 {
		t.Errorf("tokens = %d earned / %d spent, want 10 / 2", merged.TokensEarned, merged.TokensSpent)
	}
	for _, id := range []string{"what-is-blockchain", "blocks-and-chains"} {
		if !merged.Completed(id) {
			t.Errorf("merged should include completed module %s", id)
		}
	}
	if !slices.Equal(merged.UnlockedGalaxies, []int{1, 2}) {
		t.Errorf("unlocked galaxies = %v, want [1 2]", merged.UnlockedGalaxies)
	}
	if !merged.Owns("star-sticker") {
		t.Error("merged should keep locally owned cosmetics")
	}
	if !merged.UpdatedAt.Equal(local.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want the later local time", merged.UpdatedAt)
	}
}

func TestMergeAdvancesPointerPastCompletedModule(t *testing.T) {
	g := testGraph(t)

	// Offline play got ahead: the store still points at a module the
	// local copy already finished.
	local := testDoc([]string{"what-is-blockchain", "blocks-and-chains"}, "proof-of-work", 2, []int{1, 2})
	remote := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})

	merged := Merge(g, local, remote)

	if merged.CurrentModuleID != "proof-of-work" {
		t.Errorf("current module = %q, want proof-of-work", merged.CurrentModuleID)
	}
	if merged.CurrentGalaxyID != 2 {
		t.Errorf("current galaxy = %d, want 2", merged.CurrentGalaxyID)
	}
}

func TestMergeKeepsValidRemotePointer(t *testing.T) {
	g := testGraph(t)

	local := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})
	remote := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})

	merged := Merge(g, local, remote)

	if merged.CurrentModuleID != "blocks-and-chains" || merged.CurrentGalaxyID != 1 {
		t.Errorf("pointer = %q in galaxy %d, want blocks-and-chains in galaxy 1",
			merged.CurrentModuleID, merged.CurrentGalaxyID)
	}
}

func TestMergeRepairsUnknownPointer(t *testing.T) {
	g := testGraph(t)

	local := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})
	remote := testDoc([]string{"what-is-blockchain"}, "retired-module", 9, []int{1})

	merged := Merge(g, local, remote)

	if merged.CurrentModuleID != "blocks-and-chains" {
		t.Errorf("current module = %q, want the first open module", merged.CurrentModuleID)
	}
	if merged.CurrentGalaxyID != 1 {
		t.Errorf("current galaxy = %d, want 1", merged.CurrentGalaxyID)
	}
}

func TestMergeStreakLatestSideWins(t *testing.T) {
	g := testGraph(t)

	local := testDoc(nil, "what-is-blockchain", 1, []int{1})
	local.Streak = progress.StreakState{Count: 8, LastActiveDate: "2026-03-10", ClaimedMilestones: []int{7}}

	remote := testDoc(nil, "what-is-blockchain", 1, []int{1})
	remote.Streak = progress.StreakState{Count: 3, LastActiveDate: "2026-03-08", ClaimedMilestones: []int{14}}

	merged := Merge(g, local, remote)

	if merged.Streak.Count != 8 || merged.Streak.LastActiveDate != "2026-03-10" {
		t.Errorf("streak = %+v, want the later local streak", merged.Streak)
	}
	if !slices.Equal(merged.Streak.ClaimedMilestones, []int{7, 14}) {
		t.Errorf("claims = %v, want both sides kept", merged.Streak.ClaimedMilestones)
	}
}

func TestMergeEquippedNewerDocumentWins(t *testing.T) {
	g := testGraph(t)

	local := testDoc(nil, "what-is-blockchain", 1, []int{1})
	local.Equipped = map[string]string{"trail": "nebula-trail", "badge": "comet-badge"}
	local.UpdatedAt = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	remote := testDoc(nil, "what-is-blockchain", 1, []int{1})
	remote.Equipped = map[string]string{"trail": "aurora-skin"}
	remote.UpdatedAt = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	merged := Merge(g, local, remote)

	if merged.Equipped["trail"] != "nebula-trail" {
		t.Errorf("trail slot = %q, want the newer local choice", merged.Equipped["trail"])
	}
	if merged.Equipped["badge"] != "comet-badge" {
		t.Errorf("badge slot = %q, want slots only one side has kept", merged.Equipped["badge"])
	}
}

func TestMergeNilSides(t *testing.T) {
	g := testGraph(t)
	doc := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})

	if got := Merge(g, nil, doc); got.CurrentModuleID != "blocks-and-chains" {
		t.Errorf("nil local: pointer = %q, want blocks-and-chains", got.CurrentModuleID)
	}
	if got := Merge(g, doc, nil); got.CurrentModuleID != "blocks-and-chains" {
		t.Errorf("nil remote: pointer = %q, want blocks-and-chains", got.CurrentModuleID)
	}
	if got := Merge(g, nil, nil); got != nil {
		t.Errorf("both nil: got %+v, want nil", got)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	g := testGraph(t)

	local := testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1})
	remote := testDoc(nil, "what-is-blockchain", 1, []int{1})
	localBefore := local.Clone()
	remoteBefore := remote.Clone()

	merged := Merge(g, local, remote)
	merged.CompletedModules = append(merged.CompletedModules, "proof-of-work")
	merged.UnlockedGalaxies = append(merged.UnlockedGalaxies, 2)
	merged.Equipped["trail"] = "nebula-trail"

	if got, want := len(local.CompletedModules), len(localBefore.CompletedModules); got != want {
		t.Errorf("local completed mutated: %d modules, want %d", got, want)
	}
	if got, want := len(remote.CompletedModules), len(remoteBefore.CompletedModules); got != want {
		t.Errorf("remote completed mutated: %d modules, want %d", got, want)
	}
	if len(remote.Equipped) != len(remoteBefore.Equipped) {
		t.Error("remote equipped map mutated through the merge result")
	}
}

func TestMergeMonotonic(t *testing.T) {
	g := testGraph(t)

	cases := []struct{ local, remote *progress.UserProgress }{
		{
			testDoc([]string{"what-is-blockchain"}, "blocks-and-chains", 1, []int{1}),
			testDoc(nil, "what-is-blockchain", 1, []int{1}),
		},
		{
			testDoc([]string{"what-is-blockchain", "blocks-and-chains"}, "proof-of-work", 2, []int{1, 2}),
			testDoc([]string{"what-is-blockchain", "blocks-and-chains", "proof-of-work"}, "proof-of-stake", 2, []int{1, 2}),
		},
	}
	for _, tc := range cases {
		tc.local.XP = 60
		tc.remote.XP = 200
		merged := Merge(g, tc.local, tc.remote)

		if merged.XP < tc.local.XP || merged.XP < tc.remote.XP {
			t.Errorf("merged XP %d went below an input", merged.XP)
		}
		for _, id := range tc.local.CompletedModules {
			if !merged.Completed(id) {
				t.Errorf("merge lost local completion %s", id)
			}
		}
		for _, id := range tc.remote.CompletedModules {
			if !merged.Completed(id) {
				t.Errorf("merge lost remote completion %s", id)
			}
		}
	}
}
