package progression

import (
	"slices"

	"github.com/starpathlabs/starpath/internal/curriculum"
	"github.com/starpathlabs/starpath/internal/progress"
)

// Merge folds a locally cached document and the persisted one into a single
// view that never loses progress: set fields union, counters keep the larger
// value, and the streak follows whichever side checked in last. The
// persisted current-module pointer is preferred, then repaired if it has
// drifted. Either input may be nil; the inputs themselves are not mutated.
func Merge(g *curriculum.Graph, local, remote *progress.UserProgress) *progress.UserProgress {
	if local == nil && remote == nil {
		return nil
	}
	if local == nil || remote == nil {
		out := local
		if out == nil {
			out = remote
		}
		out = out.Clone()
		RepairPointer(g, out)
		return out
	}

	out := remote.Clone()
	out.CompletedModules = unionStrings(out.CompletedModules, local.CompletedModules)
	out.Cosmetics = unionStrings(out.Cosmetics, local.Cosmetics)
	out.UnlockedGalaxies = unionInts(out.UnlockedGalaxies, local.UnlockedGalaxies)
	out.XP = max(out.XP, local.XP)
	out.TokensEarned = max(out.TokensEarned, local.TokensEarned)
	out.TokensSpent = max(out.TokensSpent, local.TokensSpent)
	out.Streak = mergeStreak(local.Streak, remote.Streak)
	if local.UpdatedAt.After(out.UpdatedAt) {
		out.UpdatedAt = local.UpdatedAt
	}

	// Equipped merges per slot, the newer document winning conflicts.
	if out.Equipped == nil {
		out.Equipped = make(map[string]string)
	}
	localNewer := local.UpdatedAt.After(remote.UpdatedAt)
	for slot, id := range local.Equipped {
		if localNewer || out.Equipped[slot] == "" {
			out.Equipped[slot] = id
		}
	}

	if out.CurrentModuleID == "" {
		out.CurrentModuleID = local.CurrentModuleID
		out.CurrentGalaxyID = local.CurrentGalaxyID
	}
	RepairPointer(g, out)
	return out
}

// mergeStreak keeps the streak from whichever side was active last; claimed
// milestones from both sides are kept either way.
func mergeStreak(local, remote progress.StreakState) progress.StreakState {
	out := remote
	// LastActiveDate is 2006-01-02, so string order is day order.
	switch {
	case local.LastActiveDate > remote.LastActiveDate:
		out = local
	case local.LastActiveDate == remote.LastActiveDate && local.Count > remote.Count:
		out = local
	}
	out.ClaimedMilestones = unionInts(remote.ClaimedMilestones, local.ClaimedMilestones)
	return out
}

// RepairPointer moves a missing or drifted current-module pointer onto
// reachable ground. A pointer on a not-yet-completed module that reconciles
// as unlocked keeps its place; anything else lands on the first module in
// graph order that is not completed. Once the whole curriculum is done the
// pointer parks on its module (or the final one) with nothing left to
// advance to.
func RepairPointer(g *curriculum.Graph, p *progress.UserProgress) {
	completed := p.CompletedSet()

	if p.CurrentModuleID != "" && !completed[p.CurrentModuleID] && pointerOpen(g, p) {
		if galaxyID, _, err := g.Locate(p.CurrentModuleID); err == nil {
			p.CurrentGalaxyID = galaxyID
		}
		return
	}

	for _, gal := range g.Galaxies() {
		for _, m := range gal.Modules {
			if !completed[m.ID] {
				p.CurrentModuleID = m.ID
				p.CurrentGalaxyID = gal.ID
				return
			}
		}
	}

	// Everything is completed. Keep a known pointer, else park on the
	// last module.
	if p.CurrentModuleID != "" {
		if galaxyID, _, err := g.Locate(p.CurrentModuleID); err == nil {
			p.CurrentGalaxyID = galaxyID
			return
		}
	}
	galaxies := g.Galaxies()
	last := galaxies[len(galaxies)-1]
	p.CurrentModuleID = last.Modules[len(last.Modules)-1].ID
	p.CurrentGalaxyID = last.ID
}

// pointerOpen reports whether the document's current module would be
// unlocked even without the current-module override, which is what
// separates a legitimate pointer from a drifted one.
func pointerOpen(g *curriculum.Graph, p *progress.UserProgress) bool {
	probe := p.Clone()
	probe.CurrentModuleID = ""
	ms, ok := Lookup(Reconcile(g, probe), p.CurrentModuleID)
	return ok && !ms.Locked
}

func unionStrings(base, extra []string) []string {
	out := slices.Clone(base)
	for _, v := range extra {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func unionInts(base, extra []int) []int {
	out := slices.Clone(base)
	for _, v := range extra {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}
