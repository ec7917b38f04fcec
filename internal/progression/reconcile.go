// Package progression decides what a traveler can play next. It derives
// locked/current/completed state from the curriculum graph and the progress
// document, runs the completion pipeline that advances progress, and keeps
// the locally cached document reconciled with the progress store.
package progression

import (
	"github.com/starpathlabs/starpath/internal/curriculum"
	"github.com/starpathlabs/starpath/internal/progress"
)

// ModuleStatus is a module annotated with its derived state. The flags are
// recomputed on every call, never stored.
type ModuleStatus struct {
	curriculum.Module
	Locked    bool
	Current   bool
	Completed bool
}

// GalaxyStatus is a galaxy annotated with its derived state.
type GalaxyStatus struct {
	ID        int
	Name      string
	Unlocked  bool
	Completed bool
	Current   bool
	Modules   []ModuleStatus
}

// Reconcile computes the lock state of every galaxy and module from the
// graph and the progress document. It is pure: the document is never
// mutated and repeated calls give the same answer, so it serves both
// rendering and repair.
//
// The structural pass unlocks the first galaxy, any galaxy whose
// predecessor is fully completed, and any galaxy in the document's
// explicit unlock set; inside an unlocked galaxy the first module is open
// and each later module opens once the one before it is completed. Three
// overrides then resolve drift between the cached pointers and the
// completed set, in order: a completed module is always unlocked, the
// current module is always unlocked, and a galaxy holding the current
// module is forced open.
func Reconcile(g *curriculum.Graph, p *progress.UserProgress) []GalaxyStatus {
	completed := p.CompletedSet()

	galaxies := g.Galaxies()
	out := make([]GalaxyStatus, len(galaxies))
	prevCompleted := false
	for i, gal := range galaxies {
		st := GalaxyStatus{
			ID:       gal.ID,
			Name:     gal.Name,
			Unlocked: i == 0 || prevCompleted || p.GalaxyUnlocked(gal.ID),
			Modules:  make([]ModuleStatus, len(gal.Modules)),
		}

		allDone := true
		for k, m := range gal.Modules {
			ms := ModuleStatus{Module: m, Locked: true}
			if st.Unlocked && (k == 0 || completed[gal.Modules[k-1].ID]) {
				ms.Locked = false
			}
			if completed[m.ID] {
				ms.Locked = false
				ms.Completed = true
			} else {
				allDone = false
			}
			if m.ID == p.CurrentModuleID {
				ms.Locked = false
				ms.Current = true
				st.Current = true
			}
			st.Modules[k] = ms
		}
		st.Completed = allDone

		// A locked galaxy can never hold the current module.
		if st.Current && !st.Unlocked {
			st.Unlocked = true
		}

		out[i] = st
		prevCompleted = allDone
	}
	return out
}

// Lookup finds one module's status in a reconciled listing.
func Lookup(statuses []GalaxyStatus, moduleID string) (ModuleStatus, bool) {
	for _, gal := range statuses {
		for _, m := range gal.Modules {
			if m.ID == moduleID {
				return m, true
			}
		}
	}
	return ModuleStatus{}, false
}
