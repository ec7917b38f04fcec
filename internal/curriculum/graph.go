package curriculum

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotFound reports a module or galaxy id that is not part of the graph.
// Callers treat it as a data-integrity fault, never a retryable condition.
var ErrNotFound = errors.New("not in curriculum")

// position locates a module inside the graph.
type position struct {
	galaxyIdx int // index into galaxies, not the galaxy id
	ordinal   int
}

// Graph is the progression graph: galaxies in play order, each holding its
// modules in completion order. Immutable once built.
type Graph struct {
	galaxies  []Galaxy
	byID      map[string]position
	galaxyIdx map[int]int // galaxy id → index into galaxies
	count     int
}

// New builds a Graph from the given galaxies. All structural problems are
// reported together in a single error.
func New(galaxies []Galaxy) (*Graph, error) {
	if err := validateGalaxies(galaxies); err != nil {
		return nil, err
	}

	g := &Graph{
		galaxies:  make([]Galaxy, len(galaxies)),
		byID:      make(map[string]position),
		galaxyIdx: make(map[int]int, len(galaxies)),
	}
	for gi, gal := range galaxies {
		gal.Modules = slices.Clone(gal.Modules)
		g.galaxies[gi] = gal
		g.galaxyIdx[gal.ID] = gi
		for mi, m := range gal.Modules {
			g.byID[m.ID] = position{galaxyIdx: gi, ordinal: mi}
			g.count++
		}
	}
	return g, nil
}

// Galaxies returns all galaxies in play order. The result is a defensive copy.
func (g *Graph) Galaxies() []Galaxy {
	out := make([]Galaxy, len(g.galaxies))
	for i, gal := range g.galaxies {
		gal.Modules = slices.Clone(gal.Modules)
		out[i] = gal
	}
	return out
}

// Module returns the module with the given id.
func (g *Graph) Module(id string) (Module, error) {
	pos, ok := g.byID[id]
	if !ok {
		return Module{}, fmt.Errorf("module %q: %w", id, ErrNotFound)
	}
	return g.galaxies[pos.galaxyIdx].Modules[pos.ordinal], nil
}

// Locate returns the galaxy id and ordinal of the module with the given id.
func (g *Graph) Locate(id string) (galaxyID, ordinal int, err error) {
	pos, ok := g.byID[id]
	if !ok {
		return 0, 0, fmt.Errorf("module %q: %w", id, ErrNotFound)
	}
	return g.galaxies[pos.galaxyIdx].ID, pos.ordinal, nil
}

// NextModule returns the module that follows the given one: the next ordinal
// in the same galaxy, or the first module of the next galaxy. ok is false at
// the end of the curriculum. Unknown ids are an error.
func (g *Graph) NextModule(id string) (Module, bool, error) {
	pos, ok := g.byID[id]
	if !ok {
		return Module{}, false, fmt.Errorf("module %q: %w", id, ErrNotFound)
	}

	gal := g.galaxies[pos.galaxyIdx]
	if pos.ordinal+1 < len(gal.Modules) {
		return gal.Modules[pos.ordinal+1], true, nil
	}
	if pos.galaxyIdx+1 < len(g.galaxies) {
		return g.galaxies[pos.galaxyIdx+1].Modules[0], true, nil
	}
	return Module{}, false, nil
}

// FirstModule returns the entry point of the curriculum.
func (g *Graph) FirstModule() Module {
	return g.galaxies[0].Modules[0]
}

// FirstGalaxy returns the galaxy every new learner starts in.
func (g *Graph) FirstGalaxy() Galaxy {
	out := g.galaxies[0]
	out.Modules = slices.Clone(out.Modules)
	return out
}

// GalaxyByID returns the galaxy with the given id.
func (g *Graph) GalaxyByID(id int) (Galaxy, error) {
	gi, ok := g.galaxyIdx[id]
	if !ok {
		return Galaxy{}, fmt.Errorf("galaxy %d: %w", id, ErrNotFound)
	}
	out := g.galaxies[gi]
	out.Modules = slices.Clone(out.Modules)
	return out, nil
}

// ModuleCount returns the total number of modules across all galaxies.
func (g *Graph) ModuleCount() int {
	return g.count
}

// GalaxyCompleted reports whether every module of the given galaxy is in the
// completed set. Unknown galaxy ids report false.
func (g *Graph) GalaxyCompleted(galaxyID int, completed map[string]bool) bool {
	gi, ok := g.galaxyIdx[galaxyID]
	if !ok {
		return false
	}
	for _, m := range g.galaxies[gi].Modules {
		if !completed[m.ID] {
			return false
		}
	}
	return true
}
