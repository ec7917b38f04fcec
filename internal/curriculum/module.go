package curriculum

// Module is a single lesson unit inside a galaxy: flashcards, a quiz, and
// optionally an alien coding challenge.
type Module struct {
	ID           string
	Title        string
	Description  string
	Ordinal      int // 0-based position within its galaxy
	XPReward     int
	TokenReward  int
	HasChallenge bool
}

// Galaxy is an ordered group of modules. Galaxies unlock sequentially; the
// modules inside a galaxy unlock one after another.
type Galaxy struct {
	ID      int
	Name    string
	Modules []Module
}

// ModuleIDs returns the ids of the galaxy's modules in order.
func (g Galaxy) ModuleIDs() []string {
	ids := make([]string, len(g.Modules))
	for i, m := range g.Modules {
		ids[i] = m.ID
	}
	return ids
}
