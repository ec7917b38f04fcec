package rewards

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadyOpened is returned when opening a box that was opened before.
var ErrAlreadyOpened = errors.New("box already opened")

// Box is a mystery box granted for a streak milestone or a finished galaxy.
type Box struct {
	ID        string
	Source    string
	Rarity    Rarity
	GrantedAt time.Time
	OpenedAt  time.Time // zero until opened
}

// NewBox mints a box with a fresh UUID.
func NewBox(source string, rarity Rarity, now time.Time) Box {
	return Box{
		ID:        uuid.NewString(),
		Source:    source,
		Rarity:    rarity,
		GrantedAt: now,
	}
}

// Opened reports whether the box has been opened.
func (b Box) Opened() bool {
	return !b.OpenedAt.IsZero()
}

// Contents is what a box yields when opened.
type Contents struct {
	Tokens     int
	CosmeticID string // empty when no cosmetic dropped
}

// contentsTable defines the draw weights for one rarity.
type contentsTable struct {
	minTokens      int
	maxTokens      int
	cosmeticChance float64
	cosmeticPool   []string
}

// The pool IDs must exist in the cosmetics catalog; the cosmetics package
// asserts that in its tests.
var contentsByRarity = map[Rarity]contentsTable{
	RarityCommon:    {10, 20, 0.05, []string{"star-sticker"}},
	RarityRare:      {20, 40, 0.15, []string{"comet-badge", "star-sticker"}},
	RarityEpic:      {40, 80, 0.35, []string{"nebula-trail", "comet-badge"}},
	RarityLegendary: {80, 150, 0.75, []string{"aurora-skin", "nebula-trail"}},
}

// DropPool returns the cosmetic IDs a box of the given rarity can drop.
func DropPool(r Rarity) []string {
	table, ok := contentsByRarity[r]
	if !ok {
		return nil
	}
	pool := make([]string, len(table.cosmeticPool))
	copy(pool, table.cosmeticPool)
	return pool
}

// Open draws the contents of box from its rarity table. The draw is
// deterministic for a given rng, so tests can seed it.
func Open(box Box, rng *rand.Rand) (Contents, error) {
	if box.Opened() {
		return Contents{}, ErrAlreadyOpened
	}

	table, ok := contentsByRarity[box.Rarity]
	if !ok {
		table = contentsByRarity[RarityCommon]
	}

	tokens := table.minTokens
	if span := table.maxTokens - table.minTokens; span > 0 {
		tokens += rng.IntN(span + 1)
	}

	contents := Contents{Tokens: tokens}
	if rng.Float64() < table.cosmeticChance {
		contents.CosmeticID = table.cosmeticPool[rng.IntN(len(table.cosmeticPool))]
	}
	return contents, nil
}
