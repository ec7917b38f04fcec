package rewards

// Rarity represents the quality tier of a mystery box and its contents.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// MilestoneRarity returns the box rarity for a streak milestone day.
func MilestoneRarity(day int) Rarity {
	switch {
	case day >= 28:
		return RarityLegendary
	case day >= 21:
		return RarityEpic
	case day >= 14:
		return RarityRare
	default:
		return RarityCommon
	}
}

// GalaxyRarity returns the box rarity for finishing a galaxy. Galaxies
// deeper in the curriculum grant rarer boxes.
func GalaxyRarity(galaxyID int) Rarity {
	switch {
	case galaxyID >= 5:
		return RarityLegendary
	case galaxyID >= 4:
		return RarityEpic
	case galaxyID >= 2:
		return RarityRare
	default:
		return RarityCommon
	}
}
