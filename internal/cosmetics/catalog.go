// Package cosmetics is the shop: profile flair bought with earned tokens
// and worn one piece per slot.
package cosmetics

import "github.com/starpathlabs/starpath/internal/rewards"

// Item is one cosmetic in the catalog.
type Item struct {
	ID     string
	Name   string
	Slot   string
	Rarity rewards.Rarity
	Price  int // tokens
}

// Equip slots.
const (
	SlotSticker = "sticker"
	SlotBadge   = "badge"
	SlotTrail   = "trail"
	SlotSkin    = "skin"
)

// The catalog is static; mystery boxes draw their cosmetic drops from this
// same id space.
var catalog = []Item{
	{ID: "star-sticker", Name: "Star Sticker", Slot: SlotSticker, Rarity: rewards.RarityCommon, Price: 25},
	{ID: "rocket-sticker", Name: "Rocket Sticker", Slot: SlotSticker, Rarity: rewards.RarityCommon, Price: 25},
	{ID: "comet-badge", Name: "Comet Badge", Slot: SlotBadge, Rarity: rewards.RarityRare, Price: 60},
	{ID: "quasar-badge", Name: "Quasar Badge", Slot: SlotBadge, Rarity: rewards.RarityRare, Price: 75},
	{ID: "nebula-trail", Name: "Nebula Trail", Slot: SlotTrail, Rarity: rewards.RarityEpic, Price: 140},
	{ID: "supernova-trail", Name: "Supernova Trail", Slot: SlotTrail, Rarity: rewards.RarityEpic, Price: 160},
	{ID: "aurora-skin", Name: "Aurora Skin", Slot: SlotSkin, Rarity: rewards.RarityLegendary, Price: 280},
	{ID: "eclipse-skin", Name: "Eclipse Skin", Slot: SlotSkin, Rarity: rewards.RarityLegendary, Price: 320},
}

// Catalog returns every purchasable cosmetic.
func Catalog() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog item.
func ByID(id string) (Item, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Slots returns the equip slots in display order.
func Slots() []string {
	return []string{SlotSticker, SlotBadge, SlotTrail, SlotSkin}
}
