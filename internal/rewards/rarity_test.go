package rewards

import "testing"

func TestMilestoneRarity(t *testing.T) {
	tests := []struct {
		day  int
		want Rarity
	}{
		{7, RarityCommon},
		{13, RarityCommon},
		{14, RarityRare},
		{21, RarityEpic},
		{27, RarityEpic},
		{28, RarityLegendary},
		{35, RarityLegendary},
	}

	for _, tt := range tests {
		if got := MilestoneRarity(tt.day); got != tt.want {
			t.Errorf("MilestoneRarity(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestGalaxyRarity(t *testing.T) {
	tests := []struct {
		galaxyID int
		want     Rarity
	}{
		{1, RarityCommon},
		{2, RarityRare},
		{3, RarityRare},
		{4, RarityEpic},
		{5, RarityLegendary},
	}

	for _, tt := range tests {
		if got := GalaxyRarity(tt.galaxyID); got != tt.want {
			t.Errorf("GalaxyRarity(%d) = %q, want %q", tt.galaxyID, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := RarityEpic.DisplayName(); got != "Epic" {
		t.Errorf("DisplayName = %q, want %q", got, "Epic")
	}
	if got := Rarity("weird").DisplayName(); got != "weird" {
		t.Errorf("DisplayName fallback = %q, want %q", got, "weird")
	}
}

func TestAllRaritiesOrdered(t *testing.T) {
	all := AllRarities()
	want := []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
	if len(all) != len(want) {
		t.Fatalf("got %d rarities, want %d", len(all), len(want))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("rarity[%d] = %q, want %q", i, all[i], want[i])
		}
	}
}
