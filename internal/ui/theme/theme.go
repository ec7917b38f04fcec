package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/starpathlabs/starpath/internal/rewards"
)

// Color palette: deep space with bright accents
var (
	Primary   = lipgloss.Color("#8B5CF6") // Cosmic Violet
	Secondary = lipgloss.Color("#22D3EE") // Starlight Cyan
	Accent    = lipgloss.Color("#F59E0B") // Solar Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Map states
var (
	Completed = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Current = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Unlocked = lipgloss.NewStyle().
			Foreground(Text)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	GalaxyName = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// Rarity colors by box and cosmetic tier.
var rarityColors = map[rewards.Rarity]color.Color{
	rewards.RarityCommon:    lipgloss.Color("#94A3B8"), // Slate
	rewards.RarityRare:      lipgloss.Color("#38BDF8"), // Sky
	rewards.RarityEpic:      lipgloss.Color("#A78BFA"), // Violet
	rewards.RarityLegendary: lipgloss.Color("#FBBF24"), // Gold
}

// RarityStyle returns the display style for a rarity tier.
func RarityStyle(r rewards.Rarity) lipgloss.Style {
	color, ok := rarityColors[r]
	if !ok {
		color = TextDim
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
