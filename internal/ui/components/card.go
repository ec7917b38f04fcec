package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/starpathlabs/starpath/internal/ui/theme"
)

// Card boxes content in a rounded border with an optional title line.
func Card(title, content string) string {
	if title != "" {
		content = theme.GalaxyName.Render(title) + "\n" + content
	}
	return theme.Card.Render(content)
}

// Banner renders the application header line with right-aligned counters.
func Banner(width int, counters ...string) string {
	left := theme.Title.Render("✦ starpath")
	right := theme.Subtitle.Render(strings.Join(counters, "   "))
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
