package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/starpathlabs/starpath/internal/ui/theme"
)

// Bar is a horizontal progress bar.
type Bar struct {
	Label       string
	Fraction    float64
	Width       int
	ShowPercent bool
}

// View renders the bar at its configured width.
func (b Bar) View() string {
	var out string
	if b.Label != "" {
		out = theme.Body.Render(b.Label) + "  "
	}

	percentWidth := 0
	if b.ShowPercent {
		percentWidth = 6 // " 100%"
	}
	barWidth := max(b.Width-lipgloss.Width(out)-percentWidth, 4)

	fraction := min(max(b.Fraction, 0), 1)
	filled := int(float64(barWidth) * fraction)
	out += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	out += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if b.ShowPercent {
		out += theme.Subtitle.Render(fmt.Sprintf("  %d%%", int(fraction*100)))
	}
	return out
}
