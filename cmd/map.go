package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/starpathlabs/starpath/internal/level"
	"github.com/starpathlabs/starpath/internal/progression"
	"github.com/starpathlabs/starpath/internal/ui/components"
	"github.com/starpathlabs/starpath/internal/ui/theme"
)

const mapWidth = 66

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show the galaxy map",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMap(cmd)
	},
}

func runMap(cmd *cobra.Command) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := a.svc.Load(cmd.Context(), a.wallet)
	if err != nil {
		return err
	}

	lvl, _ := level.Progress(doc.XP)
	fmt.Println(components.Banner(mapWidth,
		fmt.Sprintf("Lv %d", lvl),
		fmt.Sprintf("%d ✦", doc.TokenBalance()),
		fmt.Sprintf("🔥 %d", doc.Streak.Count),
	))
	fmt.Println(strings.Repeat("─", mapWidth))

	for _, gal := range progression.Reconcile(a.graph, doc) {
		fmt.Println(renderGalaxy(gal))
	}

	fmt.Println(theme.Hint.Render("starpath complete — record your current module run"))
	return nil
}

func renderGalaxy(gal progression.GalaxyStatus) string {
	var b strings.Builder

	name := fmt.Sprintf("%d  %s", gal.ID, gal.Name)
	switch {
	case !gal.Unlocked:
		b.WriteString(theme.Locked.Render(pad(name, mapWidth-8)))
		b.WriteString(theme.Locked.Render("  locked"))
	default:
		done := 0
		for _, m := range gal.Modules {
			if m.Completed {
				done++
			}
		}
		b.WriteString(theme.GalaxyName.Render(pad(name, mapWidth-8)))
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %2d/%d", done, len(gal.Modules))))
	}
	b.WriteString("\n")

	for _, m := range gal.Modules {
		b.WriteString("   " + renderModule(m) + "\n")
	}
	return b.String()
}

func renderModule(m progression.ModuleStatus) string {
	glyph, style := "○", theme.Unlocked
	switch {
	case m.Completed:
		glyph, style = "✓", theme.Completed
	case m.Current:
		glyph, style = "▶", theme.Current
	case m.Locked:
		glyph, style = "·", theme.Locked
	}
	line := style.Render(glyph + " " + pad(m.Title, mapWidth-18))
	return line + theme.Subtitle.Render(fmt.Sprintf("%4d XP", m.XPReward))
}

// pad right-pads s with spaces before styling; padding after styling would
// count the ANSI escape bytes.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
