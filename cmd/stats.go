package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/starpathlabs/starpath/internal/cosmetics"
	"github.com/starpathlabs/starpath/internal/level"
	"github.com/starpathlabs/starpath/internal/progression"
	"github.com/starpathlabs/starpath/internal/store"
	"github.com/starpathlabs/starpath/internal/streak"
	"github.com/starpathlabs/starpath/internal/ui/components"
	"github.com/starpathlabs/starpath/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your voyage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		doc, err := a.svc.Load(ctx, a.wallet)
		if err != nil {
			return err
		}

		lvl, frac := level.Progress(doc.XP)
		fmt.Println(components.Bar{
			Label:       fmt.Sprintf("Lv %d", lvl),
			Fraction:    frac,
			Width:       mapWidth,
			ShowPercent: true,
		}.View())
		fmt.Printf("  %d XP total, %d to level %d\n\n",
			doc.XP, level.FloorForLevel(lvl+1)-doc.XP, lvl+1)

		completed, total := len(doc.CompletedModules), a.graph.ModuleCount()
		unlocked := 0
		statuses := progression.Reconcile(a.graph, doc)
		for _, gal := range statuses {
			if gal.Unlocked {
				unlocked++
			}
		}

		fmt.Println(theme.GalaxyName.Render("Voyage"))
		fmt.Printf("  %-22s %d/%d\n", "Modules charted", completed, total)
		fmt.Printf("  %-22s %d/%d\n", "Galaxies open", unlocked, len(statuses))
		fmt.Printf("  %-22s %d earned, %d spent, %d ✦ on hand\n",
			"Tokens", doc.TokensEarned, doc.TokensSpent, doc.TokenBalance())
		fmt.Printf("  %-22s %d owned\n", "Cosmetics", len(cosmetics.Owned(doc)))
		fmt.Println()

		fmt.Println(theme.GalaxyName.Render("Streak"))
		fmt.Printf("  %-22s %d days\n", "Current run", doc.Streak.Count)
		if doc.Streak.LastActiveDate != "" {
			fmt.Printf("  %-22s %s\n", "Last active", doc.Streak.LastActiveDate)
		}
		fmt.Printf("  %-22s day %d\n", "Next milestone", streak.NextMilestone(doc.Streak.Count))
		fmt.Println()

		totals, err := a.store.EventRepo().RewardTotals(ctx)
		if err != nil {
			return fmt.Errorf("read reward totals: %w", err)
		}
		inventory, err := a.boxes.Inventory(ctx)
		if err != nil {
			return fmt.Errorf("read box inventory: %w", err)
		}
		fmt.Println(theme.GalaxyName.Render("Rewards"))
		fmt.Printf("  %-22s %d granted, %d opened, %d waiting\n",
			"Mystery boxes", totals.BoxesGranted, totals.BoxesOpened, len(inventory))
		fmt.Printf("  %-22s %d ✦\n", "Tokens queued", totals.TokensQueued)
		if totals.GrantsFailed > 0 {
			fmt.Printf("  %-22s %d\n", "Failed grants", totals.GrantsFailed)
		}
		fmt.Println()

		return printRecentCompletions(a, ctx)
	},
}

func printRecentCompletions(a *app, ctx context.Context) error {
	recent, err := a.store.EventRepo().QueryCompletions(ctx, store.QueryOpts{Limit: 5})
	if err != nil {
		return fmt.Errorf("read completion log: %w", err)
	}
	if len(recent) == 0 {
		return nil
	}

	fmt.Println(theme.GalaxyName.Render("Recent completions"))
	for _, rec := range recent {
		title := rec.ModuleID
		if mod, err := a.graph.Module(rec.ModuleID); err == nil {
			title = mod.Title
		}
		line := fmt.Sprintf("  %s  %-30s +%d XP", rec.Timestamp.Local().Format(time.DateOnly), title, rec.XPAwarded)
		if !rec.Synced {
			line += theme.Locked.Render("  (sync pending)")
		}
		fmt.Println(line)
	}
	fmt.Println(strings.Repeat("─", mapWidth))
	return nil
}
