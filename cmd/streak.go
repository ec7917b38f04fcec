package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/starpathlabs/starpath/internal/streak"
	"github.com/starpathlabs/starpath/internal/ui/theme"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your daily streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		doc, err := a.svc.Load(cmd.Context(), a.wallet)
		if err != nil {
			return err
		}

		s := doc.Streak
		fmt.Println(theme.Current.Render(fmt.Sprintf("🔥 %d day streak", s.Count)))
		if s.LastActiveDate != "" {
			fmt.Printf("  %-16s %s\n", "Last active", s.LastActiveDate)
		}
		fmt.Printf("  %-16s day %d\n", "Next milestone", streak.NextMilestone(s.Count))

		var claimable []int
		for m := streak.MilestoneInterval; m <= s.Count; m += streak.MilestoneInterval {
			if !s.Claimed(m) {
				claimable = append(claimable, m)
			}
		}
		if len(s.ClaimedMilestones) > 0 {
			fmt.Printf("  %-16s %v\n", "Claimed days", s.ClaimedMilestones)
		}
		for _, m := range claimable {
			fmt.Println(theme.Hint.Render(fmt.Sprintf("  Day %d box is waiting: starpath streak claim %d", m, m)))
		}
		return nil
	},
}

var streakClaimCmd = &cobra.Command{
	Use:   "claim <day>",
	Short: "Claim the mystery box for a reached milestone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("day must be a number, got %q", args[0])
		}

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

		box, err := a.streak.Claim(ctx, doc, day)
		switch {
		case errors.Is(err, streak.ErrNotClaimable):
			fmt.Println(err.Error())
			return nil
		case errors.Is(err, streak.ErrAlreadyClaimed):
			fmt.Printf("The day %d box was already claimed.\n", day)
			return nil
		case err != nil:
			return err
		}

		fmt.Println(theme.RarityStyle(box.Rarity).Render(fmt.Sprintf("🎁 A %s mystery box for %d days of learning!", box.Rarity, day)))
		fmt.Println(theme.Hint.Render("  starpath boxes open " + box.ID))
		return nil
	},
}

func init() {
	streakCmd.AddCommand(streakClaimCmd)
}
