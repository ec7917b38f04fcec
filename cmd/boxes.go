package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/starpathlabs/starpath/internal/cosmetics"
	"github.com/starpathlabs/starpath/internal/rewards"
	"github.com/starpathlabs/starpath/internal/ui/theme"
)

var boxesCmd = &cobra.Command{
	Use:   "boxes",
	Short: "List your unopened mystery boxes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		inventory, err := a.boxes.Inventory(cmd.Context())
		if err != nil {
			return err
		}
		if len(inventory) == 0 {
			fmt.Println("No unopened boxes. Finish a galaxy or reach a streak milestone to earn one.")
			return nil
		}

		fmt.Printf("🎁 %d unopened\n", len(inventory))
		for _, box := range inventory {
			fmt.Printf("  %s  %-28s granted %s\n",
				theme.RarityStyle(box.Rarity).Render(fmt.Sprintf("%-9s", box.Rarity.DisplayName())),
				box.Source,
				box.GrantedAt.Local().Format(time.DateOnly))
			fmt.Println(theme.Hint.Render("           starpath boxes open " + box.ID))
		}
		return nil
	},
}

var boxesOpenCmd = &cobra.Command{
	Use:   "open <box-id>",
	Short: "Open a mystery box",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		box, contents, err := a.boxes.OpenBox(cmd.Context(), a.wallet, args[0])
		switch {
		case errors.Is(err, rewards.ErrBoxNotFound):
			fmt.Printf("No box %q in your inventory. `starpath boxes` lists what you have.\n", args[0])
			return nil
		case errors.Is(err, rewards.ErrAlreadyOpened):
			fmt.Println("That box was already opened.")
			return nil
		case err != nil:
			return err
		}

		fmt.Println(theme.RarityStyle(box.Rarity).Render(fmt.Sprintf("✨ %s box opened!", box.Rarity.DisplayName())))
		if contents.Tokens > 0 {
			fmt.Printf("  %d ✦ tokens queued to your wallet\n", contents.Tokens)
		}
		if contents.CosmeticID != "" {
			name := contents.CosmeticID
			style := theme.Body
			if item, ok := cosmetics.ByID(contents.CosmeticID); ok {
				name = item.Name
				style = theme.RarityStyle(item.Rarity)
			}
			fmt.Printf("  %s dropped! Equip it with `starpath shop equip %s`.\n",
				style.Render(name), contents.CosmeticID)
		}
		return nil
	},
}

func init() {
	boxesCmd.AddCommand(boxesOpenCmd)
}
