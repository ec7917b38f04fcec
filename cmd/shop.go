package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starpathlabs/starpath/internal/cosmetics"
	"github.com/starpathlabs/starpath/internal/ui/theme"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the cosmetics shop",
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

		fmt.Printf("✦ %d tokens on hand\n\n", doc.TokenBalance())
		for _, slot := range cosmetics.Slots() {
			fmt.Println(theme.GalaxyName.Render(slotHeading(slot)))
			for _, item := range cosmetics.Catalog() {
				if item.Slot != slot {
					continue
				}
				marker := ""
				switch {
				case doc.Equipped[item.Slot] == item.ID:
					marker = theme.Current.Render("equipped")
				case doc.Owns(item.ID):
					marker = theme.Subtitle.Render("owned")
				}
				fmt.Printf("  %-16s %s %5d ✦  %s\n",
					item.ID,
					theme.RarityStyle(item.Rarity).Render(pad(item.Name, 18)),
					item.Price,
					marker)
			}
			fmt.Println()
		}
		fmt.Println(theme.Hint.Render("starpath shop buy <id> · starpath shop equip <id>"))
		return nil
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <cosmetic-id>",
	Short: "Buy a cosmetic with earned tokens",
	Args:  cobra.ExactArgs(1),
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

		item, err := a.shop.Purchase(ctx, doc, args[0])
		switch {
		case errors.Is(err, cosmetics.ErrNotFound):
			fmt.Printf("Nothing called %q in the shop. `starpath shop` lists the catalog.\n", args[0])
			return nil
		case errors.Is(err, cosmetics.ErrAlreadyOwned):
			fmt.Println("You already own that one.")
			return nil
		case errors.Is(err, cosmetics.ErrInsufficientTokens):
			if wanted, ok := cosmetics.ByID(args[0]); ok {
				fmt.Printf("%s costs %d ✦ but you have %d. Complete modules to earn more.\n",
					wanted.Name, wanted.Price, doc.TokenBalance())
			}
			return nil
		case err != nil:
			return err
		}

		fmt.Printf("%s is yours! %d ✦ left.\n",
			theme.RarityStyle(item.Rarity).Render(item.Name), doc.TokenBalance())
		fmt.Println(theme.Hint.Render("  starpath shop equip " + item.ID))
		return nil
	},
}

var shopEquipCmd = &cobra.Command{
	Use:   "equip <cosmetic-id>",
	Short: "Wear an owned cosmetic",
	Args:  cobra.ExactArgs(1),
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

		item, err := a.shop.Equip(ctx, doc, args[0])
		switch {
		case errors.Is(err, cosmetics.ErrNotFound):
			fmt.Printf("Nothing called %q in the shop.\n", args[0])
			return nil
		case errors.Is(err, cosmetics.ErrNotOwned):
			fmt.Printf("You don't own %q yet. Buy it first: starpath shop buy %s\n", args[0], args[0])
			return nil
		case err != nil:
			return err
		}

		fmt.Printf("Equipped %s in the %s slot.\n",
			theme.RarityStyle(item.Rarity).Render(item.Name), item.Slot)
		return nil
	},
}

func slotHeading(slot string) string {
	if slot == "" {
		return slot
	}
	return string(slot[0]-'a'+'A') + slot[1:]
}

func init() {
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopEquipCmd)
}
