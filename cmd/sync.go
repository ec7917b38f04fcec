package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starpathlabs/starpath/internal/progression"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push locally saved completions to the progress store",
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

		n, err := a.svc.SyncPending(ctx, doc)
		var pending *progression.SyncPendingError
		if errors.As(err, &pending) {
			fmt.Println("The progress store is still unreachable. Your progress is safe locally; try again later.")
			return nil
		}
		if err != nil {
			return err
		}

		if n == 0 {
			fmt.Println("Everything is in sync.")
			return nil
		}
		fmt.Printf("Synced %d completion(s) to the progress store.\n", n)
		return nil
	},
}
