package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase local progress",
	Long: "Erase the local voyage log: completions, streaks, boxes, and snapshots.\n" +
		"Progress held in a hosted store, when one is configured, is untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
			fmt.Println("Nothing to erase.")
			return nil
		}

		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Printf("This erases the voyage log at %s.\nType yes to confirm: ", dbPath)
			var answer string
			fmt.Scanln(&answer)
			if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
				fmt.Println("Nothing erased.")
				return nil
			}
		}

		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}
		fmt.Println("Local progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
