package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/starpathlabs/starpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "starpath",
	Short: "Gamified blockchain learning in your terminal",
	Long:  "Starpath — chart a galaxy map of blockchain fundamentals, earning XP, streaks, and mystery boxes as you complete modules.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMap(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite voyage log (overrides STARPATH_DB env var)")
	rootCmd.PersistentFlags().String("wallet", "", "Wallet address identifying the traveler (overrides STARPATH_WALLET env var)")

	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(boxesCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the voyage log path using --db flag (highest
// priority), then STARPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveWallet returns the traveler identity using --wallet flag (highest
// priority), then STARPATH_WALLET env var, then the local guest profile.
func resolveWallet(cmd *cobra.Command) string {
	if w, _ := cmd.Flags().GetString("wallet"); w != "" {
		return w
	}
	if w := strings.TrimSpace(os.Getenv("STARPATH_WALLET")); w != "" {
		return w
	}
	return "guest"
}
