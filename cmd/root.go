package cmd

import (
	"github.com/Rakshit-11/CareerFinder/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerfinder",
	Short: "Career exploration through hands-on job simulations",
	Long: `CareerFinder — terminal app that lets you try real career tasks as
short simulations: debug code, crack password hashes, analyze churn
data, and more. Complete a simulation to earn its skill badge.

Grading runs locally out of the box. Set GEMINI_API_KEY, OPENAI_API_KEY,
or ANTHROPIC_API_KEY for AI coaching feedback on your answers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CAREERFINDER_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(graderCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CAREERFINDER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
