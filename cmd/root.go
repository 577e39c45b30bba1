package cmd

import (
	"github.com/econplay/econquiz/internal/config"
	"github.com/econplay/econquiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "econquiz",
	Short: "Terminal revision quizzes for economics",
	Long:  "Econquiz — a terminal app for revising an economics course through five kinds of quiz questions, from diagram reading to flashcards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", 0)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ECONQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("banks", "", "Directory of extra question-bank files to merge in")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(banksCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database != "" {
		return cfg.Database, store.EnsureDir(cfg.Database)
	}
	return store.DefaultDBPath()
}
