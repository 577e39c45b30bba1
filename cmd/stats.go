package cmd

import (
	"fmt"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/config"
	"github.com/econplay/econquiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the last saved quiz result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec, err := st.ProgressRepo().Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if rec == nil {
			fmt.Println("No quiz results recorded yet.")
			return nil
		}

		fmt.Printf("Last quiz: %s, level %d\n", bank.Mode(rec.Mode).Label(), rec.Level)
		fmt.Printf("Score:     %d/%d\n", rec.Correct(), rec.Total())
		fmt.Printf("Saved:     %s\n", rec.SavedAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}
