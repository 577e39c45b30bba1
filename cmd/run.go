package cmd

import (
	"fmt"

	"github.com/econplay/econquiz/internal/app"
	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/config"
	"github.com/econplay/econquiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp loads configuration, opens the store and the question bank,
// and launches the TUI. A blank mode opens the home menu; a valid mode
// starts that quiz directly.
func runApp(cmd *cobra.Command, mode bank.Mode, level int) error {
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

	b, err := loadBank(cmd, cfg)
	if err != nil {
		return err
	}

	if level < 1 {
		level = b.MaxLevel()
	}

	return app.Run(app.Options{
		Bank:     b,
		Progress: st.ProgressRepo(),
		Mode:     mode,
		Level:    level,
	})
}

// loadBank merges any configured bank directory over the embedded bank.
func loadBank(cmd *cobra.Command, cfg *config.Config) (*bank.Bank, error) {
	b, err := bank.Default()
	if err != nil {
		return nil, fmt.Errorf("load embedded bank: %w", err)
	}

	dir, _ := cmd.Flags().GetString("banks")
	if dir == "" {
		dir = cfg.BankDir
	}
	if dir != "" {
		if err := b.MergeDir(dir); err != nil {
			return nil, fmt.Errorf("load bank dir %s: %w", dir, err)
		}
	}
	return b, nil
}
