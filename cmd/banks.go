package cmd

import (
	"fmt"
	"os"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/econplay/econquiz/internal/config"
	"github.com/spf13/cobra"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the loaded question banks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		b, err := loadBank(cmd, cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Course: %s\n", b.Course)
		fmt.Printf("Levels: 1-%d\n", b.MaxLevel())
		for _, m := range bank.Modes() {
			fmt.Printf("  %-12s %d\n", string(m), b.Count(m))
		}
		fmt.Printf("Total:  %d questions\n", b.Size())
		return nil
	},
}

var banksValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Schema-check question-bank files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			if err := bank.ValidateFile(path); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				continue
			}
			fmt.Printf("%s: ok\n", path)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	banksCmd.AddCommand(banksValidateCmd)
}
