package cmd

import (
	"fmt"
	"strings"

	"github.com/econplay/econquiz/internal/bank"
	"github.com/spf13/cobra"
)

var playLevel int

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Start a quiz directly, skipping the menu",
	Long:  "Start a quiz in one mode without going through the home menu.\nModes: " + modeList() + ".",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := bank.Mode(args[0])
		if !mode.Valid() {
			return fmt.Errorf("unknown mode %q (modes: %s)", args[0], modeList())
		}
		return runApp(cmd, mode, playLevel)
	},
}

func init() {
	playCmd.Flags().IntVar(&playLevel, "level", 0, "Difficulty level (defaults to the highest available)")
}

func modeList() string {
	names := make([]string, 0, len(bank.Modes()))
	for _, m := range bank.Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}
