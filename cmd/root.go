package cmd

import (
	"fmt"
	"os"

	"aoc-solver/core/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "aoc-solver",
	Short: "Daily puzzle solver",
	Long: `aoc-solver solves daily coding puzzles from a text input.
Each puzzle prints two answers, one per line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard logger in console format so CLI errors
		// look like every other log line.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}
