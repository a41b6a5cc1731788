package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available puzzles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := newRegistry(zap.NewNop())
		if err != nil {
			return err
		}
		for _, p := range mgr.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelColor.Sprintf("day %2d", p.Day()), p.Name())
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
