package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve <day>",
	Short: "Solve a puzzle and print both answers",
	Long: `Reads the puzzle input for the given day and prints the answers to both parts.
By default the input comes from the configured source (inputs/dayNN.txt); use --input
to point at another file or --sample to run the bundled example.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		day, err := parseDay(args[0])
		if err != nil {
			return err
		}
		inputPath, _ := cmd.Flags().GetString("input")
		sample, _ := cmd.Flags().GetBool("sample")

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		mgr, err := newRegistry(logg)
		if err != nil {
			return err
		}
		p, err := mgr.Get(day)
		if err != nil {
			return err
		}

		var lines []string
		if sample {
			lines = p.Sample()
		} else {
			src, err := newSource(cfg, inputPath)
			if err != nil {
				return err
			}
			if lines, err = src.Lines(ctx, day); err != nil {
				return err
			}
		}

		logg.Debug("Solving puzzle", zap.Int("day", day), zap.String("puzzle", p.Name()), zap.Int("lines", len(lines)), zap.Bool("sample", sample))
		ans, err := solveWith(ctx, p, lines)
		if err != nil {
			return err
		}

		printAnswer(cmd.OutOrStdout(), ans)

		logg.Info("Puzzle solved",
			zap.Int("day", day),
			zap.String("puzzle", p.Name()),
			zap.Int("part_one", ans.PartOne),
			zap.Int("part_two", ans.PartTwo),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(solveCmd)

	solveCmd.Flags().String("input", "", "Read the puzzle input from this file")
	solveCmd.Flags().Bool("sample", false, "Solve the bundled example input")
	solveCmd.MarkFlagsMutuallyExclusive("input", "sample")
}
