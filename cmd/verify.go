package cmd

import (
	"errors"
	"fmt"
	"os"

	"aoc-solver/core/answers"
	"aoc-solver/core/loader"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [day]",
	Short: "Check answers against the known-answers manifest",
	Long: `Solves every puzzle (or only the given day) and compares the answers with the
entries of the known-answers manifest (answers.toml). Puzzles without a manifest entry
or without an input file are skipped. Exits with an error when any answer differs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sample, _ := cmd.Flags().GetBool("sample")
		kind := answers.KindInput
		if sample {
			kind = answers.KindSample
		}

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		manifest, err := answers.Load(cfg.Answers.Path)
		if err != nil {
			return err
		}

		mgr, err := newRegistry(logg)
		if err != nil {
			return err
		}
		puzzles := mgr.All()
		if len(args) == 1 {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			p, err := mgr.Get(day)
			if err != nil {
				return err
			}
			puzzles = []loader.Puzzle{p}
		}

		src, err := newSource(cfg, "")
		if err != nil {
			return err
		}

		var checked, failed int
		for _, p := range puzzles {
			l := logg.With(zap.Int("day", p.Day()), zap.String("puzzle", p.Name()), zap.String("kind", kind))

			expected, err := manifest.Lookup(p.Day(), kind)
			if errors.Is(err, answers.ErrNoAnswer) {
				l.Warn("No known answer, skipping")
				continue
			}

			lines := p.Sample()
			if !sample {
				lines, err = src.Lines(ctx, p.Day())
				if errors.Is(err, os.ErrNotExist) {
					l.Warn("Input missing, skipping")
					continue
				}
				if err != nil {
					return err
				}
			}

			ans, err := solveWith(ctx, p, lines)
			if err != nil {
				return err
			}
			checked++

			mismatches := answers.Check(expected, ans)
			if len(mismatches) == 0 {
				l.Info("Answers match")
				continue
			}
			failed++
			for _, m := range mismatches {
				l.Warn("Answer mismatch", zap.Stringer("mismatch", m))
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelColor.Sprint("Verified:"), valueColor.Sprintf("%d/%d", checked-failed, checked))
		if failed > 0 {
			return fmt.Errorf("%d of %d puzzles gave unexpected answers", failed, checked)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().Bool("sample", false, "Verify the bundled examples instead of real inputs")
}
