package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"aoc-solver/core/config"
	"aoc-solver/core/input"
	"aoc-solver/core/loader"
	"aoc-solver/core/logger"
	"aoc-solver/feature/cubes"
	"aoc-solver/feature/gears"
	"aoc-solver/feature/scratchcards"
	"aoc-solver/feature/trebuchet"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var (
	labelColor = color.New(color.FgCyan)
	valueColor = color.New(color.FgGreen, color.Bold)
)

// bootstrap loads configuration and creates the run logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger.WithRunID(logg, logger.NewRunID()), nil
}

// newRegistry registers every puzzle.
func newRegistry(logg *zap.Logger) (*loader.Manager, error) {
	mgr := loader.NewManager()
	err := mgr.Register(
		trebuchet.NewPuzzle(logg.Named("trebuchet")),
		cubes.NewPuzzle(logg.Named("cubes")),
		gears.NewPuzzle(logg.Named("gears")),
		scratchcards.NewPuzzle(logg.Named("scratchcards")),
	)
	if err != nil {
		return nil, err
	}
	return mgr, nil
}

// newSource returns the configured input source, or the explicit file when
// path is set.
func newSource(cfg *config.Config, path string) (input.Source, error) {
	if path != "" {
		return input.PathSource(path), nil
	}
	return input.New(cfg.Input, cfg.Storage)
}

func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil || day < 1 {
		return 0, fmt.Errorf("invalid day %q", arg)
	}
	return day, nil
}

func printAnswer(w io.Writer, ans loader.Answer) {
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("Part One:"), valueColor.Sprint(ans.PartOne))
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("Part Two:"), valueColor.Sprint(ans.PartTwo))
}

func solveWith(ctx context.Context, p loader.Puzzle, lines []string) (loader.Answer, error) {
	ans, err := p.Solve(ctx, lines)
	if err != nil {
		return loader.Answer{}, fmt.Errorf("day %d (%s): %w", p.Day(), p.Name(), err)
	}
	return ans, nil
}
