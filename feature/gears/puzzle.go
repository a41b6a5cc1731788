package gears

import (
	"context"
	_ "embed"

	"aoc-solver/core/input"
	"aoc-solver/core/loader"
	"aoc-solver/core/schematic"

	"go.uber.org/zap"
)

//go:embed sample.txt
var sample string

// Puzzle implements the loader.Puzzle interface.
type Puzzle struct {
	logger *zap.Logger
}

// NewPuzzle creates the gear ratios puzzle.
func NewPuzzle(logger *zap.Logger) *Puzzle {
	return &Puzzle{logger: logger}
}

// Day returns the puzzle day.
func (p *Puzzle) Day() int { return 3 }

// Name returns the name of the puzzle.
func (p *Puzzle) Name() string { return "gear-ratios" }

// Sample returns the bundled example schematic.
func (p *Puzzle) Sample() []string { return input.MustSplit(sample) }

// Solve builds the schematic and sums part numbers and gear ratios.
func (p *Puzzle) Solve(_ context.Context, lines []string) (loader.Answer, error) {
	grid := schematic.Build(lines)

	partSum := 0
	for _, part := range grid.PartNumbers() {
		p.logger.Debug("Engine part",
			zap.Int("value", part.Value),
			zap.Stringer("position", part.Position),
			zap.Int("symbols", len(grid.AdjacentSymbols(part))),
		)
		partSum += part.Value
	}

	ratioSum := 0
	for _, gear := range grid.Gears() {
		values := make([]int, 0, len(gear.Parts))
		for _, part := range gear.Parts {
			values = append(values, part.Value)
		}
		p.logger.Debug("Gear",
			zap.Stringer("position", gear.Symbol.Position),
			zap.Ints("parts", values),
			zap.Int("ratio", gear.Ratio),
		)
		ratioSum += gear.Ratio
	}

	return loader.Answer{PartOne: partSum, PartTwo: ratioSum}, nil
}
