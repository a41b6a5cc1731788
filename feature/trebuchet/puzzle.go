package trebuchet

import (
	"context"
	_ "embed"

	"aoc-solver/core/input"
	"aoc-solver/core/loader"

	"go.uber.org/zap"
)

//go:embed sample.txt
var sample string

// Puzzle implements the loader.Puzzle interface.
type Puzzle struct {
	logger *zap.Logger
}

// NewPuzzle creates the trebuchet calibration puzzle.
func NewPuzzle(logger *zap.Logger) *Puzzle {
	return &Puzzle{logger: logger}
}

// Day returns the puzzle day.
func (p *Puzzle) Day() int { return 1 }

// Name returns the name of the puzzle.
func (p *Puzzle) Name() string { return "trebuchet" }

// Sample returns the bundled example document.
func (p *Puzzle) Sample() []string { return input.MustSplit(sample) }

// Solve sums the calibration values of every line, first with digits only,
// then with spelled-out digits.
func (p *Puzzle) Solve(_ context.Context, lines []string) (loader.Answer, error) {
	var ans loader.Answer
	for i, line := range lines {
		one, ok := Value(line, false)
		if !ok {
			p.logger.Debug("No digit in line", zap.Int("line", i), zap.String("text", line))
		}
		two, _ := Value(line, true)
		p.logger.Debug("Calibration value",
			zap.Int("line", i),
			zap.Int("digits", one),
			zap.Int("spelled", two),
		)
		ans.PartOne += one
		ans.PartTwo += two
	}
	return ans, nil
}
