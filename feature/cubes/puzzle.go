package cubes

import (
	"context"
	_ "embed"
	"fmt"

	"aoc-solver/core/input"
	"aoc-solver/core/loader"

	"go.uber.org/zap"
)

//go:embed sample.txt
var sample string

// DefaultBag is the bag the elf proposes for part one.
var DefaultBag = Set{"red": 12, "green": 13, "blue": 14}

// Puzzle implements the loader.Puzzle interface.
type Puzzle struct {
	logger *zap.Logger
	bag    Set
}

// NewPuzzle creates the cube conundrum puzzle with the default bag.
func NewPuzzle(logger *zap.Logger) *Puzzle {
	return &Puzzle{logger: logger, bag: DefaultBag}
}

// Day returns the puzzle day.
func (p *Puzzle) Day() int { return 2 }

// Name returns the name of the puzzle.
func (p *Puzzle) Name() string { return "cube-conundrum" }

// Sample returns the bundled example games.
func (p *Puzzle) Sample() []string { return input.MustSplit(sample) }

// Solve parses every game, sums the ids of possible games and the powers of
// the minimum bags.
func (p *Puzzle) Solve(_ context.Context, lines []string) (loader.Answer, error) {
	var ans loader.Answer
	for i, line := range lines {
		game, err := ParseGame(line)
		if err != nil {
			return loader.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}

		if game.Possible(p.bag) {
			ans.PartOne += game.ID
		} else {
			p.logger.Debug("Impossible game", zap.Int("game", game.ID))
		}

		power := game.Power()
		p.logger.Debug("Minimum bag", zap.Int("game", game.ID), zap.Any("bag", game.MinimumBag()), zap.Int("power", power))
		ans.PartTwo += power
	}
	return ans, nil
}
