package scratchcards

import (
	"context"
	_ "embed"
	"fmt"

	"aoc-solver/core/input"
	"aoc-solver/core/loader"
	"aoc-solver/core/utils"

	"go.uber.org/zap"
)

//go:embed sample.txt
var sample string

// Puzzle implements the loader.Puzzle interface.
type Puzzle struct {
	logger *zap.Logger
}

// NewPuzzle creates the scratchcards puzzle.
func NewPuzzle(logger *zap.Logger) *Puzzle {
	return &Puzzle{logger: logger}
}

// Day returns the puzzle day.
func (p *Puzzle) Day() int { return 4 }

// Name returns the name of the puzzle.
func (p *Puzzle) Name() string { return "scratchcards" }

// Sample returns the bundled example deck.
func (p *Puzzle) Sample() []string { return input.MustSplit(sample) }

// Solve scores the deck and counts card instances after copying.
func (p *Puzzle) Solve(_ context.Context, lines []string) (loader.Answer, error) {
	cards := make([]Card, 0, len(lines))
	worth := 0
	for i, line := range lines {
		card, err := ParseCard(line)
		if err != nil {
			return loader.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, card)
		worth += card.Worth()
	}

	instances := Instances(cards)
	for i, c := range cards {
		p.logger.Debug("Card",
			zap.Int("card", c.ID),
			zap.Int("wins", c.Matches()),
			zap.Int("instances", instances[i]),
		)
	}

	return loader.Answer{PartOne: worth, PartTwo: utils.Sum(instances)}, nil
}
