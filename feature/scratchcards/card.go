package scratchcards

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"aoc-solver/core/utils"
)

// ErrMalformedCard is returned for records that do not match the card format.
var ErrMalformedCard = errors.New("malformed card")

var cardRx = regexp.MustCompile(`^Card\s+(\d+):([^|]*)\|(.*)$`)

// Card is a parsed scratchcard.
type Card struct {
	ID      int
	Winning []int
	Mine    []int
}

// ParseCard parses a single card record.
func ParseCard(record string) (Card, error) {
	m := cardRx.FindStringSubmatch(strings.TrimSpace(record))
	if m == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCard, record)
	}

	id, err := utils.ToInt(m[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %v", ErrMalformedCard, err)
	}
	winning, err := utils.Ints(m[2])
	if err != nil {
		return Card{}, fmt.Errorf("%w: card %d: %v", ErrMalformedCard, id, err)
	}
	mine, err := utils.Ints(m[3])
	if err != nil {
		return Card{}, fmt.Errorf("%w: card %d: %v", ErrMalformedCard, id, err)
	}
	return Card{ID: id, Winning: winning, Mine: mine}, nil
}

// Matches counts how many of my numbers are winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	matches := 0
	for _, n := range c.Mine {
		if _, ok := winning[n]; ok {
			matches++
		}
	}
	return matches
}

// Worth is 2^(matches-1), or 0 without matches.
func (c Card) Worth() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// Instances returns how many instances of each card end up in hand after
// every card has won its copies. cards must be in deck order.
func Instances(cards []Card) []int {
	counts := make([]int, len(cards))
	for i := range counts {
		counts[i] = 1
	}
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			counts[j] += counts[i]
		}
	}
	return counts
}
