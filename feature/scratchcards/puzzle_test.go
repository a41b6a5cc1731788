package scratchcards

import (
	"context"
	"testing"

	"aoc-solver/core/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var _ loader.Puzzle = (*Puzzle)(nil)

func TestParseCard(t *testing.T) {
	c, err := ParseCard("Card   3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1")
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID)
	assert.Equal(t, []int{1, 21, 53, 59, 44}, c.Winning)
	assert.Equal(t, []int{69, 82, 63, 72, 16, 21, 14, 1}, c.Mine)
	assert.Equal(t, 2, c.Matches())
	assert.Equal(t, 2, c.Worth())
}

func TestParseCard_Malformed(t *testing.T) {
	for _, record := range []string{
		"41 48 | 83 86",
		"Card 1: 41 48 83 86",
		"Card x: 1 | 2",
		"Card 1: 1 a | 2",
		"Card 1: 1 | 2 | 3",
	} {
		_, err := ParseCard(record)
		assert.ErrorIs(t, err, ErrMalformedCard, record)
	}
}

func TestCard_Worth(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want int
	}{
		{"NoMatch", Card{Winning: []int{1}, Mine: []int{2}}, 0},
		{"OneMatch", Card{Winning: []int{1}, Mine: []int{1}}, 1},
		{"FourMatches", Card{Winning: []int{41, 48, 83, 86, 17}, Mine: []int{83, 86, 6, 31, 17, 9, 48, 53}}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.Worth())
		})
	}
}

func TestInstances(t *testing.T) {
	p := NewPuzzle(zap.NewNop())
	var cards []Card
	for _, line := range p.Sample() {
		c, err := ParseCard(line)
		require.NoError(t, err)
		cards = append(cards, c)
	}
	assert.Equal(t, []int{1, 2, 4, 8, 14, 1}, Instances(cards))
}

func TestInstances_WinsPastEndAreDropped(t *testing.T) {
	cards := []Card{
		{ID: 1, Winning: []int{1, 2, 3}, Mine: []int{1, 2, 3}},
		{ID: 2, Winning: []int{1}, Mine: []int{1}},
	}
	assert.Equal(t, []int{1, 2}, Instances(cards))
}

func TestPuzzle_Sample(t *testing.T) {
	p := NewPuzzle(zap.NewNop())
	assert.Equal(t, 4, p.Day())
	assert.Equal(t, "scratchcards", p.Name())

	got, err := p.Solve(context.Background(), p.Sample())
	require.NoError(t, err)
	assert.Equal(t, loader.Answer{PartOne: 13, PartTwo: 30}, got)
}

func TestPuzzle_MalformedLine(t *testing.T) {
	p := NewPuzzle(zap.NewNop())
	_, err := p.Solve(context.Background(), []string{"Card 1: 1 | 1", "Card 2 1 | 1"})
	assert.ErrorIs(t, err, ErrMalformedCard)
	assert.ErrorContains(t, err, "line 2")
}
