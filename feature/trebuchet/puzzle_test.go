package trebuchet

import (
	"context"
	"testing"

	"aoc-solver/core/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var _ loader.Puzzle = (*Puzzle)(nil)

func TestValue(t *testing.T) {
	tests := []struct {
		line    string
		spelled bool
		want    int
		wantOK  bool
	}{
		{"1abc2", false, 12, true},
		{"pqr3stu8vwx", false, 38, true},
		{"a1b2c3d4e5f", false, 15, true},
		{"treb7uchet", false, 77, true},
		{"eightwothree", false, 0, false},
		{"two1nine", true, 29, true},
		{"eightwothree", true, 83, true},
		{"xtwone3four", true, 24, true},
		{"zoneight234", true, 14, true},
		{"7pqrstsixteen", true, 76, true},
		{"abc123sevenineight4569ee", true, 19, true},
		{"4twozgxqjbdsone963two", true, 42, true},
		{"nineeight6khkrgsdcfpkcjkglbq5lxkjxsvrrktmfzsbz", true, 95, true},
		{"onetwothreefourfivesixseveneightnineten", true, 19, true},
		{"eightwo", true, 82, true},
		{"zero", true, 0, false},
		{"", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := Value(tt.line, tt.spelled)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPuzzle_Sample(t *testing.T) {
	p := NewPuzzle(zap.NewNop())
	assert.Equal(t, 1, p.Day())
	assert.Equal(t, "trebuchet", p.Name())

	got, err := p.Solve(context.Background(), p.Sample())
	require.NoError(t, err)
	assert.Equal(t, loader.Answer{PartOne: 209, PartTwo: 281}, got)
}

func TestPuzzle_DigitsOnlyDocument(t *testing.T) {
	p := NewPuzzle(zap.NewNop())
	got, err := p.Solve(context.Background(), []string{"1abc2", "pqr3stu8vwx", "a1b2c3d4e5f", "treb7uchet"})
	require.NoError(t, err)
	assert.Equal(t, loader.Answer{PartOne: 142, PartTwo: 142}, got)
}
