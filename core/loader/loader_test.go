package loader_test

import (
	"context"
	"testing"

	"aoc-solver/core/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPuzzle struct {
	day  int
	name string
}

func (s stubPuzzle) Day() int         { return s.day }
func (s stubPuzzle) Name() string     { return s.name }
func (s stubPuzzle) Sample() []string { return []string{"x"} }
func (s stubPuzzle) Solve(_ context.Context, lines []string) (loader.Answer, error) {
	return loader.Answer{PartOne: len(lines)}, nil
}

func TestManager(t *testing.T) {
	mgr := loader.NewManager()
	require.NoError(t, mgr.Register(stubPuzzle{4, "four"}, stubPuzzle{1, "one"}, stubPuzzle{3, "three"}))

	t.Run("Get", func(t *testing.T) {
		p, err := mgr.Get(3)
		require.NoError(t, err)
		assert.Equal(t, "three", p.Name())
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := mgr.Get(2)
		assert.ErrorIs(t, err, loader.ErrPuzzleNotFound)
	})

	t.Run("AllSortedByDay", func(t *testing.T) {
		var days []int
		for _, p := range mgr.All() {
			days = append(days, p.Day())
		}
		assert.Equal(t, []int{1, 3, 4}, days)
	})

	t.Run("DuplicateDay", func(t *testing.T) {
		err := mgr.Register(stubPuzzle{1, "again"})
		assert.ErrorContains(t, err, `day 1 already registered by "one"`)
	})
}
