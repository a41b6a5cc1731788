package loader

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrPuzzleNotFound is returned when no puzzle is registered for a day.
var ErrPuzzleNotFound = errors.New("puzzle not found")

// Answer holds the two results of a puzzle.
type Answer struct {
	PartOne int `json:"part_one"`
	PartTwo int `json:"part_two"`
}

// Puzzle is a single daily solver.
type Puzzle interface {
	// Day is the puzzle's day number, used as its registry key.
	Day() int
	// Name is a short human readable title.
	Name() string
	// Sample returns the bundled example input.
	Sample() []string
	// Solve computes both answers from the input lines.
	Solve(ctx context.Context, lines []string) (Answer, error)
}

// Manager keeps the registered puzzles.
type Manager struct {
	puzzles map[int]Puzzle
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{puzzles: make(map[int]Puzzle)}
}

// Register adds puzzles to the registry. Registering a day twice is an error.
func (m *Manager) Register(puzzles ...Puzzle) error {
	for _, p := range puzzles {
		if existing, ok := m.puzzles[p.Day()]; ok {
			return fmt.Errorf("day %d already registered by %q", p.Day(), existing.Name())
		}
		m.puzzles[p.Day()] = p
	}
	return nil
}

// Get returns the puzzle registered for day.
func (m *Manager) Get(day int) (Puzzle, error) {
	p, ok := m.puzzles[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrPuzzleNotFound)
	}
	return p, nil
}

// All returns every registered puzzle ordered by day.
func (m *Manager) All() []Puzzle {
	out := make([]Puzzle, 0, len(m.puzzles))
	for _, p := range m.puzzles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day() < out[j].Day()
	})
	return out
}
