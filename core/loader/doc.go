// Package loader provides the puzzle registry.
//
// Every daily puzzle implements the Puzzle interface and is registered with a
// Manager, which the CLI commands use to look puzzles up by day.
//
// # Puzzle Interface
//
//	type Puzzle interface {
//	    Day() int
//	    Name() string
//	    Sample() []string
//	    Solve(ctx context.Context, lines []string) (Answer, error)
//	}
//
// # Manager
//
// The Manager struct holds the registry of available puzzles. It handles:
//   - Registration of puzzles via Register()
//   - Lookup by day via Get()
//   - Ordered listing via All()
//
// Puzzles are independent of each other: each one receives the raw input
// lines and returns both answers.
package loader
