package answers

import (
	"errors"
	"fmt"

	"aoc-solver/core/loader"

	"github.com/BurntSushi/toml"
)

const (
	KindSample = "sample"
	KindInput  = "input"
)

// ErrNoAnswer is returned when the manifest has no entry for a day and kind.
var ErrNoAnswer = errors.New("no known answer")

// Expected is one manifest entry. A nil part is unknown and never checked.
type Expected struct {
	Day     int    `toml:"day"`
	Kind    string `toml:"kind"`
	PartOne *int   `toml:"part_one"`
	PartTwo *int   `toml:"part_two"`
}

// Mismatch describes a part whose answer differs from the manifest.
type Mismatch struct {
	Part string
	Want int
	Got  int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %d, got %d", m.Part, m.Want, m.Got)
}

// Manifest is the parsed answers file.
type Manifest struct {
	Answers []Expected `toml:"answer"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for i, a := range m.Answers {
		if a.Kind != KindSample && a.Kind != KindInput {
			return nil, fmt.Errorf("%s: answer %d (day %d): unknown kind %q", path, i, a.Day, a.Kind)
		}
	}
	return &m, nil
}

// Lookup returns the expected answer for day and kind.
func (m *Manifest) Lookup(day int, kind string) (Expected, error) {
	for _, a := range m.Answers {
		if a.Day == day && a.Kind == kind {
			return a, nil
		}
	}
	return Expected{}, fmt.Errorf("day %d %s: %w", day, kind, ErrNoAnswer)
}

// Check compares got against the known parts of e.
func Check(e Expected, got loader.Answer) []Mismatch {
	var out []Mismatch
	if e.PartOne != nil && *e.PartOne != got.PartOne {
		out = append(out, Mismatch{Part: "part one", Want: *e.PartOne, Got: got.PartOne})
	}
	if e.PartTwo != nil && *e.PartTwo != got.PartTwo {
		out = append(out, Mismatch{Part: "part two", Want: *e.PartTwo, Got: got.PartTwo})
	}
	return out
}
