package schematic

import "fmt"

// Kind classifies a token on the grid.
type Kind uint8

const (
	// Blank is a '.' cell.
	Blank Kind = iota
	// Number is a contiguous run of decimal digits.
	Number
	// Symbol is any other single character.
	Symbol
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Number:
		return "number"
	case Symbol:
		return "symbol"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

const (
	// BlankChar marks an empty cell.
	BlankChar = '.'
	// GearChar is the only symbol that can act as a gear.
	GearChar = '*'
)

// Position locates a token: its row and the inclusive column span it covers.
// Start and End are equal for single-character tokens.
type Position struct {
	Row   int
	Start int
	End   int
}

// String renders the position as "r:<row> c:<start>-<end>".
func (p Position) String() string {
	return fmt.Sprintf("r:%d c:%d-%d", p.Row, p.Start, p.End)
}

// Token is one classified unit of the grid.
type Token struct {
	Kind Kind
	// Value is the parsed integer of a Number token, zero otherwise.
	Value int
	// Char is the character of a Symbol or Blank token, zero for numbers.
	Char rune
	Position
}

// Width returns the number of columns the token covers.
func (t *Token) Width() int { return t.End - t.Start + 1 }

// IsGearCandidate reports whether the token is a '*' symbol.
func (t *Token) IsGearCandidate() bool {
	return t.Kind == Symbol && t.Char == GearChar
}

func (t *Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("number(%d @ %s)", t.Value, t.Position)
	default:
		return fmt.Sprintf("%s(%q @ %s)", t.Kind, t.Char, t.Position)
	}
}
