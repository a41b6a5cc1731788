package schematic

import "aoc-solver/core/utils"

// Grid is the immutable 2-D map of tokens built from input rows.
// rows[r][c] is the token covering column c of row r.
type Grid struct {
	rows [][]*Token
}

// Build scans every line left to right and classifies its characters.
// Only ASCII digits start a number; other Unicode digits are symbols.
// Digit runs are merged into a single Number token which is registered at
// every column of the run. Build never fails: empty lines produce empty rows.
//
// Numbers are accumulated as decimal digits; runs longer than an int can
// hold wrap around.
func Build(lines []string) *Grid {
	g := &Grid{rows: make([][]*Token, len(lines))}
	for r, line := range lines {
		g.rows[r] = buildRow(r, []rune(line))
	}
	return g
}

func buildRow(r int, chars []rune) []*Token {
	row := make([]*Token, len(chars))
	for c := 0; c < len(chars); {
		ch := chars[c]
		switch {
		case utils.IsDigit(ch):
			start, value := c, 0
			for c < len(chars) && utils.IsDigit(chars[c]) {
				value = value*10 + utils.DigitValue(chars[c])
				c++
			}
			t := &Token{Kind: Number, Value: value, Position: Position{Row: r, Start: start, End: c - 1}}
			for i := start; i < c; i++ {
				row[i] = t
			}
			continue
		case ch == BlankChar:
			row[c] = &Token{Kind: Blank, Char: ch, Position: Position{Row: r, Start: c, End: c}}
		default:
			row[c] = &Token{Kind: Symbol, Char: ch, Position: Position{Row: r, Start: c, End: c}}
		}
		c++
	}
	return row
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return len(g.rows) }

// Width returns the number of columns of row r, or 0 when r is out of range.
func (g *Grid) Width(r int) int {
	if r < 0 || r >= len(g.rows) {
		return 0
	}
	return len(g.rows[r])
}

// InBounds reports whether (r, c) addresses a cell of the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < len(g.rows) && c >= 0 && c < len(g.rows[r])
}

// At returns the token covering (r, c). The second result is false when the
// cell lies outside the grid.
func (g *Grid) At(r, c int) (*Token, bool) {
	if !g.InBounds(r, c) {
		return nil, false
	}
	return g.rows[r][c], true
}

// Tokens returns every distinct token in reading order. A wide Number token
// appears once.
func (g *Grid) Tokens() []*Token {
	var out []*Token
	g.each(func(t *Token) { out = append(out, t) })
	return out
}

// each visits every distinct token once, skipping over the extra columns of
// wide tokens.
func (g *Grid) each(fn func(t *Token)) {
	for _, row := range g.rows {
		for c := 0; c < len(row); c += row[c].Width() {
			fn(row[c])
		}
	}
}
