package schematic

import "aoc-solver/core/utils"

// Gear is a '*' symbol with at least two adjacent numbers.
type Gear struct {
	Symbol *Token
	Parts  []*Token
	Ratio  int
}

// Neighbors returns the distinct tokens touching t: the cell left of Start,
// the cell right of End, and every cell of the rows directly above and below
// within columns [Start-1, End+1]. Cells outside the grid are skipped.
// The result is ordered left, right, above (left to right), below (left to
// right).
func (g *Grid) Neighbors(t *Token) []*Token {
	seen := make(map[Position]struct{}, 8)
	var out []*Token
	add := func(r, c int) {
		n, ok := g.At(r, c)
		if !ok {
			return
		}
		if _, dup := seen[n.Position]; dup {
			return
		}
		seen[n.Position] = struct{}{}
		out = append(out, n)
	}

	add(t.Row, t.Start-1)
	add(t.Row, t.End+1)
	for _, r := range [2]int{t.Row - 1, t.Row + 1} {
		for c := t.Start - 1; c <= t.End+1; c++ {
			add(r, c)
		}
	}
	return out
}

// neighborsOf returns the neighbours of t with the given kind.
func (g *Grid) neighborsOf(t *Token, kind Kind) []*Token {
	var out []*Token
	for _, n := range g.Neighbors(t) {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// AdjacentSymbols returns the Symbol tokens touching t.
func (g *Grid) AdjacentSymbols(t *Token) []*Token {
	return g.neighborsOf(t, Symbol)
}

// IsEnginePart reports whether t is a Number token touching any symbol.
func (g *Grid) IsEnginePart(t *Token) bool {
	if t.Kind != Number {
		return false
	}
	for _, n := range g.Neighbors(t) {
		if n.Kind == Symbol {
			return true
		}
	}
	return false
}

// GearRatio returns the product of all Number tokens adjacent to a '*'
// symbol. The second result is false when t is not a '*' or touches fewer
// than two numbers. More than two adjacent numbers are all multiplied.
func (g *Grid) GearRatio(t *Token) (int, bool) {
	parts, ok := g.gearParts(t)
	if !ok {
		return 0, false
	}
	return product(parts), true
}

func (g *Grid) gearParts(t *Token) ([]*Token, bool) {
	if !t.IsGearCandidate() {
		return nil, false
	}
	parts := g.neighborsOf(t, Number)
	if len(parts) < 2 {
		return nil, false
	}
	return parts, true
}

func product(parts []*Token) int {
	values := make([]int, len(parts))
	for i, p := range parts {
		values[i] = p.Value
	}
	return utils.Product(values)
}

// PartNumbers returns every Number token that is an engine part, in reading
// order.
func (g *Grid) PartNumbers() []*Token {
	var out []*Token
	g.each(func(t *Token) {
		if g.IsEnginePart(t) {
			out = append(out, t)
		}
	})
	return out
}

// Gears returns every gear in reading order.
func (g *Grid) Gears() []Gear {
	var out []Gear
	g.each(func(t *Token) {
		if parts, ok := g.gearParts(t); ok {
			out = append(out, Gear{Symbol: t, Parts: parts, Ratio: product(parts)})
		}
	})
	return out
}

// PartSum is the sum of all engine part numbers.
func (g *Grid) PartSum() int {
	sum := 0
	for _, t := range g.PartNumbers() {
		sum += t.Value
	}
	return sum
}

// GearRatioSum is the sum of all gear ratios.
func (g *Grid) GearRatioSum() int {
	sum := 0
	for _, gear := range g.Gears() {
		sum += gear.Ratio
	}
	return sum
}
