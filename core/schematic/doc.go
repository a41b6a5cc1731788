// Package schematic models an engine schematic: a 2-D grid of digits, symbols
// and blank cells, and answers adjacency questions about it.
//
// # Tokens
//
// Every cell of the input belongs to exactly one Token:
//   - Number: a maximal run of decimal digits on one row (e.g. "467").
//   - Symbol: any single character that is neither a digit nor '.'.
//   - Blank: a single '.'.
//
// A Number token is registered at every column it spans, so looking up a
// column is O(1) regardless of how wide the token is.
//
// # Queries
//
// Tokens do not point back at the grid. All spatial queries are methods on
// *Grid that take the token explicitly:
//
//	g := schematic.Build(lines)
//	for _, t := range g.PartNumbers() {
//	    fmt.Println(t.Value)
//	}
//	if ratio, ok := g.GearRatio(t); ok {
//	    sum += ratio
//	}
//
// Neighbour lookups are total: cells outside the grid (or past the end of a
// shorter row) are simply absent.
//
// # Complexity
//
//   - Build: O(rows × cols).
//   - Neighbors: O(width of the token), bounded by the row width.
//   - PartSum / GearRatioSum: O(rows × cols).
package schematic
