// Package gears solves the "gear ratios" puzzle on top of the schematic engine.
//
// # Answers
//
//   - Part one: sum of every number adjacent (including diagonally) to a symbol.
//   - Part two: sum of the ratios of every gear, a '*' touching at least two
//     numbers whose ratio is the product of those numbers.
//
// Each part number and gear is logged at debug level.
package gears
