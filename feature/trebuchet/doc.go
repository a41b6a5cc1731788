// Package trebuchet solves the "trebuchet calibration" puzzle.
//
// Each line of the calibration document hides a two-digit value made of its
// first and last digit.
//
//   - Part one only counts decimal digits.
//   - Part two also counts digits spelled out as words ("one" through
//     "nine"). Words may overlap: "eightwo" yields 8 then 2.
//
// A line without any digit contributes 0.
package trebuchet
