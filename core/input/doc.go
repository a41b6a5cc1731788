// Package input loads puzzle input as an ordered sequence of lines.
//
// # Sources
//
//   - file: reads <dir>/<pattern> from the local filesystem (default
//     inputs/day03.txt for day 3).
//   - s3: reads the same object name from the configured storage bucket.
//   - PathSource: a single explicit file, used by the --input flag.
//
// Every source trims each line and drops trailing blank lines, so puzzles
// receive exactly one entry per row of the puzzle text.
//
// A missing input is returned as an error; callers treat it as fatal.
package input
