// Package utils provides small text and number helpers shared by the puzzle
// parsers. It includes digit classification, whitespace-separated integer
// parsing and arithmetic folds that don't fit into a single feature package.
package utils
