// Package answers reads the known-answers manifest used by the verify command.
//
// The manifest is a TOML file listing the expected results per day, for the
// bundled sample and for the real puzzle input:
//
//	[[answer]]
//	day = 3
//	kind = "sample"
//	part_one = 4361
//	part_two = 467835
//
// Either part may be omitted when its answer is not known yet.
package answers
