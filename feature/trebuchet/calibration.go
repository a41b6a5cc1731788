package trebuchet

import (
	"strings"

	"aoc-solver/core/utils"
)

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at index i of line, or -1.
func digitAt(line string, i int, spelled bool) int {
	if d := utils.DigitValue(rune(line[i])); d >= 0 {
		return d
	}
	if !spelled {
		return -1
	}
	for n, w := range words {
		if strings.HasPrefix(line[i:], w) {
			return n + 1
		}
	}
	return -1
}

// Value returns the calibration value of a line: ten times its first digit
// plus its last digit. ok is false when the line holds no digit.
func Value(line string, spelled bool) (value int, ok bool) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d := digitAt(line, i, spelled); d >= 0 {
			if first < 0 {
				first = d
			}
			last = d
		}
	}
	if first < 0 {
		return 0, false
	}
	return first*10 + last, true
}
