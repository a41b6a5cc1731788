package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// DigitValue converts an ASCII digit to its integer value.
// It returns -1 for any other rune.
func DigitValue(r rune) int {
	if !IsDigit(r) {
		return -1
	}
	return int(r - '0')
}

// ToInt parses a decimal integer, ignoring surrounding whitespace.
func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return n, nil
}

// Ints parses whitespace-separated integers. Repeated spaces are ignored.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := ToInt(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Sum adds up values.
func Sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// Product multiplies values. The product of no values is 1.
func Product(values []int) int {
	total := 1
	for _, v := range values {
		total *= v
	}
	return total
}
