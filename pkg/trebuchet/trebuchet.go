// Package trebuchet recovers calibration values from lines of text: the first and last
// digit of each line form a two-digit number.
package trebuchet

import (
	"fmt"
	"strings"

	"puzzlebox.dev/aoc/pkg/primitives"
)

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Digits returns the decimal digits of line in order. When spelled is set, digit words
// such as "seven" count too, and overlapping words ("eightwo") both count.
func Digits(line string, spelled bool) []int {
	var out []int
	for i := 0; i < len(line); i++ {
		if c := line[i]; '0' <= c && c <= '9' {
			out = append(out, int(c-'0'))
			continue
		}
		if !spelled {
			continue
		}
		for n, w := range digitWords {
			if strings.HasPrefix(line[i:], w) {
				out = append(out, n+1)
				break
			}
		}
	}
	return out
}

// Calibrate returns the sum of every line's calibration value.
func Calibrate(input string, spelled bool) (int, error) {
	lines := primitives.Lines(input)
	if len(lines) == 0 {
		return 0, fmt.Errorf("calibration document: %w", primitives.ErrEmptyInput)
	}
	total := 0
	for i, l := range lines {
		if l == "" {
			continue
		}
		d := Digits(l, spelled)
		if len(d) == 0 {
			return 0, fmt.Errorf("%w: line %d: no digit in %q", primitives.ErrMalformedInput, i+1, l)
		}
		total += d[0]*10 + d[len(d)-1]
	}
	return total, nil
}

// Part1 sums calibration values using numeric digits only.
func Part1(input string) (int, error) {
	return Calibrate(input, false)
}

// Part2 sums calibration values counting spelled-out digits as well.
func Part2(input string) (int, error) {
	return Calibrate(input, true)
}
