package primitives

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInts parses whitespace separated non-negative integers.
func ParseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := ParseInt(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseInt parses a single non-negative integer token.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrMalformedInput, s)
	}
	return n, nil
}

// Lines splits input into lines, dropping a trailing newline and carriage returns.
func Lines(input string) []string {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}
