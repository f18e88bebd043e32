package primitives

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned when input does not have the expected structure, for
	// example a missing section, a non-numeric token or rows of unequal length.
	ErrMalformedInput = errors.New("malformed input")
	// ErrEmptyInput is returned when no values are supplied where at least one is required.
	ErrEmptyInput = errors.New("empty input")
	// ErrUnrecognizedCharacter is returned for a grid character that is neither blank, digit
	// nor a known symbol. It matches ErrMalformedInput with errors.Is.
	ErrUnrecognizedCharacter = fmt.Errorf("unrecognized character: %w", ErrMalformedInput)
)

// Code is a coarse error classification used for logs and HTTP statuses.
type Code string

const (
	CodeUnknown               Code = "unknown"
	CodeMalformedInput        Code = "malformed_input"
	CodeEmptyInput            Code = "empty_input"
	CodeUnrecognizedCharacter Code = "unrecognized_character"
)

// Classify maps err onto a Code using only the sentinels above.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeUnknown
	// Checked before ErrMalformedInput, which it wraps.
	case errors.Is(err, ErrUnrecognizedCharacter):
		return CodeUnrecognizedCharacter
	case errors.Is(err, ErrMalformedInput):
		return CodeMalformedInput
	case errors.Is(err, ErrEmptyInput):
		return CodeEmptyInput
	default:
		return CodeUnknown
	}
}

// IsInputError reports whether err was caused by the puzzle input rather than the program.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMalformedInput) || errors.Is(err, ErrEmptyInput)
}
