package primitives

import (
	"fmt"
	"math/bits"
	"strings"
)

// SymbolSet efficiently represents a set of printable ASCII characters using bit manipulation.
// It supports characters from '!' (33) to '~' (126), total of 94 characters, which fits in
// two uint64 words.
type SymbolSet struct {
	bits  [2]uint64
	count int
}

const (
	minSymbol  = '!'                       // 33
	maxSymbol  = '~'                       // 126
	numSymbols = maxSymbol - minSymbol + 1 // 94 characters
)

// NewSymbolSet creates an empty symbol set.
func NewSymbolSet() *SymbolSet {
	return &SymbolSet{}
}

// DefaultSymbols returns the punctuation recognized as engine schematic symbols.
func DefaultSymbols() *SymbolSet {
	s := NewSymbolSet()
	for _, r := range "!@#$%^&*()-+/<>?_=" {
		// All of these are in range.
		_ = s.Add(r)
	}
	return s
}

func slot(r rune) (word int, mask uint64) {
	pos := uint(r - minSymbol)
	return int(pos / 64), 1 << (pos % 64)
}

func (s *SymbolSet) recount() {
	s.count = bits.OnesCount64(s.bits[0]) + bits.OnesCount64(s.bits[1])
}

// Add adds a character to the set.
func (s *SymbolSet) Add(r rune) error {
	if r < minSymbol || r > maxSymbol {
		return fmt.Errorf("character %q is out of range", r)
	}

	w, m := slot(r)
	if s.bits[w]&m == 0 {
		s.bits[w] |= m
		s.recount()
	}
	return nil
}

// AddAll adds all characters from another set to this set.
func (s *SymbolSet) AddAll(other *SymbolSet) {
	old := s.bits
	s.bits[0] |= other.bits[0]
	s.bits[1] |= other.bits[1]
	if s.bits != old {
		s.recount()
	}
}

// Contains checks if a character is in the set.
func (s *SymbolSet) Contains(r rune) bool {
	if r < minSymbol || r > maxSymbol {
		return false
	}
	w, m := slot(r)
	return s.bits[w]&m != 0
}

// Count returns the number of characters in the set.
func (s *SymbolSet) Count() int {
	return s.count
}

// Clone creates a copy of the symbol set.
func (s *SymbolSet) Clone() *SymbolSet {
	return &SymbolSet{
		bits:  s.bits,
		count: s.count,
	}
}

// String returns a string representation of the set.
func (s *SymbolSet) String() string {
	if s.count == 0 {
		return fmt.Sprintf("symbols [] (0/%d)", numSymbols)
	}

	var chars []string
	for r := rune(minSymbol); r <= maxSymbol; r++ {
		if s.Contains(r) {
			chars = append(chars, fmt.Sprintf("'%c'", r))
		}
	}
	return fmt.Sprintf("symbols [%s] (%d/%d)", strings.Join(chars, ", "), s.count, numSymbols)
}
