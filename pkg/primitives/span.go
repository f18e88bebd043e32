package primitives

import (
	"fmt"
	"iter"
)

// Span represents a horizontal run of cells on a single grid row, from Start (inclusive)
// to End (exclusive) in x.
type Span struct {
	Row   int
	Start int
	End   int
}

// Len returns the number of cells in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns true if p is one of the span's cells.
func (s Span) Contains(p Point) bool {
	return p.Y == s.Row && s.Start <= p.X && p.X < s.End
}

// Points iterates the span's coordinates from left to right.
func (s Span) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for x := s.Start; x < s.End; x++ {
			if !yield(Point{X: x, Y: s.Row}) {
				return
			}
		}
	}
}

func (s Span) String() string {
	return fmt.Sprintf("row %d [%d, %d)", s.Row, s.Start, s.End)
}
