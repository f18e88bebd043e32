package primitives

import "fmt"

// Interval is a half-open range [Start, End) of integers.
type Interval struct {
	Start int
	End   int
}

// MakeInterval returns the interval of the given length beginning at start.
func MakeInterval(start, length int) Interval {
	if length < 0 {
		panic(fmt.Sprintf("negative interval length %d", length))
	}
	return Interval{Start: start, End: start + length}
}

// Len returns the number of integers in the interval.
func (i Interval) Len() int {
	return i.End - i.Start
}

// Empty returns true if the interval contains no integers.
func (i Interval) Empty() bool {
	return i.End <= i.Start
}

// Contains returns true if v lies within the interval.
func (i Interval) Contains(v int) bool {
	return i.Start <= v && v < i.End
}

// Overlaps returns true if the two intervals share at least one integer.
func (i Interval) Overlaps(other Interval) bool {
	_, ok := i.Intersect(other)
	return ok
}

// Intersect returns the overlap of both intervals, and false if they are disjoint.
func (i Interval) Intersect(other Interval) (Interval, bool) {
	out := Interval{Start: max(i.Start, other.Start), End: min(i.End, other.End)}
	if out.Empty() {
		return Interval{}, false
	}
	return out, true
}

// Shift moves the interval by delta, keeping its length.
func (i Interval) Shift(delta int) Interval {
	return Interval{Start: i.Start + delta, End: i.End + delta}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End)
}
