package primitives

import "golang.org/x/exp/constraints"

// Pt2 is a two dimensional grid coordinate. X grows to the right, Y grows downwards.
//
// Coordinates are signed so that neighbors of an edge cell can be computed before being
// bounds-checked.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Point is the coordinate type used by grids in this module.
type Point = Pt2[int]

// directions lists the 8-connected offsets: up-left, up, up-right, left, right, down-left,
// down, down-right.
var directions = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Add returns the component-wise sum of p and o.
func (p Pt2[T]) Add(o Pt2[T]) Pt2[T] {
	return Pt2[T]{X: p.X + o.X, Y: p.Y + o.Y}
}

// Neighbors returns the eight 8-connected neighbors of p. Some may be out of bounds.
func (p Pt2[T]) Neighbors() [8]Pt2[T] {
	var out [8]Pt2[T]
	for i, d := range directions {
		out[i] = p.Add(Pt2[T]{X: T(d.X), Y: T(d.Y)})
	}
	return out
}

// InBounds returns true if p lies within a width x height grid anchored at the origin.
func (p Pt2[T]) InBounds(width, height T) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}
