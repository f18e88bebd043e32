// Package schematic scans an engine schematic: a grid of blanks, symbols and multi-cell
// numbers, where numbers touching a symbol are part numbers.
package schematic

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"puzzlebox.dev/aoc/pkg/primitives"
)

const blank = '.'

// CellKind distinguishes the contents of a grid cell.
type CellKind int

const (
	Blank CellKind = iota
	Symbol
	NumberPart
)

func (k CellKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Symbol:
		return "symbol"
	case NumberPart:
		return "number"
	default:
		return "CellKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is one grid position.
type Cell struct {
	Kind CellKind
	// Symbol is the character of a Symbol cell.
	Symbol rune
	// Entity is the id of the NumberEntity a NumberPart cell belongs to.
	Entity int
}

// NumberEntity is a number spanning one or more consecutive cells of a row.
//
// Two entities may share a value; they are told apart by ID, which is unique per span.
type NumberEntity struct {
	ID    int
	Value int
	Span  primitives.Span
}

// Grid is a rectangular schematic. It is never modified after parsing.
type Grid struct {
	width    int
	height   int
	cells    []Cell // row-major
	entities []NumberEntity
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the cell at p, and false if p is outside the grid.
func (g *Grid) At(p primitives.Point) (Cell, bool) {
	if !p.InBounds(g.width, g.height) {
		return Cell{}, false
	}
	return g.cells[p.Y*g.width+p.X], true
}

// Entity returns the number entity with the given id.
func (g *Grid) Entity(id int) NumberEntity {
	return g.entities[id]
}

// Entities returns every number in the grid in reading order.
func (g *Grid) Entities() []NumberEntity {
	return slices.Clone(g.entities)
}

// Symbols iterates the coordinates of symbol cells accepted by pred, in reading order.
func (g *Grid) Symbols(pred SymbolPredicate) iter.Seq[primitives.Point] {
	return func(yield func(primitives.Point) bool) {
		for i, c := range g.cells {
			if c.Kind != Symbol || !pred(c.Symbol) {
				continue
			}
			if !yield(primitives.Point{X: i % g.width, Y: i / g.width}) {
				return
			}
		}
	}
}

// String renders the grid back into its textual form.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.height {
		for x := 0; x < g.width; {
			c := g.cells[y*g.width+x]
			switch c.Kind {
			case Symbol:
				sb.WriteRune(c.Symbol)
				x++
			case NumberPart:
				e := g.entities[c.Entity]
				fmt.Fprintf(&sb, "%0*d", e.Span.Len(), e.Value)
				x = e.Span.End
			default:
				sb.WriteRune(blank)
				x++
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
