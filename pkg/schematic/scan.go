package schematic

import (
	"slices"

	"puzzlebox.dev/aoc/pkg/primitives"
)

// SymbolPredicate selects which symbol characters take part in a scan.
type SymbolPredicate func(r rune) bool

// AnySymbol accepts every symbol.
func AnySymbol(rune) bool { return true }

// IsGear accepts the '*' gear symbol.
func IsGear(r rune) bool { return r == '*' }

// AdjacentEntities returns the distinct numbers with at least one cell 8-connected to p,
// ordered by id. A number touching p through several of its cells is returned once.
func (g *Grid) AdjacentEntities(p primitives.Point) []NumberEntity {
	var ids []int
	for _, n := range p.Neighbors() {
		c, ok := g.At(n)
		if !ok || c.Kind != NumberPart {
			continue
		}
		if !slices.Contains(ids, c.Entity) {
			ids = append(ids, c.Entity)
		}
	}
	slices.Sort(ids)

	out := make([]NumberEntity, len(ids))
	for i, id := range ids {
		out[i] = g.entities[id]
	}
	return out
}

// PartNumbers returns the distinct numbers adjacent to at least one symbol accepted by
// pred, ordered by id. A number touching several symbols is returned once.
func PartNumbers(g *Grid, pred SymbolPredicate) []NumberEntity {
	seen := make([]bool, len(g.entities))
	for p := range g.Symbols(pred) {
		for _, e := range g.AdjacentEntities(p) {
			seen[e.ID] = true
		}
	}

	var out []NumberEntity
	for id, ok := range seen {
		if ok {
			out = append(out, g.entities[id])
		}
	}
	return out
}

// SumAdjacent sums the values of PartNumbers(g, pred).
func SumAdjacent(g *Grid, pred SymbolPredicate) int {
	total := 0
	for _, e := range PartNumbers(g, pred) {
		total += e.Value
	}
	return total
}

// SumAdjacentToSymbols sums every number adjacent to any symbol, counting each number once.
func SumAdjacentToSymbols(g *Grid) int {
	return SumAdjacent(g, AnySymbol)
}

// ProductOfPairedAdjacent sums, over gears touching exactly two numbers, the product of
// those two numbers.
func ProductOfPairedAdjacent(g *Grid) int {
	total := 0
	for p := range g.Symbols(IsGear) {
		adj := g.AdjacentEntities(p)
		if len(adj) != 2 {
			continue
		}
		total += adj[0].Value * adj[1].Value
	}
	return total
}

// Part1 sums the part numbers of the schematic.
func Part1(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return SumAdjacentToSymbols(g), nil
}

// Part2 sums the gear ratios of the schematic.
func Part2(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return ProductOfPairedAdjacent(g), nil
}
