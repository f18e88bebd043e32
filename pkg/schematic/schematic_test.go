package schematic

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzlebox.dev/aoc/pkg/primitives"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func mustParse(t *testing.T, input string) *Grid {
	t.Helper()
	g, err := Parse(input)
	require.NoError(t, err)
	return g
}

func TestExample(t *testing.T) {
	g := mustParse(t, example)
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 10, g.Height())
	assert.Equal(t, 4361, SumAdjacentToSymbols(g))
	assert.Equal(t, 467835, ProductOfPairedAdjacent(g))
}

func TestParts(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 4361, got)

	got, err = Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 467835, got)
}

func TestScansAreRepeatable(t *testing.T) {
	g := mustParse(t, example)
	before := g.String()
	for range 2 {
		assert.Equal(t, 4361, SumAdjacentToSymbols(g))
		assert.Equal(t, 467835, ProductOfPairedAdjacent(g))
	}
	assert.Equal(t, before, g.String())
	assert.Equal(t, example+"\n", before)
}

func TestStringKeepsLeadingZeros(t *testing.T) {
	g := mustParse(t, "007*\n....")
	assert.Equal(t, "007*\n....\n", g.String())
	assert.Equal(t, 7, SumAdjacentToSymbols(g))
}

func TestParseRow(t *testing.T) {
	g := mustParse(t, "...*..51.#")

	want := []Cell{
		{Kind: Blank}, {Kind: Blank}, {Kind: Blank},
		{Kind: Symbol, Symbol: '*'},
		{Kind: Blank}, {Kind: Blank},
		{Kind: NumberPart, Entity: 0}, {Kind: NumberPart, Entity: 0},
		{Kind: Blank},
		{Kind: Symbol, Symbol: '#'},
	}
	if diff := cmp.Diff(want, g.cells); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}

	wantEntities := []NumberEntity{{ID: 0, Value: 51, Span: primitives.Span{Row: 0, Start: 6, End: 8}}}
	if diff := cmp.Diff(wantEntities, g.Entities()); diff != "" {
		t.Errorf("entities mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiCellNumberCountedOnce(t *testing.T) {
	g := mustParse(t, "......51..\n.......*..")
	adj := g.AdjacentEntities(primitives.Point{X: 7, Y: 1})
	require.Len(t, adj, 1)
	assert.Equal(t, 51, adj[0].Value)
	assert.Equal(t, primitives.Span{Row: 0, Start: 6, End: 8}, adj[0].Span)
	assert.Equal(t, 51, SumAdjacentToSymbols(g))
}

func TestEqualValuesAreDistinctEntities(t *testing.T) {
	g := mustParse(t, "12.12\n..*..")
	adj := g.AdjacentEntities(primitives.Point{X: 2, Y: 1})
	require.Len(t, adj, 2)
	assert.NotEqual(t, adj[0].ID, adj[1].ID)
	assert.Equal(t, 24, SumAdjacentToSymbols(g))
	assert.Equal(t, 144, ProductOfPairedAdjacent(g))
}

func TestCornerSymbol(t *testing.T) {
	g := mustParse(t, "*1.\n23.\n...")
	adj := g.AdjacentEntities(primitives.Point{X: 0, Y: 0})
	var values []int
	for _, e := range adj {
		values = append(values, e.Value)
	}
	assert.Equal(t, []int{1, 23}, values)
	assert.Equal(t, 24, SumAdjacentToSymbols(g))
	assert.Equal(t, 23, ProductOfPairedAdjacent(g))

	edge := mustParse(t, "..7\n..#")
	assert.Equal(t, 7, SumAdjacentToSymbols(edge))
}

func TestNumberSharedBySymbolsCountedOnce(t *testing.T) {
	g := mustParse(t, "#.\n5.\n#.")
	assert.Equal(t, 5, SumAdjacentToSymbols(g))
	assert.Len(t, PartNumbers(g, AnySymbol), 1)
}

func TestGearNeedsExactlyTwoNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"none", "...\n.*.\n...", 0},
		{"one", "4..\n.*.\n...", 0},
		{"two", "4..\n.*.\n..5", 20},
		{"three", "4.6\n.*.\n..5", 0},
		{"not a gear", "4..\n.#.\n..5", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductOfPairedAdjacent(mustParse(t, tt.input)))
		})
	}
}

func TestSymbolsPredicate(t *testing.T) {
	g := mustParse(t, example)
	gears := slices.Collect(g.Symbols(IsGear))
	want := []primitives.Point{{X: 3, Y: 1}, {X: 3, Y: 4}, {X: 5, Y: 8}}
	if diff := cmp.Diff(want, gears); diff != "" {
		t.Errorf("gears mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, slices.Collect(g.Symbols(AnySymbol)), 6)

	// Only the gears: 467, 35, 617, 755 and 598 touch one.
	assert.Equal(t, 467+35+617+755+598, SumAdjacent(g, IsGear))
}

func TestAt(t *testing.T) {
	g := mustParse(t, "1.\n.#")
	c, ok := g.At(primitives.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, Cell{Kind: Symbol, Symbol: '#'}, c)

	for _, p := range []primitives.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 2}} {
		_, ok := g.At(p)
		assert.False(t, ok, "%v", p)
	}
	assert.Equal(t, 1, g.Entity(0).Value)
	assert.Equal(t, "number", NumberPart.String())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, primitives.ErrEmptyInput)

	_, err = Parse("...\n..")
	assert.ErrorIs(t, err, primitives.ErrMalformedInput)

	_, err = Parse("..a\n...")
	assert.ErrorIs(t, err, primitives.ErrUnrecognizedCharacter)
	assert.ErrorIs(t, err, primitives.ErrMalformedInput)

	_, err = Parse(". .")
	assert.ErrorIs(t, err, primitives.ErrUnrecognizedCharacter)

	_, err = Parse("99999999999999999999999")
	assert.ErrorIs(t, err, primitives.ErrMalformedInput)
}

func TestParseWithCustomSymbols(t *testing.T) {
	symbols := primitives.NewSymbolSet()
	require.NoError(t, symbols.Add('~'))

	g, err := ParseWith("3~\n..", symbols)
	require.NoError(t, err)
	assert.Equal(t, 3, SumAdjacentToSymbols(g))

	_, err = ParseWith("3*", symbols)
	assert.ErrorIs(t, err, primitives.ErrUnrecognizedCharacter)
}
