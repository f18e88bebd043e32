package schematic

import (
	"fmt"
	"strconv"

	"puzzlebox.dev/aoc/pkg/primitives"
)

// Parse reads a schematic using the default symbol set.
func Parse(input string) (*Grid, error) {
	return ParseWith(input, primitives.DefaultSymbols())
}

// ParseWith reads a schematic in which '.' is blank, runs of digits are numbers and the
// characters of symbols are symbols. Any other character is an error.
func ParseWith(input string, symbols *primitives.SymbolSet) (*Grid, error) {
	lines := primitives.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("schematic: %w", primitives.ErrEmptyInput)
	}

	g := &Grid{width: len([]rune(lines[0])), height: len(lines)}
	g.cells = make([]Cell, 0, g.width*g.height)
	for y, line := range lines {
		row := []rune(line)
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", primitives.ErrMalformedInput, y, len(row), g.width)
		}
		if err := g.parseRow(y, row, symbols); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Grid) parseRow(y int, row []rune, symbols *primitives.SymbolSet) error {
	for x := 0; x < len(row); {
		r := row[x]
		switch {
		case r == blank:
			g.cells = append(g.cells, Cell{Kind: Blank})
			x++
		case isDigit(r):
			end := x + 1
			for end < len(row) && isDigit(row[end]) {
				end++
			}
			value, err := strconv.Atoi(string(row[x:end]))
			if err != nil {
				return fmt.Errorf("%w: row %d: number at x=%d: %v", primitives.ErrMalformedInput, y, x, err)
			}
			id := len(g.entities)
			g.entities = append(g.entities, NumberEntity{
				ID:    id,
				Value: value,
				Span:  primitives.Span{Row: y, Start: x, End: end},
			})
			for ; x < end; x++ {
				g.cells = append(g.cells, Cell{Kind: NumberPart, Entity: id})
			}
		case symbols.Contains(r):
			g.cells = append(g.cells, Cell{Kind: Symbol, Symbol: r})
			x++
		default:
			return fmt.Errorf("%w: %q at row %d, x=%d", primitives.ErrUnrecognizedCharacter, r, y, x)
		}
	}
	return nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
