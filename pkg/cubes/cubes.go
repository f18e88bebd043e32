// Package cubes evaluates games in which handfuls of red, green and blue cubes are drawn
// from a bag.
package cubes

import (
	"fmt"
	"strings"

	"puzzlebox.dev/aoc/pkg/primitives"
)

// Draw counts cubes by color.
type Draw struct {
	Red   int
	Green int
	Blue  int
}

// Bag is the content the elf claims the bag holds.
var Bag = Draw{Red: 12, Green: 13, Blue: 14}

// Power returns the product of the three counts.
func (d Draw) Power() int {
	return d.Red * d.Green * d.Blue
}

// Fits returns true if every count of d is at most the matching count of bag.
func (d Draw) Fits(bag Draw) bool {
	return d.Red <= bag.Red && d.Green <= bag.Green && d.Blue <= bag.Blue
}

// Game is one recorded game: its id and the draws shown in each round.
type Game struct {
	ID     int
	Rounds []Draw
}

// Minimum returns the fewest cubes of each color the bag must have held.
func (g Game) Minimum() Draw {
	var m Draw
	for _, r := range g.Rounds {
		m.Red = max(m.Red, r.Red)
		m.Green = max(m.Green, r.Green)
		m.Blue = max(m.Blue, r.Blue)
	}
	return m
}

// PossibleWith returns true if every round of the game could be drawn from bag.
func (g Game) PossibleWith(bag Draw) bool {
	return g.Minimum().Fits(bag)
}

// ParseGame reads "Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", primitives.ErrMalformedInput, line)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing \"Game\" prefix in %q", primitives.ErrMalformedInput, line)
	}
	id, err := primitives.ParseInt(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("game id: %w", err)
	}

	g := Game{ID: id}
	for _, round := range strings.Split(body, ";") {
		d, err := parseDraw(round)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Rounds = append(g.Rounds, d)
	}
	return g, nil
}

func parseDraw(round string) (Draw, error) {
	var d Draw
	for _, part := range strings.Split(round, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return Draw{}, fmt.Errorf("%w: expected \"<count> <color>\", got %q", primitives.ErrMalformedInput, strings.TrimSpace(part))
		}
		n, err := primitives.ParseInt(fields[0])
		if err != nil {
			return Draw{}, err
		}
		switch fields[1] {
		case "red":
			d.Red += n
		case "green":
			d.Green += n
		case "blue":
			d.Blue += n
		default:
			return Draw{}, fmt.Errorf("%w: invalid color %q", primitives.ErrMalformedInput, fields[1])
		}
	}
	return d, nil
}

// Parse reads one game per line.
func Parse(input string) ([]Game, error) {
	var games []Game
	for i, l := range primitives.Lines(input) {
		if strings.TrimSpace(l) == "" {
			continue
		}
		g, err := ParseGame(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("games: %w", primitives.ErrEmptyInput)
	}
	return games, nil
}

// Part1 sums the ids of the games possible with Bag.
func Part1(input string) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		if g.PossibleWith(Bag) {
			total += g.ID
		}
	}
	return total, nil
}

// Part2 sums the power of every game's minimum bag.
func Part2(input string) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		total += g.Minimum().Power()
	}
	return total, nil
}
