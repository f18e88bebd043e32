// Package aoc registers the daily puzzle solutions and exposes them to the command line and
// to the SolvePuzzle cloud function.
package aoc

import (
	"errors"
	"fmt"
	"slices"

	"puzzlebox.dev/aoc/pkg/almanac"
	"puzzlebox.dev/aoc/pkg/boatrace"
	"puzzlebox.dev/aoc/pkg/cubes"
	"puzzlebox.dev/aoc/pkg/schematic"
	"puzzlebox.dev/aoc/pkg/scratchcards"
	"puzzlebox.dev/aoc/pkg/trebuchet"
)

// ErrUnknownPuzzle is returned for days or parts that have no solution.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

// Part computes one answer from a puzzle input.
type Part func(input string) (int, error)

// Puzzle is the solution of one day.
type Puzzle struct {
	Day   int
	Title string
	Part1 Part
	Part2 Part
}

var puzzles = []Puzzle{
	{Day: 1, Title: "Trebuchet?!", Part1: trebuchet.Part1, Part2: trebuchet.Part2},
	{Day: 2, Title: "Cube Conundrum", Part1: cubes.Part1, Part2: cubes.Part2},
	{Day: 3, Title: "Gear Ratios", Part1: schematic.Part1, Part2: schematic.Part2},
	{Day: 4, Title: "Scratchcards", Part1: scratchcards.Part1, Part2: scratchcards.Part2},
	{Day: 5, Title: "If You Give A Seed A Fertilizer", Part1: almanac.Part1, Part2: almanac.Part2},
	{Day: 6, Title: "Wait For It", Part1: boatrace.Part1, Part2: boatrace.Part2},
}

// Puzzles returns every registered puzzle ordered by day.
func Puzzles() []Puzzle {
	return slices.Clone(puzzles)
}

// Lookup returns the puzzle of the given day.
func Lookup(day int) (Puzzle, error) {
	for _, p := range puzzles {
		if p.Day == day {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("%w: day %d", ErrUnknownPuzzle, day)
}

// Part returns part n (1 or 2) of the puzzle.
func (p Puzzle) Part(n int) (Part, error) {
	switch n {
	case 1:
		return p.Part1, nil
	case 2:
		return p.Part2, nil
	default:
		return nil, fmt.Errorf("%w: day %d part %d", ErrUnknownPuzzle, p.Day, n)
	}
}
