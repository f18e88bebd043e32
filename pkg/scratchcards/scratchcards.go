// Package scratchcards scores cards by how many of the owned numbers are winning numbers.
package scratchcards

import (
	"fmt"
	"strings"

	"puzzlebox.dev/aoc/pkg/primitives"
)

// Card is one scratchcard.
type Card struct {
	ID      int
	Winning []int
	Mine    []int
}

// Matches returns the number of distinct owned numbers that are also winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = true
	}
	count := 0
	for _, n := range c.Mine {
		if winning[n] {
			count++
			// Count each number once.
			winning[n] = false
		}
	}
	return count
}

// Points returns 1 for the first match, doubled for every further match.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// CountCards returns how many cards are held once every card with n matches has won a copy
// of each of the n cards after it. Copies past the last card are not awarded.
func CountCards(cards []Card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total
}

// ParseCard reads "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing ':' in %q", primitives.ErrMalformedInput, line)
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("%w: expected \"Card <id>\", got %q", primitives.ErrMalformedInput, head)
	}
	id, err := primitives.ParseInt(fields[1])
	if err != nil {
		return Card{}, fmt.Errorf("card id: %w", err)
	}
	winningText, mineText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: card %d: missing '|'", primitives.ErrMalformedInput, id)
	}

	c := Card{ID: id}
	if c.Winning, err = primitives.ParseInts(winningText); err != nil {
		return Card{}, fmt.Errorf("card %d: winning numbers: %w", id, err)
	}
	if c.Mine, err = primitives.ParseInts(mineText); err != nil {
		return Card{}, fmt.Errorf("card %d: numbers: %w", id, err)
	}
	return c, nil
}

// Parse reads one card per line.
func Parse(input string) ([]Card, error) {
	var cards []Card
	for i, l := range primitives.Lines(input) {
		if strings.TrimSpace(l) == "" {
			continue
		}
		c, err := ParseCard(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("cards: %w", primitives.ErrEmptyInput)
	}
	return cards, nil
}

// Part1 sums the points of every card.
func Part1(input string) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total, nil
}

// Part2 counts the cards held after all copies are won.
func Part2(input string) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return CountCards(cards), nil
}
