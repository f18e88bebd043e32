// Package boatrace counts the ways to beat a toy boat race record. Holding the button for h
// milliseconds of a t millisecond race moves the boat h*(t-h) millimeters.
package boatrace

import (
	"fmt"
	"sort"
	"strings"

	"puzzlebox.dev/aoc/pkg/primitives"
)

// Race is a race duration and the record distance to beat.
type Race struct {
	Time     int
	Distance int
}

// Travel returns the distance covered when holding the button for hold milliseconds.
func (r Race) Travel(hold int) int {
	return hold * (r.Time - hold)
}

// Beats reports whether holding for hold milliseconds beats the record. It compares without
// computing Travel, so it holds for races whose distances exceed int.
func (r Race) Beats(hold int) bool {
	rest := r.Time - hold
	if hold <= 0 || rest <= 0 {
		return r.Distance < 0
	}
	return hold > r.Distance/rest
}

// Wins returns the number of hold times in [0, Time] that beat the record.
//
// Travel is symmetric around Time/2 and increasing before it, so the winners form one
// contiguous run centered on Time/2, found by searching for its first element.
func (r Race) Wins() int {
	half := r.Time / 2
	first := sort.Search(half+1, r.Beats)
	if first > half {
		return 0
	}
	return r.Time - 2*first + 1
}

func parseLine(line, label string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), label+":")
	if !ok {
		return "", fmt.Errorf("%w: expected %q line, got %q", primitives.ErrMalformedInput, label, line)
	}
	return rest, nil
}

func splitInput(input string) (times, distances string, err error) {
	var lines []string
	for _, l := range primitives.Lines(input) {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return "", "", fmt.Errorf("races: %w", primitives.ErrEmptyInput)
	}
	if len(lines) != 2 {
		return "", "", fmt.Errorf("%w: want Time and Distance lines, got %d lines", primitives.ErrMalformedInput, len(lines))
	}
	if times, err = parseLine(lines[0], "Time"); err != nil {
		return "", "", err
	}
	if distances, err = parseLine(lines[1], "Distance"); err != nil {
		return "", "", err
	}
	return times, distances, nil
}

// Parse reads the races column by column.
func Parse(input string) ([]Race, error) {
	timesText, distancesText, err := splitInput(input)
	if err != nil {
		return nil, err
	}
	times, err := primitives.ParseInts(timesText)
	if err != nil {
		return nil, fmt.Errorf("times: %w", err)
	}
	distances, err := primitives.ParseInts(distancesText)
	if err != nil {
		return nil, fmt.Errorf("distances: %w", err)
	}
	if len(times) != len(distances) {
		return nil, fmt.Errorf("%w: %d times but %d distances", primitives.ErrMalformedInput, len(times), len(distances))
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("races: %w", primitives.ErrEmptyInput)
	}

	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Distance: distances[i]}
	}
	return races, nil
}

// ParseKerned reads the input as a single race, ignoring the spaces between digits.
func ParseKerned(input string) (Race, error) {
	timesText, distancesText, err := splitInput(input)
	if err != nil {
		return Race{}, err
	}
	join := func(s string) (int, error) {
		s = strings.Join(strings.Fields(s), "")
		if s == "" {
			return 0, fmt.Errorf("race: %w", primitives.ErrEmptyInput)
		}
		return primitives.ParseInt(s)
	}
	var r Race
	if r.Time, err = join(timesText); err != nil {
		return Race{}, fmt.Errorf("time: %w", err)
	}
	if r.Distance, err = join(distancesText); err != nil {
		return Race{}, fmt.Errorf("distance: %w", err)
	}
	return r, nil
}

// Part1 multiplies the number of ways to win each race.
func Part1(input string) (int, error) {
	races, err := Parse(input)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, r := range races {
		product *= r.Wins()
	}
	return product, nil
}

// Part2 returns the number of ways to win the single kerned race.
func Part2(input string) (int, error) {
	r, err := ParseKerned(input)
	if err != nil {
		return 0, err
	}
	return r.Wins(), nil
}
