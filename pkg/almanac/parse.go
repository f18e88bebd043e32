package almanac

import (
	"fmt"
	"math"
	"strings"

	"puzzlebox.dev/aoc/pkg/primitives"
)

const (
	seedsHeader = "seeds:"
	mapSuffix   = " map:"
)

// Almanac is a parsed puzzle input: the seeds and the pipeline they pass through.
type Almanac struct {
	Seeds    []int
	Pipeline *Pipeline
}

// LowestLocation returns the lowest location any seed maps to.
func (a *Almanac) LowestLocation() (int, error) {
	return a.Pipeline.EvaluateAll(a.Seeds)
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]primitives.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d seed values do not form (start, length) pairs", primitives.ErrMalformedInput, len(a.Seeds))
	}
	out := make([]primitives.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		start, length := a.Seeds[i], a.Seeds[i+1]
		if !fits(start, length) {
			return nil, fmt.Errorf("%w: seed range %d: %d+%d overflows", primitives.ErrMalformedInput, i/2+1, start, length)
		}
		out = append(out, primitives.MakeInterval(start, length))
	}
	return out, nil
}

// LowestRangeLocation returns the lowest location of any seed in any seed range.
func (a *Almanac) LowestRangeLocation() (int, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return a.Pipeline.EvaluateIntervals(ranges)
}

// fits reports whether an interval of length starting at start has a representable end.
// Both values are non-negative.
func fits(start, length int) bool {
	return length <= math.MaxInt-start
}

type section struct {
	line  int // 1-based line number of the header
	lines []string
}

func splitSections(input string) []section {
	var out []section
	open := false
	for i, l := range primitives.Lines(input) {
		l = strings.TrimSpace(l)
		if l == "" {
			open = false
			continue
		}
		if !open {
			out = append(out, section{line: i + 1})
			open = true
		}
		out[len(out)-1].lines = append(out[len(out)-1].lines, l)
	}
	return out
}

// Parse reads a "seeds:" line followed by blank-line separated "<name> map:" sections of
// "destination source length" triples.
func Parse(input string) (*Almanac, error) {
	sections := splitSections(input)
	if len(sections) == 0 {
		return nil, fmt.Errorf("almanac: %w", primitives.ErrEmptyInput)
	}

	seeds, err := parseSeeds(sections[0])
	if err != nil {
		return nil, err
	}
	if len(sections) == 1 {
		return nil, fmt.Errorf("%w: no map sections after seeds", primitives.ErrMalformedInput)
	}

	stages := make([]Stage, 0, len(sections)-1)
	for _, sec := range sections[1:] {
		s, err := parseStage(sec)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return &Almanac{Seeds: seeds, Pipeline: NewPipeline(stages...)}, nil
}

func parseSeeds(sec section) ([]int, error) {
	if len(sec.lines) != 1 {
		return nil, fmt.Errorf("%w: line %d: seeds section must be a single line", primitives.ErrMalformedInput, sec.line)
	}
	rest, ok := strings.CutPrefix(sec.lines[0], seedsHeader)
	if !ok {
		return nil, fmt.Errorf("%w: line %d: missing %q header", primitives.ErrMalformedInput, sec.line, seedsHeader)
	}
	seeds, err := primitives.ParseInts(rest)
	if err != nil {
		return nil, fmt.Errorf("line %d: seeds: %w", sec.line, err)
	}
	return seeds, nil
}

func parseStage(sec section) (Stage, error) {
	name, ok := strings.CutSuffix(sec.lines[0], mapSuffix)
	if !ok || name == "" {
		return Stage{}, fmt.Errorf("%w: line %d: expected \"<name>%s\", got %q", primitives.ErrMalformedInput, sec.line, mapSuffix, sec.lines[0])
	}
	s := Stage{Name: name}
	for i, l := range sec.lines[1:] {
		lineNo := sec.line + 1 + i
		nums, err := primitives.ParseInts(l)
		if err != nil {
			return Stage{}, fmt.Errorf("line %d: %s: %w", lineNo, name, err)
		}
		if len(nums) != 3 {
			return Stage{}, fmt.Errorf("%w: line %d: %s: want 3 numbers, got %d", primitives.ErrMalformedInput, lineNo, name, len(nums))
		}
		if !fits(nums[0], nums[2]) || !fits(nums[1], nums[2]) {
			return Stage{}, fmt.Errorf("%w: line %d: %s: rule %v overflows", primitives.ErrMalformedInput, lineNo, name, nums)
		}
		s.Rules = append(s.Rules, MakeRule(nums[0], nums[1], nums[2]))
	}
	if err := s.Validate(); err != nil {
		return Stage{}, fmt.Errorf("line %d: %w", sec.line, err)
	}
	return s, nil
}

// Part1 returns the lowest location of the listed seeds.
func Part1(input string) (int, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return a.LowestLocation()
}

// Part2 returns the lowest location of the seed ranges.
func Part2(input string) (int, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return a.LowestRangeLocation()
}
