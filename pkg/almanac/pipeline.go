// Package almanac translates seeds through an ordered sequence of piecewise-linear stage maps
// (seed to soil, soil to fertilizer, ..., humidity to location).
package almanac

import (
	"fmt"
	"iter"
	"slices"

	"puzzlebox.dev/aoc/pkg/primitives"
)

// Rule maps every value of Source onto the value at the same offset in Dest.
type Rule struct {
	Source primitives.Interval
	Dest   primitives.Interval
}

// MakeRule builds a rule from the almanac's "destination source length" triple.
func MakeRule(dest, src, length int) Rule {
	return Rule{
		Source: primitives.MakeInterval(src, length),
		Dest:   primitives.MakeInterval(dest, length),
	}
}

// Offset returns the amount added to a value of the source interval.
func (r Rule) Offset() int {
	return r.Dest.Start - r.Source.Start
}

func (r Rule) String() string {
	return fmt.Sprintf("%v -> %v", r.Source, r.Dest)
}

// Stage is one layer of the pipeline. Source intervals of its rules never overlap.
type Stage struct {
	Name  string
	Rules []Rule
}

// Lookup returns the value v maps to through one of the stage's rules, and false when no
// rule's source contains v.
func (s Stage) Lookup(v int) (int, bool) {
	for _, r := range s.Rules {
		if r.Source.Contains(v) {
			return r.Dest.Start + (v - r.Source.Start), true
		}
	}
	return 0, false
}

// Apply translates v through the stage. Values not covered by any rule pass through unchanged.
func (s Stage) Apply(v int) int {
	if mapped, ok := s.Lookup(v); ok {
		return mapped
	}
	return v
}

// Validate returns an error if two rules of the stage have overlapping sources.
func (s Stage) Validate() error {
	for i, a := range s.Rules {
		for _, b := range s.Rules[i+1:] {
			if a.Source.Overlaps(b.Source) {
				return fmt.Errorf("%w: %s: rules %v and %v overlap", primitives.ErrMalformedInput, s.Name, a, b)
			}
		}
	}
	return nil
}

// ApplyIntervals translates whole intervals through the stage. Parts of an interval covered
// by a rule are shifted by that rule's offset, uncovered parts pass through unchanged, so an
// input interval may come out split into several pieces.
func (s Stage) ApplyIntervals(in []primitives.Interval) []primitives.Interval {
	pending := slices.Clone(in)
	var out []primitives.Interval
	for _, r := range s.Rules {
		var next []primitives.Interval
		for _, piece := range pending {
			overlap, ok := piece.Intersect(r.Source)
			if !ok {
				next = append(next, piece)
				continue
			}
			out = append(out, overlap.Shift(r.Offset()))
			if left := (primitives.Interval{Start: piece.Start, End: overlap.Start}); !left.Empty() {
				next = append(next, left)
			}
			if right := (primitives.Interval{Start: overlap.End, End: piece.End}); !right.Empty() {
				next = append(next, right)
			}
		}
		pending = next
	}
	return append(out, pending...)
}

// Pipeline is an ordered, immutable sequence of stages.
type Pipeline struct {
	stages []Stage
}

// NewPipeline returns a pipeline over copies of the given stages.
func NewPipeline(stages ...Stage) *Pipeline {
	p := &Pipeline{stages: make([]Stage, len(stages))}
	for i, s := range stages {
		p.stages[i] = Stage{Name: s.Name, Rules: slices.Clone(s.Rules)}
	}
	return p
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Stages iterates the stages in evaluation order.
func (p *Pipeline) Stages() iter.Seq[Stage] {
	return func(yield func(Stage) bool) {
		for _, s := range p.stages {
			if !yield(s) {
				return
			}
		}
	}
}

// Evaluate translates v through every stage in order.
func (p *Pipeline) Evaluate(v int) int {
	for _, s := range p.stages {
		v = s.Apply(v)
	}
	return v
}

// EvaluateAll returns the minimum result of Evaluate over values.
func (p *Pipeline) EvaluateAll(values []int) (int, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("no values to evaluate: %w", primitives.ErrEmptyInput)
	}
	lowest := p.Evaluate(values[0])
	for _, v := range values[1:] {
		lowest = min(lowest, p.Evaluate(v))
	}
	return lowest, nil
}

// EvaluateIntervals returns the minimum result over every value of every interval in in,
// without enumerating the values.
func (p *Pipeline) EvaluateIntervals(in []primitives.Interval) (int, error) {
	cur := slices.DeleteFunc(slices.Clone(in), primitives.Interval.Empty)
	if len(cur) == 0 {
		return 0, fmt.Errorf("no intervals to evaluate: %w", primitives.ErrEmptyInput)
	}
	for _, s := range p.stages {
		cur = s.ApplyIntervals(cur)
	}
	lowest := cur[0].Start
	for _, i := range cur[1:] {
		lowest = min(lowest, i.Start)
	}
	return lowest, nil
}
