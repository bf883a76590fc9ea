package almanac

import (
	"cmp"
	"fmt"
	"slices"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start uint64
	End   uint64
}

func (r Interval) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Interval) Empty() bool {
	return r.End <= r.Start
}

func (r Interval) Contains(v uint64) bool {
	return v >= r.Start && v < r.End
}

// Intersect returns the overlap of r and o, which is empty when they only abut.
func (r Interval) Intersect(o Interval) Interval {
	start := max(r.Start, o.Start)
	end := min(r.End, o.End)
	return Interval{Start: start, End: max(start, end)}
}

func (r Interval) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

//go:generate go tool stringer -type=overlap -trimprefix=overlap

// overlap describes where a cutter interval sits relative to a subject interval.
type overlap int

const (
	overlapNone overlap = iota
	// cutter covers the whole subject
	overlapCover
	// cutter covers the head of the subject, the tail survives
	overlapHead
	// cutter covers the tail of the subject, the head survives
	overlapTail
	// cutter is strictly inside the subject, both ends survive
	overlapInside
)

// classify places cutter relative to subject. Both are treated as half-open,
// so intervals that only touch are overlapNone.
func classify(subject, cutter Interval) overlap {
	switch {
	case cutter.End <= subject.Start || cutter.Start >= subject.End:
		return overlapNone
	case cutter.Start <= subject.Start && cutter.End >= subject.End:
		return overlapCover
	case cutter.Start <= subject.Start && cutter.End < subject.End:
		return overlapHead
	case cutter.Start > subject.Start && cutter.End >= subject.End:
		return overlapTail
	case cutter.Start > subject.Start && cutter.End < subject.End:
		return overlapInside
	}
	panic(fmt.Sprintf("classify: unhandled case subject=%s cutter=%s", subject, cutter))
}

// SimplifyRanges sorts ranges by start and merges any that overlap or touch.
// Empty ranges are dropped. The input slice is not modified.
func SimplifyRanges(ranges []Interval) []Interval {
	sorted := make([]Interval, 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}
	if len(sorted) <= 1 {
		return sorted
	}
	slices.SortFunc(sorted, func(a, b Interval) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	out := make([]Interval, 0, len(sorted))
	current := sorted[0]
	for _, r := range sorted[1:] {
		if r.Start <= current.End {
			// overlapping, touching, or contained in current
			current.End = max(current.End, r.End)
			continue
		}
		out = append(out, current)
		current = r
	}
	return append(out, current)
}
