// Package almanac solves the seed almanac puzzle: a chain of maps that shift
// half-open ranges of numbers by constant offsets.
//
// The lowest location for a set of seeds can be found three ways: walking each
// seed through every map, walking whole seed ranges through every map, or
// composing all maps into one and querying that.
package almanac

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const seedsPrefix = "seeds:"

type Almanac struct {
	Seeds []uint64
	Maps  []Map
	// Log receives traces of the lookups. LoadAlmanac sets it to io.Discard.
	Log io.Writer
}

// LoadAlmanac parses the puzzle input. Paragraphs are separated by blank
// lines: the first lists the seeds, each following one is a map.
func LoadAlmanac(input string) (almanac Almanac, err error) {
	almanac.Log = io.Discard
	paragraphs, err := splitParagraphs(input)
	if err != nil {
		return Almanac{}, err
	}
	if len(paragraphs) == 0 {
		return Almanac{}, ErrMissingSeeds
	}

	almanac.Seeds, err = parseSeeds(paragraphs[0])
	if err != nil {
		return Almanac{}, err
	}
	for i, p := range paragraphs[1:] {
		header, _, _ := strings.Cut(p, "\n")
		if !strings.Contains(header, "map") {
			return Almanac{}, fmt.Errorf("map %d: %w: %q", i+1, ErrOrphanTranslation, header)
		}
		m, err := ParseMap(p)
		if err != nil {
			return Almanac{}, fmt.Errorf("map %d: %w", i+1, err)
		}
		if a, b, found := m.FindOverlap(); found {
			return Almanac{}, fmt.Errorf("map %d (%s): %w: %s and %s", i+1, m.Name(), ErrOverlappingSources, a, b)
		}
		almanac.Maps = append(almanac.Maps, m)
	}
	return almanac, nil
}

func splitParagraphs(input string) ([]string, error) {
	var (
		paragraphs []string
		current    []string
	)
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
		}
	}
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return paragraphs, nil
}

func parseSeeds(paragraph string) ([]uint64, error) {
	rest, found := strings.CutPrefix(strings.TrimSpace(paragraph), seedsPrefix)
	if !found {
		return nil, ErrMissingSeeds
	}
	var seeds []uint64
	for _, f := range strings.Fields(rest) {
		seed, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", f, err)
		}
		seeds = append(seeds, seed)
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	return seeds, nil
}

// SeedRanges pairs up the seeds as (start, length).
func (a Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeeds, len(a.Seeds))
	}
	ranges := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		start, length := a.Seeds[i], a.Seeds[i+1]
		if start > math.MaxUint64-length {
			return nil, fmt.Errorf("%w: seed range %d %d", ErrOverflow, start, length)
		}
		ranges = append(ranges, Interval{Start: start, End: start + length})
	}
	return ranges, nil
}

// Lookup walks a single seed through every map.
func (a Almanac) Lookup(seed uint64) (location uint64) {
	w := a.log()
	location = seed
	fmt.Fprintf(w, "seed: %d", seed)
	for _, m := range a.Maps {
		location = m.Translate(location)
		fmt.Fprintf(w, " %s: %d", m.Output, location)
	}
	fmt.Fprintln(w)
	return
}

func (a Almanac) log() io.Writer {
	if a.Log == nil {
		return io.Discard
	}
	return a.Log
}

// LowestLocation is the lowest location of any individual seed.
func (a Almanac) LowestLocation() uint64 {
	var lowest uint64
	for i, seed := range a.Seeds {
		location := a.Lookup(seed)
		if i == 0 || location < lowest {
			lowest = location
		}
	}
	return lowest
}

// LowestLocationByRange looks up every seed in [start, end) one at a time.
// It is only practical for small ranges.
func (a Almanac) LowestLocationByRange(start, end uint64) (lowest uint64, ok bool) {
	trace := a.log()
	a.Log = io.Discard
	for seed := start; seed < end; seed++ {
		location := a.Lookup(seed)
		if !ok || location < lowest {
			lowest = location
			ok = true
		}
	}
	fmt.Fprintf(trace, "range %s: lowest %d\n", Interval{Start: start, End: end}, lowest)
	return lowest, ok
}

// LowestLocationOfRanges walks whole seed ranges through the maps, splitting
// them wherever a translation boundary cuts through.
func (a Almanac) LowestLocationOfRanges(seeds []Interval) (lowest uint64, ok bool) {
	ranges := seeds
	for _, m := range a.Maps {
		var next []Interval
		for _, r := range ranges {
			next = append(next, m.TranslateRange(r)...)
		}
		fmt.Fprintf(a.log(), "%s: %d ranges -> %d ranges\n", m.Name(), len(ranges), len(next))
		ranges = next
	}
	for _, r := range ranges {
		if r.Empty() {
			continue
		}
		if !ok || r.Start < lowest {
			lowest = r.Start
			ok = true
		}
	}
	return lowest, ok
}

// Flatten composes every map into one, checking for overlaps after each step.
func (a Almanac) Flatten() Map {
	var base Map
	for _, m := range a.Maps {
		base.AddMap(m)
		base.DetectOverlaps()
		fmt.Fprintf(a.log(), "after %s: %d translations\n", m.Name(), len(base.Translations))
	}
	return base
}

// LowestLocationComposed answers the same question as LowestLocationOfRanges
// by querying the flattened map.
func (a Almanac) LowestLocationComposed(seeds []Interval) (lowest uint64, ok bool) {
	return a.Flatten().LowestInRanges(seeds)
}
