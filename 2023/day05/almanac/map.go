package almanac

import (
	"bufio"
	"fmt"
	"strings"
)

// Map is a piecewise function built from translations with pairwise disjoint
// source ranges. Values not covered by any translation map to themselves.
type Map struct {
	// Input and Output are the category names from the header line, e.g.
	// "seed" and "soil" for "seed-to-soil map:". They are only used in traces.
	Input        string
	Output       string
	Translations []Translation
}

// ParseMap reads one almanac paragraph. A line containing "map" is the
// header, of which there may be at most one; every other non-blank line is a
// translation.
func ParseMap(paragraph string) (Map, error) {
	var (
		m          Map
		seenHeader bool
	)
	scanner := bufio.NewScanner(strings.NewReader(paragraph))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.Contains(line, "map"):
			// usually a missing blank line between two maps
			if seenHeader {
				return Map{}, fmt.Errorf("line %d: %w: %q", lineNo, ErrExtraHeader, line)
			}
			seenHeader = true
			m.Input, m.Output = parseHeader(line)
		default:
			t, err := ParseTranslation(line)
			if err != nil {
				return Map{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			m.Translations = append(m.Translations, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return Map{}, err
	}
	return m, nil
}

// parseHeader splits "seed-to-soil map:" into its two category names.
// Headers that don't follow the pattern yield empty names.
func parseHeader(line string) (input, output string) {
	name, _, _ := strings.Cut(line, " ")
	parts := strings.Split(name, "-to-")
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

func (m Map) Name() string {
	if m.Input == "" && m.Output == "" {
		return "map"
	}
	return m.Input + "-to-" + m.Output
}

func (m Map) Translate(v uint64) uint64 {
	for _, t := range m.Translations {
		if t.InRange(v) {
			return t.Translate(v)
		}
	}
	return v
}

// TranslateRange maps every value of r and returns the result as sorted,
// disjoint intervals. An empty r yields nothing.
func (m Map) TranslateRange(r Interval) []Interval {
	if r.Empty() {
		return nil
	}
	var output []Interval
	remaining := []Interval{r}
	for _, t := range m.Translations {
		var untouched []Interval
		for _, rr := range remaining {
			translated, passthrough := t.TranslateRange(rr)
			output = append(output, translated...)
			untouched = append(untouched, passthrough...)
		}
		remaining = untouched
	}
	output = append(output, remaining...)
	return SimplifyRanges(output)
}

// AddMap composes other after m, so that m.Translate(v) afterwards equals
// other.Translate(m.Translate(v)) before. Source ranges stay disjoint.
func (m *Map) AddMap(other Map) {
	// inputs of other that m does not claim reach other unchanged
	newInputs := SubSrc(other.Translations, m.Translations)
	// outputs of m that other leaves alone
	existing := SubDst(m.Translations, other.Translations)
	// outputs of m that other picks up, rerouted to other's destination
	shifted := ShiftOverlaps(m.Translations, other.Translations)

	translations := make([]Translation, 0, len(newInputs)+len(existing)+len(shifted))
	translations = append(translations, newInputs...)
	translations = append(translations, existing...)
	translations = append(translations, shifted...)
	m.Translations = translations
	if m.Input == "" {
		m.Input = other.Input
	}
	m.Output = other.Output
}

// FindOverlap reports the first pair of translations whose source ranges overlap.
func (m Map) FindOverlap() (a, b Translation, found bool) {
	for i, ti := range m.Translations {
		for _, tj := range m.Translations[i+1:] {
			if classify(ti.Range(), tj.Range()) != overlapNone {
				return ti, tj, true
			}
		}
	}
	return Translation{}, Translation{}, false
}

// DetectOverlaps panics if two source ranges overlap. Maps built by AddMap
// from well-formed maps never do.
func (m Map) DetectOverlaps() {
	if a, b, found := m.FindOverlap(); found {
		panic(fmt.Sprintf("overlap detected in %s: %s and %s", m.Name(), a, b))
	}
}

// LowestInRanges returns the smallest value any of ranges maps to. ok is false
// when every range is empty.
func (m Map) LowestInRanges(ranges []Interval) (lowest uint64, ok bool) {
	for _, r := range ranges {
		for _, out := range m.TranslateRange(r) {
			if !ok || out.Start < lowest {
				lowest = out.Start
				ok = true
			}
		}
	}
	return lowest, ok
}

// RangeMap lists each translation as source range -> destination range.
func (m Map) RangeMap() map[Interval]Interval {
	out := make(map[Interval]Interval, len(m.Translations))
	for _, t := range m.Translations {
		out[t.Range()] = t.OutRange()
	}
	return out
}

func (m Map) String() string {
	var sb strings.Builder
	sb.WriteString(m.Name())
	sb.WriteString(":")
	for _, t := range m.Translations {
		sb.WriteString(" ")
		sb.WriteString(t.String())
	}
	return sb.String()
}
