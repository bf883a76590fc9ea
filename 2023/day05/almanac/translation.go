package almanac

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Translation maps the source range [Src, Src+Rng) onto [Dst, Dst+Rng).
// Values outside the source range pass through unchanged.
type Translation struct {
	Src uint64
	Dst uint64
	Rng uint64
}

// ParseTranslation reads a "destination source length" line.
func ParseTranslation(line string) (Translation, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Translation{}, fmt.Errorf("%w: want 3 fields, got %d in %q", ErrMalformedTranslation, len(fields), line)
	}
	var nums [3]uint64
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Translation{}, fmt.Errorf("%w: %w", ErrMalformedTranslation, err)
		}
		nums[i] = n
	}
	t := Translation{Dst: nums[0], Src: nums[1], Rng: nums[2]}
	if t.Rng == 0 {
		return Translation{}, fmt.Errorf("%w: %q", ErrEmptyTranslation, line)
	}
	if t.Src > math.MaxUint64-t.Rng || t.Dst > math.MaxUint64-t.Rng {
		return Translation{}, fmt.Errorf("%w: %q", ErrOverflow, line)
	}
	return t, nil
}

// Start is inclusive.
func (t Translation) Start() uint64 { return t.Src }

// End is exclusive.
func (t Translation) End() uint64 { return t.Src + t.Rng }

func (t Translation) OutStart() uint64 { return t.Dst }

func (t Translation) OutEnd() uint64 { return t.Dst + t.Rng }

func (t Translation) Range() Interval { return Interval{Start: t.Start(), End: t.End()} }

func (t Translation) OutRange() Interval { return Interval{Start: t.OutStart(), End: t.OutEnd()} }

func (t Translation) InRange(v uint64) bool {
	return v >= t.Src && v < t.Src+t.Rng
}

func (t Translation) Translate(v uint64) uint64 {
	if t.InRange(v) {
		return t.Dst + (v - t.Src)
	}
	return v
}

// SnipLeft drops k values from the front of both the source and destination.
func (t *Translation) SnipLeft(k uint64) {
	if k > t.Rng {
		panic(fmt.Sprintf("snip left: amount %d is larger than rng %d", k, t.Rng))
	}
	t.Src += k
	t.Dst += k
	t.Rng -= k
}

// SnipRight drops k values from the back.
func (t *Translation) SnipRight(k uint64) {
	if k > t.Rng {
		panic(fmt.Sprintf("snip right: amount %d is larger than rng %d", k, t.Rng))
	}
	t.Rng -= k
}

// mapInterval shifts r, which must lie inside the source range, by the
// translation offset.
func (t Translation) mapInterval(r Interval) Interval {
	start := t.Translate(r.Start)
	return Interval{Start: start, End: start + r.Len()}
}

// TranslateRange splits r into the parts covered by t, already translated,
// and the parts t leaves alone. Together they partition r.
func (t Translation) TranslateRange(r Interval) (translated, passthrough []Interval) {
	if r.Empty() {
		return nil, nil
	}
	tr := t.Range()
	switch o := classify(r, tr); o {
	case overlapNone:
		passthrough = append(passthrough, r)
	case overlapCover:
		translated = append(translated, t.mapInterval(r))
	case overlapHead:
		translated = append(translated, t.mapInterval(Interval{Start: r.Start, End: tr.End}))
		passthrough = append(passthrough, Interval{Start: tr.End, End: r.End})
	case overlapTail:
		passthrough = append(passthrough, Interval{Start: r.Start, End: tr.Start})
		translated = append(translated, t.mapInterval(Interval{Start: tr.Start, End: r.End}))
	case overlapInside:
		passthrough = append(passthrough, Interval{Start: r.Start, End: tr.Start})
		translated = append(translated, t.mapInterval(tr))
		passthrough = append(passthrough, Interval{Start: tr.End, End: r.End})
	default:
		panic(fmt.Sprintf("translate range: unhandled case %s for %s over %s", o, t, r))
	}
	return translated, passthrough
}

func (t Translation) String() string {
	return fmt.Sprintf("%s->%s", t.Range(), t.OutRange())
}
