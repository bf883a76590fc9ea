package almanac

import (
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	domain = 200
	// destinations may land a little past the domain
	spill  = 50
	rounds = 200
)

// segments cuts [0, domain) into consecutive pieces of random length.
func segments(rng *rand.Rand) []Interval {
	var out []Interval
	for start := uint64(0); start < domain; {
		end := min(start+1+rng.Uint64N(domain/4), domain)
		out = append(out, Interval{Start: start, End: end})
		start = end
	}
	return out
}

// randomMap builds a map with disjoint sources and arbitrary, possibly
// overlapping, destinations.
func randomMap(rng *rand.Rand) Map {
	var m Map
	for _, s := range segments(rng) {
		if rng.IntN(2) == 0 {
			continue
		}
		m.Translations = append(m.Translations, Translation{Src: s.Start, Dst: rng.Uint64N(domain + spill), Rng: s.Len()})
	}
	rng.Shuffle(len(m.Translations), func(i, j int) {
		m.Translations[i], m.Translations[j] = m.Translations[j], m.Translations[i]
	})
	return m
}

// permutationMap shuffles the blocks of [0, domain), which makes it a
// bijection on that range.
func permutationMap(rng *rand.Rand) Map {
	segs := segments(rng)
	order := rng.Perm(len(segs))
	var (
		m   Map
		dst uint64
	)
	for _, i := range order {
		m.Translations = append(m.Translations, Translation{Src: segs[i].Start, Dst: dst, Rng: segs[i].Len()})
		dst += segs[i].Len()
	}
	return m
}

func randomInterval(rng *rand.Rand) Interval {
	start := rng.Uint64N(domain + spill)
	return Interval{Start: start, End: start + 1 + rng.Uint64N(domain/2)}
}

func assertSortedDisjoint(t *testing.T, rs []Interval) {
	t.Helper()
	for i, r := range rs {
		assert.False(t, r.Empty(), "empty interval %s", r)
		if i > 0 {
			assert.Less(t, rs[i-1].End, r.Start, "%s and %s overlap, touch, or are out of order", rs[i-1], r)
		}
	}
}

func TestTranslateRangeMatchesTranslate(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 1))
	for i := 0; i < rounds; i++ {
		m := randomMap(rng)
		r := randomInterval(rng)
		out := m.TranslateRange(r)
		assertSortedDisjoint(t, out)

		images := map[uint64]bool{}
		for v := r.Start; v < r.End; v++ {
			image := m.Translate(v)
			images[image] = true
			hits := 0
			for _, o := range out {
				if o.Contains(image) {
					hits++
				}
			}
			require.Equal(t, 1, hits, "value %d of %s maps to %d\n%s", v, r, image, spew.Sdump(m))
		}

		var total uint64
		for _, o := range out {
			total += o.Len()
		}
		require.Equal(t, uint64(len(images)), total, "output of %s holds values no seed maps to\n%s", r, spew.Sdump(m))
	}
}

func TestTranslateRangeConservesMeasure(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 2))
	for i := 0; i < rounds; i++ {
		m := permutationMap(rng)
		require.NotPanics(t, m.DetectOverlaps)
		r := randomInterval(rng)

		var total uint64
		for _, o := range m.TranslateRange(r) {
			total += o.Len()
		}
		require.Equal(t, r.Len(), total, "%s through\n%s", r, spew.Sdump(m))
	}
}

func TestSimplifyRangesRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 3))
	for i := 0; i < rounds; i++ {
		var in []Interval
		covered := map[uint64]bool{}
		for n := rng.IntN(8); n > 0; n-- {
			r := randomInterval(rng)
			in = append(in, r)
			for v := r.Start; v < r.End; v++ {
				covered[v] = true
			}
		}
		out := SimplifyRanges(in)
		assertSortedDisjoint(t, out)

		var total uint64
		for _, o := range out {
			total += o.Len()
			for v := o.Start; v < o.End; v++ {
				require.True(t, covered[v], "%d is not in %v", v, in)
			}
		}
		require.Equal(t, uint64(len(covered)), total)
	}
}

func TestAddMapComposes(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 4))
	for i := 0; i < rounds; i++ {
		a := randomMap(rng)
		b := randomMap(rng)
		composed := Map{Translations: append([]Translation(nil), a.Translations...)}
		composed.AddMap(b)

		_, _, found := composed.FindOverlap()
		require.False(t, found, spew.Sdump(a, b, composed))
		for v := uint64(0); v < domain+2*spill; v++ {
			require.Equal(t, b.Translate(a.Translate(v)), composed.Translate(v), "value %d\n%s", v, spew.Sdump(a, b, composed))
		}
	}
}

func TestAddMapEmptyIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	for i := 0; i < rounds; i++ {
		m := randomMap(rng)

		var left Map
		left.AddMap(m)
		right := Map{Translations: append([]Translation(nil), m.Translations...)}
		right.AddMap(Map{})

		for v := uint64(0); v < domain+spill; v++ {
			require.Equal(t, m.Translate(v), left.Translate(v), "empty then map, value %d", v)
			require.Equal(t, m.Translate(v), right.Translate(v), "map then empty, value %d", v)
		}
		r := randomInterval(rng)
		assert.Equal(t, m.TranslateRange(r), left.TranslateRange(r))
		assert.Equal(t, m.TranslateRange(r), right.TranslateRange(r))
	}
}

func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < rounds/4; i++ {
		var a Almanac
		for n := 2 + rng.IntN(6); n > 0; n-- {
			a.Maps = append(a.Maps, randomMap(rng))
		}
		var seeds []Interval
		for n := 1 + rng.IntN(4); n > 0; n-- {
			r := randomInterval(rng)
			seeds = append(seeds, r)
			a.Seeds = append(a.Seeds, r.Start, r.Len())
		}

		ranges, err := a.SeedRanges()
		require.NoError(t, err)
		require.Equal(t, seeds, ranges)

		walked, ok := a.LowestLocationOfRanges(ranges)
		require.True(t, ok)
		composed, ok := a.LowestLocationComposed(ranges)
		require.True(t, ok)

		var brute uint64
		for j, r := range ranges {
			lowest, ok := a.LowestLocationByRange(r.Start, r.End)
			require.True(t, ok)
			if j == 0 || lowest < brute {
				brute = lowest
			}
		}
		require.Equal(t, brute, walked, "range walk\n%s", spew.Sdump(a.Maps, seeds))
		require.Equal(t, brute, composed, "flattened map\n%s", spew.Sdump(a.Maps, seeds))
	}
}
