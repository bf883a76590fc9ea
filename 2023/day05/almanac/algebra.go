package almanac

import "fmt"

// SubSrcOne returns the pieces of a whose source range is not covered by
// b's source range.
func SubSrcOne(a, b Translation) []Translation {
	return carve(a, a.Range(), b.Range())
}

// SubDstOne returns the pieces of a whose destination range does not land in
// b's source range, i.e. the output of a that b would leave alone.
func SubDstOne(a, b Translation) []Translation {
	return carve(a, a.OutRange(), b.Range())
}

// carve removes cutter from subject, where subject is either the source or
// the destination range of a. Snips move both sides of a, so the amounts are
// the same either way.
func carve(a Translation, subject, cutter Interval) []Translation {
	switch o := classify(subject, cutter); o {
	case overlapNone:
		return []Translation{a}
	case overlapCover:
		return nil
	case overlapHead:
		t := a
		t.SnipLeft(cutter.End - subject.Start)
		return []Translation{t}
	case overlapTail:
		t := a
		t.SnipRight(subject.End - cutter.Start)
		return []Translation{t}
	case overlapInside:
		head, tail := a, a
		head.SnipRight(subject.End - cutter.Start)
		tail.SnipLeft(cutter.End - subject.Start)
		return []Translation{head, tail}
	default:
		panic(fmt.Sprintf("carve: unhandled case %s for %s", o, a))
	}
}

// ShiftOverlapsOne reroutes the part of a's output that falls in b's source
// range through b. The result keeps a's source coordinates and takes its
// destination from b.
func ShiftOverlapsOne(a, b Translation) []Translation {
	ao := a.OutRange()
	br := b.Range()
	t := b
	switch o := classify(ao, br); o {
	case overlapNone:
		return nil
	case overlapCover:
		t.SnipLeft(ao.Start - br.Start)
		t.SnipRight(br.End - ao.End)
		t.Src = a.Src
	case overlapHead:
		t.SnipLeft(ao.Start - br.Start)
		t.Src = a.Src
	case overlapTail:
		t.SnipRight(br.End - ao.End)
		t.Src = a.Src + (br.Start - ao.Start)
	case overlapInside:
		t.Src = a.Src + (br.Start - ao.Start)
	default:
		panic(fmt.Sprintf("shift overlaps: unhandled case %s for %s and %s", o, a, b))
	}
	return []Translation{t}
}

// SubSrc removes every source range in bs from the translations in as. Each
// b splits whatever is left of the previous ones.
func SubSrc(as, bs []Translation) []Translation {
	return fold(as, bs, SubSrcOne)
}

// SubDst removes from as every piece whose output lands in a source range of bs.
func SubDst(as, bs []Translation) []Translation {
	return fold(as, bs, SubDstOne)
}

func fold(as, bs []Translation, sub func(a, b Translation) []Translation) []Translation {
	out := append([]Translation(nil), as...)
	for _, b := range bs {
		var rest []Translation
		for _, a := range out {
			rest = append(rest, sub(a, b)...)
		}
		out = rest
	}
	return out
}

// ShiftOverlaps collects ShiftOverlapsOne for every pair, b-major.
func ShiftOverlaps(as, bs []Translation) []Translation {
	var out []Translation
	for _, b := range bs {
		for _, a := range as {
			out = append(out, ShiftOverlapsOne(a, b)...)
		}
	}
	return out
}
