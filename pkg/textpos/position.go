// Package textpos provides position and offset arithmetic over cell
// and flattened-document text: line/character positions with UTF-16
// columns, half-open offset ranges, an offset<->position mapper built
// on a line-start table, and a CRLF-aware offset translator.
package textpos

// Position is a zero-based line and character location in a text.
// Character counts UTF-16 code units, matching the host protocol.
type Position struct {
	Line      int
	Character int
}

// Before reports whether p precedes q in document order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Character < q.Character
}

// Range is a pair of positions with Start at or before End.
type Range struct {
	Start Position
	End   Position
}

// IsEmpty reports whether the range spans no characters.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// OffsetRange is a half-open [Start, End) span of byte offsets in some
// coordinate space. Cell-space and flattened-space ranges are never
// mixed without an explicit translation.
type OffsetRange struct {
	// Start is the offset where the range begins (inclusive).
	Start int

	// End is the offset where the range ends (exclusive).
	End int
}

// Len returns the length of the range.
func (r OffsetRange) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range has zero length.
func (r OffsetRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether offset lies within the range.
func (r OffsetRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Delta returns the range shifted by d.
func (r OffsetRange) Delta(d int) OffsetRange {
	return OffsetRange{Start: r.Start + d, End: r.End + d}
}

// Intersect returns the overlap of r and o. When the two ranges do not
// overlap, the result is an empty range clamped to o's nearest bound.
func (r OffsetRange) Intersect(o OffsetRange) OffsetRange {
	out := OffsetRange{Start: max(r.Start, o.Start), End: min(r.End, o.End)}
	if out.End < out.Start {
		if out.Start > o.End {
			out.Start = o.End
		}
		out.End = out.Start
	}
	return out
}

// Clamp returns the range restricted to [0, length].
func (r OffsetRange) Clamp(length int) OffsetRange {
	out := r
	if out.Start < 0 {
		out.Start = 0
	}
	if out.Start > length {
		out.Start = length
	}
	if out.End < out.Start {
		out.End = out.Start
	}
	if out.End > length {
		out.End = length
	}
	return out
}
