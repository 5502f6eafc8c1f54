package textedit

import (
	"math"

	"github.com/yaklabco/cellflat/pkg/textpos"
)

// piece is one segment of the intermediate text produced by an edit:
// either a retained slice of the original text or a replacement's
// inserted text, tagged with the original span it replaced.
type piece struct {
	origStart int
	origEnd   int
	text      string
	retained  bool
}

// interLen returns the piece's length in the intermediate text.
func (p piece) interLen() int {
	if p.retained {
		return p.origEnd - p.origStart
	}
	return len(p.text)
}

// pieces decomposes the intermediate text into segments. The final
// retained segment is unbounded so composition never runs off the end.
func (e StringEdit) pieces() []piece {
	out := make([]piece, 0, 2*len(e.reps)+1)
	pos := 0
	for _, r := range e.reps {
		if r.Span.Start > pos {
			out = append(out, piece{origStart: pos, origEnd: r.Span.Start, retained: true})
		}
		out = append(out, piece{origStart: r.Span.Start, origEnd: r.Span.End, text: r.NewText})
		pos = r.Span.End
	}
	out = append(out, piece{origStart: pos, origEnd: math.MaxInt, retained: true})
	return out
}

// Compose combines the receiver with a second edit expressed in the
// coordinates of the text the receiver produces. The result is a
// single edit whose net effect equals applying the receiver and then
// other sequentially:
//
//	e.Compose(o).Apply(s) == o.Apply(e.Apply(s))
//
// Touching replacements may be coalesced; only the net effect is
// guaranteed.
func (e StringEdit) Compose(other StringEdit) StringEdit {
	if e.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return e
	}

	pieces := e.pieces()
	var out []Replacement
	pi := 0       // current piece
	interPos := 0 // intermediate offset where pieces[pi] begins

	// emit flushes an untouched replacement piece into the output.
	emit := func(p piece) {
		out = append(out, Replacement{
			Span:    textpos.OffsetRange{Start: p.origStart, End: p.origEnd},
			NewText: p.text,
		})
	}

	// splitAt advances to the intermediate offset target, emitting
	// replacement pieces that were passed untouched and splitting the
	// piece containing target so it begins exactly there. Piece lengths
	// are compared against the remaining distance rather than added to
	// interPos; the tail piece's length is near MaxInt and the sum
	// would overflow.
	splitAt := func(target int) {
		for pi < len(pieces) {
			p := pieces[pi]
			n := p.interLen()
			if n <= target-interPos {
				if !p.retained && (len(p.text) > 0 || p.origStart < p.origEnd) {
					emit(p)
				}
				interPos += n
				pi++
				continue
			}
			if k := target - interPos; k > 0 {
				if p.retained {
					pieces[pi] = piece{origStart: p.origStart + k, origEnd: p.origEnd, retained: true}
				} else {
					emit(piece{origStart: p.origStart, origEnd: p.origEnd, text: p.text[:k]})
					pieces[pi] = piece{origStart: p.origEnd, origEnd: p.origEnd, text: p.text[k:]}
				}
				interPos = target
			}
			return
		}
	}

	for _, r := range other.reps {
		splitAt(r.Span.Start)

		spanStart := pieces[pi].origStart
		spanEnd := spanStart
		for pi < len(pieces) && interPos < r.Span.End {
			p := pieces[pi]
			n := p.interLen()
			if n <= r.Span.End-interPos {
				spanEnd = p.origEnd
				interPos += n
				pi++
				continue
			}
			k := r.Span.End - interPos
			if p.retained {
				spanEnd = p.origStart + k
				pieces[pi] = piece{origStart: spanEnd, origEnd: p.origEnd, retained: true}
			} else {
				spanEnd = p.origEnd
				pieces[pi] = piece{origStart: p.origEnd, origEnd: p.origEnd, text: p.text[k:]}
			}
			interPos = r.Span.End
		}
		out = append(out, Replacement{
			Span:    textpos.OffsetRange{Start: spanStart, End: spanEnd},
			NewText: r.NewText,
		})
	}

	// Flush replacement pieces past the last edit of other.
	for ; pi < len(pieces); pi++ {
		p := pieces[pi]
		if !p.retained && (len(p.text) > 0 || p.origStart < p.origEnd) {
			emit(p)
		}
	}

	return coalesce(out)
}

// coalesce merges adjacent replacements whose spans touch and drops
// no-ops, keeping the composed edit minimal.
func coalesce(reps []Replacement) StringEdit {
	var out []Replacement
	for _, r := range reps {
		if len(out) > 0 && out[len(out)-1].Span.End == r.Span.Start {
			prev := &out[len(out)-1]
			prev.Span.End = r.Span.End
			prev.NewText += r.NewText
			continue
		}
		out = append(out, r)
	}
	kept := out[:0]
	for _, r := range out {
		if !r.IsNoop() {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return StringEdit{}
	}
	return StringEdit{reps: kept}
}
