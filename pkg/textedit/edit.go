// Package textedit provides an ordered, non-overlapping text
// replacement algebra: construction, validation, pure application,
// and composition of edits over a string.
package textedit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/cellflat/pkg/textpos"
)

// Replacement is one contiguous span replaced by new text.
type Replacement struct {
	// Span is the replaced [start, end) offset range.
	Span textpos.OffsetRange

	// NewText is the replacement text.
	NewText string
}

// IsNoop reports whether the replacement changes nothing.
func (r Replacement) IsNoop() bool {
	return r.Span.IsEmpty() && r.NewText == ""
}

// StringEdit is an ordered list of non-overlapping replacements sorted
// by span start. The zero value is the empty edit. A StringEdit is an
// immutable value; all methods are pure.
type StringEdit struct {
	reps []Replacement
}

// New builds a StringEdit from replacements. Replacements are sorted
// by span start; inverted span bounds are clamped, no-ops dropped, and
// later replacements that overlap earlier ones are discarded (earlier
// spans win).
func New(reps ...Replacement) StringEdit {
	if len(reps) == 0 {
		return StringEdit{}
	}
	sorted := make([]Replacement, 0, len(reps))
	for _, r := range reps {
		if r.Span.Start < 0 {
			r.Span.Start = 0
		}
		if r.Span.End < r.Span.Start {
			r.Span.End = r.Span.Start
		}
		if r.IsNoop() {
			continue
		}
		sorted = append(sorted, r)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start != sorted[j].Span.Start {
			return sorted[i].Span.Start < sorted[j].Span.Start
		}
		return sorted[i].Span.End < sorted[j].Span.End
	})
	kept := sorted[:0]
	lastEnd := -1
	for _, r := range sorted {
		if r.Span.Start < lastEnd {
			continue
		}
		kept = append(kept, r)
		lastEnd = r.Span.End
	}
	if len(kept) == 0 {
		return StringEdit{}
	}
	return StringEdit{reps: kept}
}

// Single returns an edit with one replacement.
func Single(start, end int, newText string) StringEdit {
	return New(Replacement{
		Span:    textpos.OffsetRange{Start: start, End: end},
		NewText: newText,
	})
}

// Insert returns an edit inserting text at offset.
func Insert(offset int, text string) StringEdit {
	return Single(offset, offset, text)
}

// Delete returns an edit deleting [start, end).
func Delete(start, end int) StringEdit {
	return Single(start, end, "")
}

// Replacements returns the ordered replacement list. Callers must not
// modify the returned slice.
func (e StringEdit) Replacements() []Replacement {
	return e.reps
}

// IsEmpty reports whether the edit changes nothing.
func (e StringEdit) IsEmpty() bool {
	return len(e.reps) == 0
}

// Delta returns the net length change the edit causes.
func (e StringEdit) Delta() int {
	d := 0
	for _, r := range e.reps {
		d += len(r.NewText) - r.Span.Len()
	}
	return d
}

// Shift returns the edit with every span moved by d.
func (e StringEdit) Shift(d int) StringEdit {
	if e.IsEmpty() || d == 0 {
		return e
	}
	out := make([]Replacement, len(e.reps))
	for i, r := range e.reps {
		out[i] = Replacement{Span: r.Span.Delta(d), NewText: r.NewText}
	}
	return StringEdit{reps: out}
}

// Apply applies the edit to text, returning the new text. Spans
// reaching past the end of text are clamped. Apply is a pure function;
// neither the edit nor the input is modified.
func (e StringEdit) Apply(text string) string {
	if e.IsEmpty() {
		return text
	}
	var b strings.Builder
	if grow := len(text) + e.Delta(); grow > 0 {
		b.Grow(grow)
	}
	cursor := 0
	for _, r := range e.reps {
		start := min(r.Span.Start, len(text))
		end := min(r.Span.End, len(text))
		if start > cursor {
			b.WriteString(text[cursor:start])
		}
		b.WriteString(r.NewText)
		if end > cursor {
			cursor = end
		}
	}
	b.WriteString(text[cursor:])
	return b.String()
}

// ValidationError describes a replacement outside the edited content.
type ValidationError struct {
	Replacement Replacement
	Message     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid replacement [%d:%d]: %s",
		e.Replacement.Span.Start, e.Replacement.Span.End, e.Message)
}

// Validate checks that every span fits inside content of the given
// length. Returns nil when the edit is applicable without clamping.
func (e StringEdit) Validate(contentLen int) error {
	for _, r := range e.reps {
		if r.Span.End > contentLen {
			return &ValidationError{
				Replacement: r,
				Message:     fmt.Sprintf("end offset %d exceeds content length %d", r.Span.End, contentLen),
			}
		}
	}
	return nil
}

// String renders the edit for debugging.
func (e StringEdit) String() string {
	if e.IsEmpty() {
		return "{}"
	}
	parts := make([]string, len(e.reps))
	for i, r := range e.reps {
		parts[i] = fmt.Sprintf("[%d:%d)->%q", r.Span.Start, r.Span.End, r.NewText)
	}
	return "{" + strings.Join(parts, " ") + "}"
}
