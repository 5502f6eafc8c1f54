package textedit

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/yaklabco/cellflat/pkg/textpos"
)

// FromDiff derives a StringEdit that turns oldText into newText,
// for callers that hold only two full texts. Contiguous runs of
// deletions and insertions collapse into one replacement each.
func FromDiff(oldText, newText string) StringEdit {
	if oldText == newText {
		return StringEdit{}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupEfficiency(dmp.DiffMain(oldText, newText, false))

	var reps []Replacement
	var cur Replacement
	open := false
	oldPos := 0

	flush := func() {
		if open {
			reps = append(reps, cur)
			open = false
		}
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			oldPos += len(d.Text)
		case diffmatchpatch.DiffDelete:
			if !open {
				cur = Replacement{Span: textpos.OffsetRange{Start: oldPos, End: oldPos}}
				open = true
			}
			oldPos += len(d.Text)
			cur.Span.End = oldPos
		case diffmatchpatch.DiffInsert:
			if !open {
				cur = Replacement{Span: textpos.OffsetRange{Start: oldPos, End: oldPos}}
				open = true
			}
			cur.NewText += d.Text
		}
	}
	flush()

	return New(reps...)
}
