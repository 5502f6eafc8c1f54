package projection

import (
	"sort"
	"strings"

	"github.com/yaklabco/cellflat/pkg/notebook"
	"github.com/yaklabco/cellflat/pkg/textedit"
	"github.com/yaklabco/cellflat/pkg/textpos"
)

// separator joins consecutive cell projections in the flattened text.
// It never appears before the first entry or after the last one.
const separator = "\n"

// Options control how a notebook is flattened.
type Options struct {
	// ExcludeMarkup leaves markup cells out of the flattened text.
	ExcludeMarkup bool

	// Syntax is the comment syntax for markers and markup wrappers.
	// The zero value selects DefaultSyntax.
	Syntax CommentSyntax
}

// entry places one cell projection inside the flattened text.
type entry struct {
	proj        *CellProjection
	startLine   int
	startOffset int
}

func (e entry) endOffset() int {
	return e.startOffset + e.proj.Len()
}

// NotebookProjection is an immutable flattened view of a notebook.
// Every mutating method returns a new value; previous snapshots remain
// valid, and projections of untouched cells are shared by reference
// between snapshots.
type NotebookProjection struct {
	opts    Options
	cells   []*notebook.Cell // full host order, excluded cells included
	entries []entry          // projected cells only, in order
	altText string
}

// CellRange pairs a cell with a range in that cell's own coordinates.
type CellRange struct {
	Cell  *notebook.Cell
	Range textpos.Range
}

// VisibleRanges pairs a cell with the host offset ranges currently
// visible in one of its views.
type VisibleRanges struct {
	Cell   *notebook.Cell
	Ranges []textpos.OffsetRange
}

// Build flattens cells into a NotebookProjection. Markup cells are
// dropped when opts.ExcludeMarkup is set.
func Build(cells []*notebook.Cell, opts Options) *NotebookProjection {
	if opts.Syntax == (CommentSyntax{}) {
		opts.Syntax = DefaultSyntax
	}
	p := &NotebookProjection{
		opts:  opts,
		cells: append([]*notebook.Cell(nil), cells...),
	}
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		if !p.includes(c) {
			continue
		}
		proj := FromCell(c, opts.Syntax)
		p.entries = append(p.entries, entry{proj: proj})
		parts = append(parts, proj.AltText())
	}
	p.reindex(0)
	p.altText = strings.Join(parts, separator)
	return p
}

// includes reports whether a cell contributes to the flattened text.
func (p *NotebookProjection) includes(c *notebook.Cell) bool {
	return !(p.opts.ExcludeMarkup && c.Kind == notebook.KindMarkup)
}

// reindex recomputes the prefix-sum index for entries[from:].
func (p *NotebookProjection) reindex(from int) {
	line, off := 0, 0
	if from > 0 {
		prev := p.entries[from-1]
		line = prev.startLine + prev.proj.LineCount()
		off = prev.endOffset() + len(separator)
	}
	for i := from; i < len(p.entries); i++ {
		p.entries[i].startLine = line
		p.entries[i].startOffset = off
		line += p.entries[i].proj.LineCount()
		off += p.entries[i].proj.Len() + len(separator)
	}
}

// clone copies the snapshot's slices; cell projections are shared.
func (p *NotebookProjection) clone() *NotebookProjection {
	return &NotebookProjection{
		opts:    p.opts,
		cells:   append([]*notebook.Cell(nil), p.cells...),
		entries: append([]entry(nil), p.entries...),
		altText: p.altText,
	}
}

// AltText returns the full flattened text.
func (p *NotebookProjection) AltText() string {
	return p.altText
}

// AltTextRange returns the flattened text restricted to r, clamped to
// the document bounds.
func (p *NotebookProjection) AltTextRange(r textpos.OffsetRange) string {
	r = r.Clamp(len(p.altText))
	return p.altText[r.Start:r.End]
}

// Len returns the flattened text length.
func (p *NotebookProjection) Len() int {
	return len(p.altText)
}

// LineCount returns the number of lines in the flattened text.
func (p *NotebookProjection) LineCount() int {
	if len(p.entries) == 0 {
		return 1
	}
	last := p.entries[len(p.entries)-1]
	return last.startLine + last.proj.LineCount()
}

// Cells returns the notebook's cells in host order, including cells
// excluded from the flattened text.
func (p *NotebookProjection) Cells() []*notebook.Cell {
	return p.cells
}

// entryIndex locates the projected entry of a cell by stable id.
func (p *NotebookProjection) entryIndex(cellID string) (int, bool) {
	for i := range p.entries {
		if p.entries[i].proj.cell.StableID == cellID {
			return i, true
		}
	}
	return 0, false
}

// hostIndex locates a cell in host order by stable id.
func (p *NotebookProjection) hostIndex(cellID string) (int, bool) {
	for i, c := range p.cells {
		if c.StableID == cellID {
			return i, true
		}
	}
	return 0, false
}

// ToAltOffsetRanges translates host offset ranges of one cell into
// flattened offsets. An unknown or excluded cell yields nil.
func (p *NotebookProjection) ToAltOffsetRanges(cell *notebook.Cell, hostRanges []textpos.OffsetRange) []textpos.OffsetRange {
	idx, ok := p.entryIndex(cell.StableID)
	if !ok {
		return nil
	}
	ent := p.entries[idx]
	out := make([]textpos.OffsetRange, 0, len(hostRanges))
	for _, r := range hostRanges {
		out = append(out, ent.proj.ToAltOffsetRange(r).Delta(ent.startOffset))
	}
	return out
}

// ToAltRanges translates host line/character ranges of one cell into
// flattened positions. An unknown or excluded cell yields nil.
func (p *NotebookProjection) ToAltRanges(cell *notebook.Cell, hostRanges []textpos.Range) []textpos.Range {
	idx, ok := p.entryIndex(cell.StableID)
	if !ok {
		return nil
	}
	ent := p.entries[idx]
	out := make([]textpos.Range, 0, len(hostRanges))
	for _, r := range hostRanges {
		ar := ent.proj.ToAltRange(r)
		ar.Start.Line += ent.startLine
		ar.End.Line += ent.startLine
		out = append(out, ar)
	}
	return out
}

// FromAltOffsetRange decomposes a flattened offset range across the
// cells it touches. A range inside one cell yields one pair; a range
// crossing cell boundaries yields one pair per touched cell, each
// clipped to that cell's own extent. A range fully outside the
// document yields an empty list, never a truncated one.
func (p *NotebookProjection) FromAltOffsetRange(r textpos.OffsetRange) []CellRange {
	if len(p.entries) == 0 || r.End < 0 || r.Start > len(p.altText) {
		return nil
	}
	r = r.Clamp(len(p.altText))

	// First entry whose span could contain the range start.
	i := sort.Search(len(p.entries), func(i int) bool {
		return p.entries[i].endOffset() >= r.Start
	})

	var out []CellRange
	for ; i < len(p.entries); i++ {
		ent := p.entries[i]
		if ent.startOffset > r.End {
			break
		}
		sub := r.Intersect(textpos.OffsetRange{Start: ent.startOffset, End: ent.endOffset()})
		out = append(out, CellRange{
			Cell:  ent.proj.cell,
			Range: ent.proj.FromAltOffsetRange(sub.Delta(-ent.startOffset)),
		})
		if ent.endOffset() >= r.End {
			break
		}
	}
	return out
}

// ProjectVisibleRanges flattens the visible host ranges of every open
// view, for downstream truncation and prioritization decisions.
func (p *NotebookProjection) ProjectVisibleRanges(visible []VisibleRanges) []textpos.OffsetRange {
	var out []textpos.OffsetRange
	for _, v := range visible {
		out = append(out, p.ToAltOffsetRanges(v.Cell, v.Ranges)...)
	}
	return out
}

// WithCellChanges applies an edit over one cell's normalized body and
// returns the updated snapshot. Entries before the changed cell are
// reused by reference; only subsequent index entries are recomputed.
func (p *NotebookProjection) WithCellChanges(cellID string, edit textedit.StringEdit) *NotebookProjection {
	idx, ok := p.entryIndex(cellID)
	if !ok {
		return p
	}
	np, _ := p.withCellEdit(idx, edit)
	return np
}

// WithCellChangesAndEdit converts host content-change events for one
// cell into a StringEdit over the flattened text and applies them.
// Applying the returned edit to the previous AltText reproduces the
// new AltText exactly. An unknown cell is treated as an already
// superseded event: the receiver and an empty edit come back.
func (p *NotebookProjection) WithCellChangesAndEdit(cellID string, changes []notebook.ContentChange) (*NotebookProjection, textedit.StringEdit) {
	if len(changes) == 0 {
		return p, textedit.StringEdit{}
	}
	idx, ok := p.entryIndex(cellID)
	if !ok {
		return p.withExcludedCellChanges(cellID, changes)
	}
	crlf := p.entries[idx].proj.crlf
	reps := make([]textedit.Replacement, 0, len(changes))
	for _, ch := range changes {
		reps = append(reps, textedit.Replacement{
			Span: textpos.OffsetRange{
				Start: crlf.ToNormalized(ch.RangeOffset),
				End:   crlf.ToNormalized(ch.RangeOffset + ch.RangeLength),
			},
			NewText: textpos.NormalizeEOL(ch.NewText),
		})
	}
	return p.withCellEdit(idx, textedit.New(reps...))
}

// withExcludedCellChanges updates a cell that exists in the notebook
// but has no projected entry (markup under ExcludeMarkup). The
// flattened text is untouched, so the edit is empty, but the cell's
// raw text must stay current for later structural changes.
func (p *NotebookProjection) withExcludedCellChanges(cellID string, changes []notebook.ContentChange) (*NotebookProjection, textedit.StringEdit) {
	hi, ok := p.hostIndex(cellID)
	if !ok {
		return p, textedit.StringEdit{}
	}
	cell := p.cells[hi]
	crlf := textpos.NewCRLFMapper(cell.RawText)
	reps := make([]textedit.Replacement, 0, len(changes))
	for _, ch := range changes {
		reps = append(reps, textedit.Replacement{
			Span: textpos.OffsetRange{
				Start: crlf.ToNormalized(ch.RangeOffset),
				End:   crlf.ToNormalized(ch.RangeOffset + ch.RangeLength),
			},
			NewText: textpos.NormalizeEOL(ch.NewText),
		})
	}
	body := textedit.New(reps...).Apply(textpos.NormalizeEOL(cell.RawText))
	raw := body
	if cell.EOL == notebook.EOLCRLF {
		raw = strings.ReplaceAll(body, "\n", "\r\n")
	}
	np := p.clone()
	np.cells[hi] = cell.WithRawText(raw)
	return np, textedit.StringEdit{}
}

// withCellEdit rebuilds the entry at idx under a normalized-body edit
// and derives the matching flattened edit.
func (p *NotebookProjection) withCellEdit(idx int, cellEdit textedit.StringEdit) (*NotebookProjection, textedit.StringEdit) {
	if cellEdit.IsEmpty() {
		return p, textedit.StringEdit{}
	}
	ent := p.entries[idx]

	// Clamp spans to the body before shifting into flattened space;
	// host ranges can lag a rapid edit sequence.
	bodyLen := len(ent.proj.body)
	shift := ent.startOffset + len(ent.proj.prefix)
	flatReps := make([]textedit.Replacement, 0, len(cellEdit.Replacements()))
	for _, r := range cellEdit.Replacements() {
		flatReps = append(flatReps, textedit.Replacement{
			Span:    r.Span.Clamp(bodyLen).Delta(shift),
			NewText: r.NewText,
		})
	}
	flat := textedit.New(flatReps...)

	newProj := ent.proj.WithTextEdit(cellEdit)

	np := p.clone()
	np.entries[idx].proj = newProj
	np.reindex(idx)
	np.altText = flat.Apply(p.altText)
	if hi, ok := p.hostIndex(ent.proj.cell.StableID); ok {
		np.cells[hi] = newProj.cell
	}
	return np, flat
}

// WithNotebookChangesAndEdit applies structural changes (cells added
// or removed) in order and returns the new snapshot plus one composed
// StringEdit over the previous flattened text. Each splice consumes or
// produces exactly one inter-cell separator on whichever side keeps
// the flattened text free of leading and trailing separators. The
// index is fully recomputed afterward.
func (p *NotebookProjection) WithNotebookChangesAndEdit(changes []notebook.StructuralChange) (*NotebookProjection, textedit.StringEdit) {
	cur := p
	total := textedit.StringEdit{}
	for _, ch := range changes {
		next, edit := cur.applyStructural(ch)
		cur = next
		total = total.Compose(edit)
	}
	return cur, total
}

// applyStructural splices one removed-plus-added cell range.
// Inconsistent indices are clamped to the current cell list.
func (p *NotebookProjection) applyStructural(ch notebook.StructuralChange) (*NotebookProjection, textedit.StringEdit) {
	start := ch.Start
	if start < 0 {
		start = 0
	}
	if start > len(p.cells) {
		start = len(p.cells)
	}
	delEnd := start + ch.DeleteCount
	if delEnd < start {
		delEnd = start
	}
	if delEnd > len(p.cells) {
		delEnd = len(p.cells)
	}

	// Entry splice bounds corresponding to the host cell range.
	eStart := p.countIncluded(0, start)
	eEnd := eStart + p.countIncluded(start, delEnd)

	var added []entry
	var addedTexts []string
	np := p.clone()
	for _, c := range ch.Cells {
		if !np.includes(c) {
			continue
		}
		proj := FromCell(c, np.opts.Syntax)
		added = append(added, entry{proj: proj})
		addedTexts = append(addedTexts, proj.AltText())
	}

	newText := strings.Join(addedTexts, separator)
	var span textpos.OffsetRange
	switch {
	case eEnd > eStart:
		span.Start = p.entries[eStart].startOffset
		span.End = p.entries[eEnd-1].endOffset()
		if len(added) == 0 {
			// Pure removal also takes one adjacent separator.
			if eEnd < len(p.entries) {
				span.End += len(separator)
			} else if eStart > 0 {
				span.Start -= len(separator)
			}
		}
	case len(added) > 0:
		switch {
		case eStart < len(p.entries):
			// Insert before an existing entry.
			span.Start = p.entries[eStart].startOffset
			span.End = span.Start
			newText += separator
		case eStart > 0:
			// Append after the last entry.
			span.Start = len(p.altText)
			span.End = span.Start
			newText = separator + newText
		default:
			// Previously empty notebook.
		}
	default:
		// Neither removed nor added projected entries; only the cell
		// list changes (e.g. excluded markup cells).
		np.cells = spliceCells(np.cells, start, delEnd, ch.Cells)
		return np, textedit.StringEdit{}
	}

	edit := textedit.Single(span.Start, span.End, newText)

	np.cells = spliceCells(np.cells, start, delEnd, ch.Cells)
	entries := make([]entry, 0, len(p.entries)-(eEnd-eStart)+len(added))
	entries = append(entries, p.entries[:eStart]...)
	entries = append(entries, added...)
	entries = append(entries, p.entries[eEnd:]...)
	np.entries = entries
	np.reindex(0)
	np.altText = edit.Apply(p.altText)
	return np, edit
}

// countIncluded counts projected cells in cells[from:to].
func (p *NotebookProjection) countIncluded(from, to int) int {
	n := 0
	for _, c := range p.cells[from:to] {
		if p.includes(c) {
			n++
		}
	}
	return n
}

func spliceCells(cells []*notebook.Cell, start, end int, added []*notebook.Cell) []*notebook.Cell {
	out := make([]*notebook.Cell, 0, len(cells)-(end-start)+len(added))
	out = append(out, cells[:start]...)
	out = append(out, added...)
	out = append(out, cells[end:]...)
	return out
}
