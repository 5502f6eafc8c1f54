// Package projection flattens a notebook into one alternative text
// document and keeps the two coordinate spaces synchronized: every
// cell contributes a marker-prefixed, EOL-normalized projection, and
// the aggregator concatenates them, translates ranges in both
// directions, and emits StringEdits describing every flat-text delta.
package projection

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cellflat/pkg/notebook"
	"github.com/yaklabco/cellflat/pkg/textedit"
	"github.com/yaklabco/cellflat/pkg/textpos"
)

// CellProjection is the immutable alt-text form of one cell: a marker
// line identifying the cell, an optional comment wrapper for markup
// cells, and the EOL-normalized body. Edits never mutate a projection;
// they produce a new one.
type CellProjection struct {
	cell   *notebook.Cell
	syntax CommentSyntax

	// prefix holds the synthetic lines before the body, each terminated
	// by a line feed: the marker line, plus the block-comment opener for
	// markup cells.
	prefix string

	// body is the cell text with CRLF collapsed to LF.
	body string

	// suffix is the block-comment closer for markup cells, preceded by
	// a line feed; empty for code cells.
	suffix string

	prefixLines int
	lineCount   int

	mapper *textpos.Mapper
	crlf   *textpos.CRLFMapper
}

// FromCell builds the projection of one cell. Markup bodies are
// wrapped in the syntax's block comment pair; code bodies follow the
// marker directly.
func FromCell(cell *notebook.Cell, syntax CommentSyntax) *CellProjection {
	body := textpos.NormalizeEOL(cell.RawText)

	prefix := markerLine(cell, syntax) + "\n"
	prefixLines := 1
	suffix := ""
	if cell.Kind == notebook.KindMarkup {
		prefix += syntax.BlockOpen + "\n"
		prefixLines = 2
		suffix = "\n" + syntax.BlockClose
	}

	p := &CellProjection{
		cell:        cell,
		syntax:      syntax,
		prefix:      prefix,
		body:        body,
		suffix:      suffix,
		prefixLines: prefixLines,
		mapper:      textpos.NewMapper(body),
		crlf:        textpos.NewCRLFMapper(cell.RawText),
	}
	p.lineCount = prefixLines + p.mapper.LineCount()
	if suffix != "" {
		p.lineCount++
	}
	return p
}

// markerLine builds the synthetic boundary line identifying a cell.
func markerLine(cell *notebook.Cell, syntax CommentSyntax) string {
	return fmt.Sprintf("%s%%%% %s cell %s (%s)",
		syntax.LineStart, cell.Kind, cell.StableID, cell.LanguageID)
}

// Cell returns the projected cell.
func (p *CellProjection) Cell() *notebook.Cell {
	return p.cell
}

// AltText returns the cell's contribution to the flattened document.
func (p *CellProjection) AltText() string {
	return p.prefix + p.body + p.suffix
}

// Len returns the alt-text length.
func (p *CellProjection) Len() int {
	return len(p.prefix) + len(p.body) + len(p.suffix)
}

// LineCount returns the number of alt-text lines, synthetic lines
// included.
func (p *CellProjection) LineCount() int {
	return p.lineCount
}

// PrefixLines returns how many synthetic lines precede the body.
func (p *CellProjection) PrefixLines() int {
	return p.prefixLines
}

// ToAltOffsetRange translates an offset range from the cell's raw
// coordinate space into the projection's space: CRLF pairs collapse
// first, then the prefix shifts the result. Out-of-bounds input is
// clamped.
func (p *CellProjection) ToAltOffsetRange(host textpos.OffsetRange) textpos.OffsetRange {
	norm := textpos.OffsetRange{
		Start: p.crlf.ToNormalized(host.Start),
		End:   p.crlf.ToNormalized(host.End),
	}.Clamp(len(p.body))
	return norm.Delta(len(p.prefix))
}

// ToAltRange translates a line/character range from cell space into
// projection space. Columns carry over unchanged; only the line origin
// shifts by the synthetic prefix lines.
func (p *CellProjection) ToAltRange(host textpos.Range) textpos.Range {
	return textpos.Range{
		Start: textpos.Position{Line: host.Start.Line + p.prefixLines, Character: host.Start.Character},
		End:   textpos.Position{Line: host.End.Line + p.prefixLines, Character: host.End.Character},
	}
}

// FromAltOffsetRange translates an offset range in the projection's
// space back into cell line/character coordinates. The result is
// clamped so it never names a line or column past the cell's actual
// text; the projected last line can be shorter than a raw cursor
// position because the projection is normalized.
func (p *CellProjection) FromAltOffsetRange(alt textpos.OffsetRange) textpos.Range {
	body := alt.Delta(-len(p.prefix)).Clamp(len(p.body))
	return textpos.Range{
		Start: p.mapper.Position(body.Start),
		End:   p.mapper.Position(body.End),
	}
}

// WithTextEdit applies an edit over the normalized body and returns a
// brand-new projection with every derived field recomputed. The
// receiver is left untouched. The underlying cell is re-derived with
// the edited text in the cell's declared EOL convention.
func (p *CellProjection) WithTextEdit(edit textedit.StringEdit) *CellProjection {
	if edit.IsEmpty() {
		return p
	}
	body := edit.Apply(p.body)
	raw := body
	if p.cell.EOL == notebook.EOLCRLF {
		raw = strings.ReplaceAll(body, "\n", "\r\n")
	}
	return FromCell(p.cell.WithRawText(raw), p.syntax)
}
