package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cellflat/pkg/notebook"
	"github.com/yaklabco/cellflat/pkg/projection"
	"github.com/yaklabco/cellflat/pkg/textpos"
)

// Table formatting constants.
const (
	tablePadding    = 2
	minIDWidth      = 8
	minKindWidth    = 6
	minLangWidth    = 8
	excludedMarker  = "-"
	headerSeparator = "-"
)

// CellRow is one rendered row of the cell table.
type CellRow struct {
	ID       string
	Kind     notebook.CellKind
	Language string
	EOL      string
	Lines    string
	Bytes    string
}

// CellTableFormatter renders the per-cell summary of a projection.
type CellTableFormatter struct {
	styles *Styles
}

// NewCellTableFormatter creates a cell table formatter.
func NewCellTableFormatter(styles *Styles) *CellTableFormatter {
	return &CellTableFormatter{styles: styles}
}

// FormatCells renders one row per notebook cell, with the flattened
// line and byte span each cell occupies. Cells excluded from the
// flattened text show a dash.
func (f *CellTableFormatter) FormatCells(p *projection.NotebookProjection) string {
	rows := collectRows(p)
	if len(rows) == 0 {
		return ""
	}

	idW, kindW, langW := minIDWidth, minKindWidth, minLangWidth
	for _, r := range rows {
		idW = max(idW, len(r.ID))
		kindW = max(kindW, len(r.Kind.String()))
		langW = max(langW, len(r.Language))
	}

	var b strings.Builder
	pad := strings.Repeat(" ", tablePadding)

	header := fmt.Sprintf("%-*s%s%-*s%s%-*s%s%-4s%s%-12s%s%s",
		idW, "ID", pad, kindW, "KIND", pad, langW, "LANG", pad, "EOL", pad, "LINES", pad, "BYTES")
	b.WriteString(f.styles.Header.Render(header))
	b.WriteString("\n")
	b.WriteString(f.styles.Dim.Render(strings.Repeat(headerSeparator, len(header))))
	b.WriteString("\n")

	for _, r := range rows {
		kindStyle := f.styles.CodeKind
		if r.Kind == notebook.KindMarkup {
			kindStyle = f.styles.Markup
		}
		b.WriteString(f.styles.CellID.Render(fmt.Sprintf("%-*s", idW, r.ID)))
		b.WriteString(pad)
		b.WriteString(kindStyle.Render(fmt.Sprintf("%-*s", kindW, r.Kind.String())))
		b.WriteString(pad)
		b.WriteString(f.styles.Language.Render(fmt.Sprintf("%-*s", langW, r.Language)))
		b.WriteString(pad)
		b.WriteString(fmt.Sprintf("%-4s", r.EOL))
		b.WriteString(pad)
		b.WriteString(f.styles.Location.Render(fmt.Sprintf("%-12s", r.Lines)))
		b.WriteString(pad)
		b.WriteString(f.styles.Location.Render(r.Bytes))
		b.WriteString("\n")
	}
	return b.String()
}

func collectRows(p *projection.NotebookProjection) []CellRow {
	mapper := textpos.NewMapper(p.AltText())
	rows := make([]CellRow, 0, len(p.Cells()))
	for _, cell := range p.Cells() {
		row := CellRow{
			ID:       cell.StableID,
			Kind:     cell.Kind,
			Language: cell.LanguageID,
			EOL:      cell.EOL.String(),
			Lines:    excludedMarker,
			Bytes:    excludedMarker,
		}
		spans := p.ToAltOffsetRanges(cell, []textpos.OffsetRange{{Start: 0, End: len(cell.RawText)}})
		if len(spans) == 1 {
			row.Bytes = fmt.Sprintf("%d-%d", spans[0].Start, spans[0].End)
			first := mapper.Position(spans[0].Start).Line + 1
			last := mapper.Position(spans[0].End).Line + 1
			row.Lines = fmt.Sprintf("%d-%d", first, last)
		}
		rows = append(rows, row)
	}
	return rows
}
