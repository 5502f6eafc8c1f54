// Package notebook defines the host-facing notebook model consumed by
// the projection layer: cells, their metadata, and the change events
// the host delivers. The package holds plain data only; all coordinate
// translation lives in pkg/projection.
package notebook

import "strings"

// CellKind distinguishes executable code cells from markup cells.
type CellKind int

const (
	// KindCode is an executable cell in the notebook's language.
	KindCode CellKind = iota

	// KindMarkup is a prose cell (typically Markdown).
	KindMarkup
)

func (k CellKind) String() string {
	if k == KindMarkup {
		return "markup"
	}
	return "code"
}

// EOL is a cell's declared end-of-line convention. Conventions are
// per-cell; a notebook may mix them freely.
type EOL int

const (
	// EOLLF uses a bare line feed.
	EOLLF EOL = iota

	// EOLCRLF uses a carriage return + line feed pair.
	EOLCRLF
)

// Sequence returns the line break characters for the convention.
func (e EOL) Sequence() string {
	if e == EOLCRLF {
		return "\r\n"
	}
	return "\n"
}

func (e EOL) String() string {
	if e == EOLCRLF {
		return "CRLF"
	}
	return "LF"
}

// DetectEOL infers the convention from text: any CRLF pair makes the
// whole cell CRLF.
func DetectEOL(text string) EOL {
	if strings.Contains(text, "\r\n") {
		return EOLCRLF
	}
	return EOLLF
}

// Cell is one notebook cell as reported by the host. RawText uses the
// cell's own EOL convention. Cells are treated as immutable values;
// an edited cell is a new Cell.
type Cell struct {
	// StableID survives reordering and edits; it is the identity the
	// host uses in change events.
	StableID string

	// LanguageID names the cell's language (e.g. "python", "markdown").
	LanguageID string

	Kind    CellKind
	EOL     EOL
	RawText string
}

// WithRawText returns a copy of the cell carrying new raw text.
func (c *Cell) WithRawText(text string) *Cell {
	cc := *c
	cc.RawText = text
	return &cc
}

// Notebook is an ordered list of cells.
type Notebook struct {
	Cells []*Cell
}
