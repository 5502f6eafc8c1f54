package notebook

import "github.com/yaklabco/cellflat/pkg/textpos"

// ContentChange describes one replacement inside a cell, in the cell's
// own raw coordinate space. All changes of one event batch refer to
// the cell state before the event and must not overlap.
type ContentChange struct {
	// Range is the replaced span in line/character coordinates.
	Range textpos.Range

	// RangeOffset is the raw offset where the replaced span begins.
	RangeOffset int

	// RangeLength is the raw length of the replaced span.
	RangeLength int

	// NewText is the replacement text, in the cell's EOL convention.
	NewText string
}

// StructuralChange describes cells removed and added at one index of
// the notebook's cell list.
type StructuralChange struct {
	// Start is the index of the first removed cell.
	Start int

	// DeleteCount is how many cells are removed at Start.
	DeleteCount int

	// Cells are inserted at Start after the removal.
	Cells []*Cell
}
