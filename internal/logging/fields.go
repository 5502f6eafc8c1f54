// Package logging wraps charmbracelet/log with a process-wide default
// logger, level parsing, field-name constants, and context attachment.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldInput = "input"

	// Notebook fields.
	FieldCell     = "cell"
	FieldCells    = "cells"
	FieldKind     = "kind"
	FieldLanguage = "language"
	FieldEOL      = "eol"

	// Coordinate fields.
	FieldOffset = "offset"
	FieldRange  = "range"
	FieldLength = "length"
	FieldLine   = "line"
	FieldColumn = "column"

	// Synchronization fields.
	FieldChanges = "changes"
	FieldEdits   = "edits"
	FieldAltLen  = "alt_len"

	// Configuration fields.
	FieldLevel         = "level"
	FieldExcludeMarkup = "exclude_markup"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
