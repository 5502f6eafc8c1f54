package textpos

import "sort"

// Mapper converts between byte offsets and line/character positions
// over one EOL-normalized text. The line-start table is built once at
// construction; both query directions are binary-search or
// direct-index lookups so whole-notebook rebuilds stay cheap.
type Mapper struct {
	text       string
	lineStarts []int
}

// NewMapper builds a mapper for text. The text is expected to be
// EOL-normalized (LF line breaks only).
func NewMapper(text string) *Mapper {
	lineStarts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Mapper{text: text, lineStarts: lineStarts}
}

// LineCount returns the number of lines. An empty text has one line.
func (m *Mapper) LineCount() int {
	return len(m.lineStarts)
}

// Len returns the byte length of the text.
func (m *Mapper) Len() int {
	return len(m.text)
}

// LineStart returns the byte offset of the given line, clamped to the
// valid line span.
func (m *Mapper) LineStart(line int) int {
	return m.lineStarts[m.clampLine(line)]
}

// LineLen returns the byte length of the given line excluding its
// line break, clamped to the valid line span.
func (m *Mapper) LineLen(line int) int {
	line = m.clampLine(line)
	return m.lineEnd(line) - m.lineStarts[line]
}

// Offset converts a position to a byte offset. The line is clamped to
// the line count and the character to the actual line length, so a
// caller asking for a column past end-of-line lands on the line break.
func (m *Mapper) Offset(p Position) int {
	line := m.clampLine(p.Line)
	start := m.lineStarts[line]
	end := m.lineEnd(line)
	if p.Character <= 0 {
		return start
	}
	// Walk the line until the requested UTF-16 column is consumed.
	col := 0
	for i, r := range m.text[start:end] {
		if col >= p.Character {
			return start + i
		}
		col += utf16RuneLen(r)
	}
	return end
}

// Position converts a byte offset to a position. An offset equal to
// the text length is the position immediately after the last
// character; out-of-bounds offsets are clamped.
func (m *Mapper) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(m.text) {
		offset = len(m.text)
	}
	line := sort.Search(len(m.lineStarts), func(i int) bool {
		return m.lineStarts[i] > offset
	}) - 1
	col := UTF16Len(m.text[m.lineStarts[line]:offset])
	return Position{Line: line, Character: col}
}

// lineEnd returns the offset of the line's terminating LF, or the text
// length for the last line.
func (m *Mapper) lineEnd(line int) int {
	if line+1 < len(m.lineStarts) {
		return m.lineStarts[line+1] - 1
	}
	return len(m.text)
}

func (m *Mapper) clampLine(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(m.lineStarts) {
		return len(m.lineStarts) - 1
	}
	return line
}
