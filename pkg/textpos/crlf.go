package textpos

import (
	"sort"
	"strings"
)

// CRLFMapper translates offsets between a document's raw text, whose
// physical line breaks may be the two-character CRLF sequence, and its
// EOL-normalized form, where every line break counts as one character.
// Built once per raw cell text; queryable at arbitrary offsets in any
// order.
type CRLFMapper struct {
	// pairStarts holds the raw offset of the CR of every CRLF pair,
	// ascending. Bare CR is not a pair.
	pairStarts []int
	rawLen     int
}

// NewCRLFMapper builds a mapper for raw.
func NewCRLFMapper(raw string) *CRLFMapper {
	m := &CRLFMapper{rawLen: len(raw)}
	from := 0
	for {
		i := strings.Index(raw[from:], "\r\n")
		if i < 0 {
			break
		}
		m.pairStarts = append(m.pairStarts, from+i)
		from += i + 2
	}
	return m
}

// NormalizedLen returns the length of the normalized text.
func (m *CRLFMapper) NormalizedLen() int {
	return m.rawLen - len(m.pairStarts)
}

// RawLen returns the length of the raw text.
func (m *CRLFMapper) RawLen() int {
	return m.rawLen
}

// ToRaw converts an offset in the normalized text to the corresponding
// raw offset. Each CRLF pair entirely before the result consumes one
// extra raw character; the result never lands between the CR and LF of
// a pair.
func (m *CRLFMapper) ToRaw(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if n := m.NormalizedLen(); offset > n {
		offset = n
	}
	// pairStarts[i]-i is the normalized offset of pair i's line break.
	k := sort.Search(len(m.pairStarts), func(i int) bool {
		return m.pairStarts[i]-i >= offset
	})
	return offset + k
}

// ToNormalized converts a raw offset to the normalized text. A raw
// offset that falls between the CR and LF of a pair resolves to the
// start of that line break, never inside it.
func (m *CRLFMapper) ToNormalized(raw int) int {
	if raw < 0 {
		raw = 0
	}
	if raw > m.rawLen {
		raw = m.rawLen
	}
	k := sort.Search(len(m.pairStarts), func(i int) bool {
		return m.pairStarts[i] >= raw
	})
	return raw - k
}
