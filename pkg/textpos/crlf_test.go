package textpos_test

import (
	"testing"

	"github.com/yaklabco/cellflat/pkg/textpos"
)

func TestCRLFMapperToRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		offset int
		want   int
	}{
		{name: "no line breaks passes through", raw: "abc", offset: 2, want: 2},
		{name: "zero offset", raw: "a\r\nb", offset: 0, want: 0},
		{name: "line break maps to pair start", raw: "a\r\nb", offset: 1, want: 1},
		{name: "after the break skips the pair", raw: "a\r\nb", offset: 2, want: 3},
		{name: "normalized length maps to raw length", raw: "a\r\nb", offset: 3, want: 4},
		{name: "bare CR is not a pair", raw: "a\rb", offset: 2, want: 2},
		{name: "second pair adds two", raw: "a\r\nb\r\nc", offset: 4, want: 6},
		{name: "offset past end clamps", raw: "a\r\nb", offset: 99, want: 4},
		{name: "negative offset clamps", raw: "a\r\nb", offset: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := textpos.NewCRLFMapper(tt.raw)
			if got := m.ToRaw(tt.offset); got != tt.want {
				t.Errorf("ToRaw(%d) = %d, want %d", tt.offset, got, tt.want)
			}
		})
	}
}

func TestCRLFMapperToNormalized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		off  int
		want int
	}{
		{name: "no line breaks passes through", raw: "abc", off: 3, want: 3},
		{name: "at CR", raw: "a\r\nb", off: 1, want: 1},
		{name: "between CR and LF resolves to pair start", raw: "a\r\nb", off: 2, want: 1},
		{name: "after LF", raw: "a\r\nb", off: 3, want: 2},
		{name: "raw length maps to normalized length", raw: "a\r\nb", off: 4, want: 3},
		{name: "bare CR unchanged", raw: "a\rb", off: 3, want: 3},
		{name: "two pairs", raw: "a\r\nb\r\nc", off: 7, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := textpos.NewCRLFMapper(tt.raw)
			if got := m.ToNormalized(tt.off); got != tt.want {
				t.Errorf("ToNormalized(%d) = %d, want %d", tt.off, got, tt.want)
			}
		})
	}
}

func TestCRLFMapperArbitraryOrder(t *testing.T) {
	t.Parallel()

	raw := "import pandas\r\nimport requests\r\n"
	norm := textpos.NormalizeEOL(raw)
	m := textpos.NewCRLFMapper(raw)

	// Query backwards; no forward-only cursor assumption.
	for offset := len(norm); offset >= 0; offset-- {
		rawOff := m.ToRaw(offset)
		if rawOff > 0 && raw[rawOff-1] == '\r' && rawOff < len(raw) && raw[rawOff] == '\n' {
			t.Fatalf("ToRaw(%d) = %d lands between CR and LF", offset, rawOff)
		}
		if got := m.ToNormalized(rawOff); got != offset {
			t.Fatalf("ToNormalized(ToRaw(%d)) = %d", offset, got)
		}
	}
}

func TestNormalizeEOL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain LF unchanged", in: "a\nb", want: "a\nb"},
		{name: "CRLF collapsed", in: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "bare CR preserved", in: "a\rb", want: "a\rb"},
		{name: "mixed", in: "a\r\nb\rc\n", want: "a\nb\rc\n"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := textpos.NormalizeEOL(tt.in); got != tt.want {
				t.Errorf("NormalizeEOL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUTF16Len(t *testing.T) {
	t.Parallel()

	if got := textpos.UTF16Len("abc"); got != 3 {
		t.Errorf("UTF16Len(abc) = %d, want 3", got)
	}
	if got := textpos.UTF16Len("a\U0001F600b"); got != 4 {
		t.Errorf("UTF16Len with astral = %d, want 4", got)
	}
}
