package textpos_test

import (
	"testing"

	"github.com/yaklabco/cellflat/pkg/textpos"
)

func TestMapperLineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty text has one line", text: "", want: 1},
		{name: "single line", text: "hello", want: 1},
		{name: "trailing newline opens a line", text: "hello\n", want: 2},
		{name: "three lines", text: "a\nb\nc", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := textpos.NewMapper(tt.text)
			if got := m.LineCount(); got != tt.want {
				t.Errorf("LineCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMapperOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		pos  textpos.Position
		want int
	}{
		{
			name: "origin",
			text: "abc\ndef",
			pos:  textpos.Position{Line: 0, Character: 0},
			want: 0,
		},
		{
			name: "second line",
			text: "abc\ndef",
			pos:  textpos.Position{Line: 1, Character: 2},
			want: 6,
		},
		{
			name: "column past end of line clamps to line break",
			text: "abc\ndef",
			pos:  textpos.Position{Line: 0, Character: 99},
			want: 3,
		},
		{
			name: "line past end clamps to last line",
			text: "abc\ndef",
			pos:  textpos.Position{Line: 9, Character: 1},
			want: 5,
		},
		{
			name: "negative line clamps to first",
			text: "abc",
			pos:  textpos.Position{Line: -1, Character: 1},
			want: 1,
		},
		{
			name: "end of last line",
			text: "abc\ndef",
			pos:  textpos.Position{Line: 1, Character: 3},
			want: 7,
		},
		{
			name: "astral character counts two UTF-16 units",
			text: "a\U0001F600b",
			pos:  textpos.Position{Line: 0, Character: 3},
			want: 5,
		},
		{
			name: "multibyte BMP character counts one UTF-16 unit",
			text: "éx",
			pos:  textpos.Position{Line: 0, Character: 1},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := textpos.NewMapper(tt.text)
			if got := m.Offset(tt.pos); got != tt.want {
				t.Errorf("Offset(%+v) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestMapperPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		offset int
		want   textpos.Position
	}{
		{
			name:   "origin",
			text:   "abc\ndef",
			offset: 0,
			want:   textpos.Position{Line: 0, Character: 0},
		},
		{
			name:   "offset on line break belongs to its line",
			text:   "abc\ndef",
			offset: 3,
			want:   textpos.Position{Line: 0, Character: 3},
		},
		{
			name:   "first character of second line",
			text:   "abc\ndef",
			offset: 4,
			want:   textpos.Position{Line: 1, Character: 0},
		},
		{
			name:   "offset equal to length is past the last character",
			text:   "abc\ndef",
			offset: 7,
			want:   textpos.Position{Line: 1, Character: 3},
		},
		{
			name:   "offset past length clamps",
			text:   "ab",
			offset: 99,
			want:   textpos.Position{Line: 0, Character: 2},
		},
		{
			name:   "astral character column",
			text:   "a\U0001F600b",
			offset: 5,
			want:   textpos.Position{Line: 0, Character: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := textpos.NewMapper(tt.text)
			if got := m.Position(tt.offset); got != tt.want {
				t.Errorf("Position(%d) = %+v, want %+v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestMapperRoundTrip(t *testing.T) {
	t.Parallel()

	text := "first line\nsecond\n\nfourth é\U0001F600 line"
	m := textpos.NewMapper(text)

	for offset := 0; offset <= len(text); offset++ {
		// Offsets inside a multibyte rune are not addressable positions;
		// skip continuation bytes.
		if offset < len(text) && text[offset]&0xC0 == 0x80 {
			continue
		}
		pos := m.Position(offset)
		if got := m.Offset(pos); got != offset {
			t.Fatalf("Offset(Position(%d)) = %d", offset, got)
		}
	}
}

func TestMapperLineLen(t *testing.T) {
	t.Parallel()

	m := textpos.NewMapper("abc\n\nlonger line")
	if got := m.LineLen(0); got != 3 {
		t.Errorf("LineLen(0) = %d, want 3", got)
	}
	if got := m.LineLen(1); got != 0 {
		t.Errorf("LineLen(1) = %d, want 0", got)
	}
	if got := m.LineLen(2); got != 11 {
		t.Errorf("LineLen(2) = %d, want 11", got)
	}
}
