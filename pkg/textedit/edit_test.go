package textedit_test

import (
	"testing"

	"github.com/yaklabco/cellflat/pkg/textedit"
	"github.com/yaklabco/cellflat/pkg/textpos"
)

func rep(start, end int, text string) textedit.Replacement {
	return textedit.Replacement{
		Span:    textpos.OffsetRange{Start: start, End: end},
		NewText: text,
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		reps []textedit.Replacement
		want string
	}{
		{
			name: "empty edit returns original",
			text: "hello world",
			reps: nil,
			want: "hello world",
		},
		{
			name: "single replacement",
			text: "hello world",
			reps: []textedit.Replacement{rep(0, 5, "hi")},
			want: "hi world",
		},
		{
			name: "insertion",
			text: "hello world",
			reps: []textedit.Replacement{rep(5, 5, " beautiful")},
			want: "hello beautiful world",
		},
		{
			name: "deletion",
			text: "hello world",
			reps: []textedit.Replacement{rep(5, 11, "")},
			want: "hello",
		},
		{
			name: "multiple replacements",
			text: "hello world",
			reps: []textedit.Replacement{rep(0, 5, "hi"), rep(6, 11, "there")},
			want: "hi there",
		},
		{
			name: "unsorted input is sorted",
			text: "abcdef",
			reps: []textedit.Replacement{rep(4, 6, "ZZ"), rep(0, 2, "XX")},
			want: "XXcdZZ",
		},
		{
			name: "adjacent replacements",
			text: "abcdef",
			reps: []textedit.Replacement{rep(0, 2, "XX"), rep(2, 4, "YY"), rep(4, 6, "ZZ")},
			want: "XXYYZZ",
		},
		{
			name: "overlapping later replacement dropped",
			text: "abcdef",
			reps: []textedit.Replacement{rep(0, 4, "X"), rep(2, 6, "Y")},
			want: "Xef",
		},
		{
			name: "span past end clamps",
			text: "abc",
			reps: []textedit.Replacement{rep(1, 99, "Z")},
			want: "aZ",
		},
		{
			name: "empty content insertion",
			text: "",
			reps: []textedit.Replacement{rep(0, 0, "hello")},
			want: "hello",
		},
		{
			name: "delete everything",
			text: "hello",
			reps: []textedit.Replacement{rep(0, 5, "")},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := textedit.New(tt.reps...)
			if got := e.Apply(tt.text); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.text, got, tt.want)
			}
			// Apply is pure; a second application of the same value must
			// give the same answer.
			if got := e.Apply(tt.text); got != tt.want {
				t.Errorf("second Apply(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	if got := textedit.Insert(2, "XY").Apply("abcd"); got != "abXYcd" {
		t.Errorf("Insert = %q", got)
	}
	if got := textedit.Delete(1, 3).Apply("abcd"); got != "ad" {
		t.Errorf("Delete = %q", got)
	}
	if got := textedit.Single(1, 3, "Z").Apply("abcd"); got != "aZd" {
		t.Errorf("Single = %q", got)
	}
	if !textedit.New().IsEmpty() {
		t.Error("New() should be empty")
	}
	if !textedit.Single(3, 3, "").IsEmpty() {
		t.Error("no-op replacement should produce an empty edit")
	}
}

func TestDelta(t *testing.T) {
	t.Parallel()

	e := textedit.New(rep(0, 2, "XXXX"), rep(5, 8, ""))
	if got := e.Delta(); got != -1 {
		t.Errorf("Delta() = %d, want -1", got)
	}
}

func TestShift(t *testing.T) {
	t.Parallel()

	e := textedit.Single(1, 3, "Z").Shift(4)
	reps := e.Replacements()
	if len(reps) != 1 || reps[0].Span.Start != 5 || reps[0].Span.End != 7 {
		t.Fatalf("Shift produced %v", reps)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	e := textedit.Single(0, 10, "x")
	if err := e.Validate(5); err == nil {
		t.Fatal("expected validation error")
	}
	if err := e.Validate(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
