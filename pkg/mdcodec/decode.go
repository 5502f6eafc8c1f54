// Package mdcodec converts between Markdown documents and the notebook
// cell model: fenced code blocks become code cells, the prose between
// them becomes markup cells. Decoding assigns deterministic stable ids
// so a document always yields the same notebook.
package mdcodec

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/yaklabco/cellflat/pkg/langdetect"
	"github.com/yaklabco/cellflat/pkg/notebook"
)

// Decode parses a Markdown document into a notebook. Each fenced code
// block becomes one code cell; its language comes from the fence info
// string, or from content detection when the fence is anonymous.
// Everything between code blocks becomes markup cells. Line endings
// are detected per cell from the source bytes.
func Decode(source []byte) (*notebook.Notebook, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(source))

	nb := &notebook.Notebook{}
	cursor := 0

	appendMarkup := func(start, end int) {
		raw := bytes.Trim(source[start:end], "\r\n")
		if len(raw) == 0 {
			return
		}
		nb.Cells = append(nb.Cells, newCell(len(nb.Cells), notebook.KindMarkup, "markdown", string(raw)))
	}

	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		fc, ok := child.(*ast.FencedCodeBlock)
		if !ok {
			continue
		}
		start, end, err := fenceExtent(fc, source, cursor)
		if err != nil {
			return nil, err
		}
		appendMarkup(cursor, start)

		raw := fenceBody(fc, source)
		lang := string(fc.Language(source))
		if lang == "" {
			lang = langdetect.Detect([]byte(raw))
		}
		nb.Cells = append(nb.Cells, newCell(len(nb.Cells), notebook.KindCode, lang, raw))
		cursor = end
	}
	appendMarkup(cursor, len(source))

	return nb, nil
}

func newCell(index int, kind notebook.CellKind, lang, raw string) *notebook.Cell {
	return &notebook.Cell{
		StableID:   fmt.Sprintf("cell-%03d", index+1),
		LanguageID: lang,
		Kind:       kind,
		EOL:        notebook.DetectEOL(raw),
		RawText:    raw,
	}
}

// fenceBody returns the code between the fences, without the final
// line break.
func fenceBody(fc *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < fc.Lines().Len(); i++ {
		seg := fc.Lines().At(i)
		buf.Write(seg.Value(source))
	}
	raw := buf.String()
	if n := len(raw); n > 0 && raw[n-1] == '\n' {
		raw = raw[:n-1]
		if n := len(raw); n > 0 && raw[n-1] == '\r' {
			raw = raw[:n-1]
		}
	}
	return raw
}

// fenceExtent locates the full source span of a fenced block, opening
// and closing fence lines included. Goldmark only records the body
// lines, so the fences are recovered from the surrounding text.
func fenceExtent(fc *ast.FencedCodeBlock, source []byte, cursor int) (int, int, error) {
	var anchor int
	switch {
	case fc.Lines().Len() > 0:
		first := fc.Lines().At(0).Start
		last := fc.Lines().At(fc.Lines().Len() - 1).Stop
		start := startOfLine(source, first-1)
		return start, closingFenceEnd(source, last), nil
	case fc.Info != nil:
		anchor = fc.Info.Segment.Start
	default:
		// Anonymous empty block: the opening fence is the next fence
		// marker after everything already consumed.
		idx := bytes.Index(source[cursor:], []byte("```"))
		if idx < 0 {
			idx = bytes.Index(source[cursor:], []byte("~~~"))
		}
		if idx < 0 {
			return 0, 0, fmt.Errorf("code block at offset %d: fence not found", cursor)
		}
		anchor = cursor + idx
	}
	start := startOfLine(source, anchor)
	return start, closingFenceEnd(source, endOfLine(source, anchor)), nil
}

// closingFenceEnd consumes the closing fence line starting at from, if
// one exists; an unclosed fence ends at the end of input.
func closingFenceEnd(source []byte, from int) int {
	if from >= len(source) {
		return len(source)
	}
	line := bytes.TrimSpace(source[from:endOfLine(source, from)])
	if bytes.HasPrefix(line, []byte("```")) || bytes.HasPrefix(line, []byte("~~~")) {
		return endOfLine(source, from)
	}
	return from
}

// startOfLine walks back from i to the first byte of its line.
func startOfLine(source []byte, i int) int {
	if i < 0 {
		return 0
	}
	for i > 0 && source[i-1] != '\n' {
		i--
	}
	return i
}

// endOfLine walks forward from i past the line's terminating feed.
func endOfLine(source []byte, i int) int {
	for i < len(source) && source[i] != '\n' {
		i++
	}
	if i < len(source) {
		i++
	}
	return i
}
