package mdcodec

import (
	"bytes"
	"strings"

	"github.com/yaklabco/cellflat/pkg/notebook"
)

// Encode serializes a notebook back to Markdown. Code cells become
// fenced blocks carrying their language id and keep their own line
// ending convention inside the fence; markup cells are emitted
// verbatim. Cells are separated by one blank line.
func Encode(nb *notebook.Notebook) []byte {
	var buf bytes.Buffer
	for i, c := range nb.Cells {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if c.Kind == notebook.KindMarkup {
			buf.WriteString(c.RawText)
			buf.WriteByte('\n')
			continue
		}
		eol := c.EOL.Sequence()
		buf.WriteString("```")
		buf.WriteString(c.LanguageID)
		buf.WriteString(eol)
		buf.WriteString(c.RawText)
		if !strings.HasSuffix(c.RawText, "\n") {
			buf.WriteString(eol)
		}
		buf.WriteString("```\n")
	}
	return buf.Bytes()
}
