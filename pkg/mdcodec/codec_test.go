package mdcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/cellflat/pkg/mdcodec"
	"github.com/yaklabco/cellflat/pkg/notebook"
)

const sampleDoc = `# Analysis

Some introduction text.

` + "```python\nimport pandas\ndf = pandas.DataFrame()\n```" + `

Closing remarks.
`

func TestDecode(t *testing.T) {
	t.Parallel()

	nb, err := mdcodec.Decode([]byte(sampleDoc))
	require.NoError(t, err)
	require.Len(t, nb.Cells, 3)

	assert.Equal(t, notebook.KindMarkup, nb.Cells[0].Kind)
	assert.Equal(t, "markdown", nb.Cells[0].LanguageID)
	assert.Equal(t, "# Analysis\n\nSome introduction text.", nb.Cells[0].RawText)
	assert.Equal(t, "cell-001", nb.Cells[0].StableID)

	assert.Equal(t, notebook.KindCode, nb.Cells[1].Kind)
	assert.Equal(t, "python", nb.Cells[1].LanguageID)
	assert.Equal(t, "import pandas\ndf = pandas.DataFrame()", nb.Cells[1].RawText)
	assert.Equal(t, notebook.EOLLF, nb.Cells[1].EOL)

	assert.Equal(t, notebook.KindMarkup, nb.Cells[2].Kind)
	assert.Equal(t, "Closing remarks.", nb.Cells[2].RawText)
}

func TestDecode_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := mdcodec.Decode([]byte(sampleDoc))
	require.NoError(t, err)
	b, err := mdcodec.Decode([]byte(sampleDoc))
	require.NoError(t, err)

	require.Len(t, b.Cells, len(a.Cells))
	for i := range a.Cells {
		assert.Equal(t, a.Cells[i].StableID, b.Cells[i].StableID)
		assert.Equal(t, a.Cells[i].RawText, b.Cells[i].RawText)
	}
}

func TestDecode_CRLF(t *testing.T) {
	t.Parallel()

	doc := "```python\r\nimport sys\r\nimport os\r\n```\r\n"
	nb, err := mdcodec.Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, nb.Cells, 1)

	assert.Equal(t, "import sys\r\nimport os", nb.Cells[0].RawText)
	assert.Equal(t, notebook.EOLCRLF, nb.Cells[0].EOL)
}

func TestDecode_AnonymousFence(t *testing.T) {
	t.Parallel()

	doc := "```\npackage main\n\nfunc main() {}\n```\n"
	nb, err := mdcodec.Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, nb.Cells, 1)

	assert.Equal(t, notebook.KindCode, nb.Cells[0].Kind)
	assert.Equal(t, "go", nb.Cells[0].LanguageID, "language detected from content")
}

func TestDecode_UnclosedFence(t *testing.T) {
	t.Parallel()

	doc := "intro\n\n```python\nimport sys"
	nb, err := mdcodec.Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, nb.Cells, 2)

	assert.Equal(t, "import sys", nb.Cells[1].RawText)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	nb := &notebook.Notebook{Cells: []*notebook.Cell{
		{StableID: "cell-001", LanguageID: "markdown", Kind: notebook.KindMarkup, RawText: "# Title"},
		{StableID: "cell-002", LanguageID: "python", Kind: notebook.KindCode, RawText: "import sys"},
	}}

	got := string(mdcodec.Encode(nb))
	assert.Equal(t, "# Title\n\n```python\nimport sys\n```\n", got)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	nb, err := mdcodec.Decode([]byte(sampleDoc))
	require.NoError(t, err)

	again, err := mdcodec.Decode(mdcodec.Encode(nb))
	require.NoError(t, err)

	require.Len(t, again.Cells, len(nb.Cells))
	for i := range nb.Cells {
		assert.Equal(t, nb.Cells[i].Kind, again.Cells[i].Kind)
		assert.Equal(t, nb.Cells[i].LanguageID, again.Cells[i].LanguageID)
		assert.Equal(t, nb.Cells[i].RawText, again.Cells[i].RawText)
	}
}
