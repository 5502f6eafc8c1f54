package projection

// CommentSyntax describes how the alt text comments out synthetic
// content for a notebook's language: the line comment used for cell
// markers and the block comment pair that wraps markup cell bodies.
type CommentSyntax struct {
	LineStart  string
	BlockOpen  string
	BlockClose string
}

// DefaultSyntax is Python-style commenting, the common case for
// Jupyter notebooks.
var DefaultSyntax = CommentSyntax{LineStart: "#", BlockOpen: `"""`, BlockClose: `"""`}

// cStyle covers the C-family languages.
var cStyle = CommentSyntax{LineStart: "//", BlockOpen: "/*", BlockClose: "*/"}

var syntaxes = map[string]CommentSyntax{
	"python":     DefaultSyntax,
	"r":          {LineStart: "#", BlockOpen: "if (FALSE) {", BlockClose: "}"},
	"julia":      {LineStart: "#", BlockOpen: "#=", BlockClose: "=#"},
	"go":         cStyle,
	"c":          cStyle,
	"cpp":        cStyle,
	"java":       cStyle,
	"javascript": cStyle,
	"typescript": cStyle,
	"rust":       cStyle,
	"scala":      cStyle,
	"sql":        {LineStart: "--", BlockOpen: "/*", BlockClose: "*/"},
	"lua":        {LineStart: "--", BlockOpen: "--[[", BlockClose: "]]"},
	"bash":       {LineStart: "#", BlockOpen: ": '", BlockClose: "'"},
	"shell":      {LineStart: "#", BlockOpen: ": '", BlockClose: "'"},
	"powershell": {LineStart: "#", BlockOpen: "<#", BlockClose: "#>"},
	"html":       {LineStart: "<!--", BlockOpen: "<!--", BlockClose: "-->"},
}

// SyntaxFor returns the comment syntax for a language id, falling back
// to the Python style used by Jupyter kernels.
func SyntaxFor(languageID string) CommentSyntax {
	if s, ok := syntaxes[languageID]; ok {
		return s
	}
	return DefaultSyntax
}
