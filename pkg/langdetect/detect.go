// Package langdetect guesses the language of code cells that arrive
// without a language id, such as anonymous Markdown fences. It uses
// go-enry with a small set of pattern checks for the languages
// notebooks most commonly carry.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const (
	langPython = "python"
	langGo     = "go"
	langJSON   = "json"
	langSQL    = "sql"
	langBash   = "bash"
	langR      = "r"
	langText   = "text"
)

// classifier candidates, biased toward notebook kernels.
var candidates = []string{
	"Python", "R", "Julia", "Go", "JavaScript", "TypeScript",
	"Rust", "Scala", "SQL", "Shell", "Lua", "HTML", "JSON", "YAML",
}

// Detect returns a lower-case language id for code content, or "text"
// when nothing reliable can be inferred.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	// A shebang names the interpreter outright.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// detectByPattern short-circuits the classifier for unambiguous
// structural markers.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	s := string(content)

	if bytes.HasPrefix(trimmed, []byte("package ")) {
		return langGo
	}
	if (bytes.HasPrefix(trimmed, []byte("{")) && bytes.HasSuffix(trimmed, []byte("}"))) ||
		(bytes.HasPrefix(trimmed, []byte("[")) && bytes.HasSuffix(trimmed, []byte("]"))) {
		if json := string(trimmed); strings.Contains(json, "\":") || json == "{}" || json == "[]" {
			return langJSON
		}
	}
	if hasKeyword(s, "SELECT ") && hasKeyword(s, " FROM ") {
		return langSQL
	}
	if strings.Contains(s, "def ") && strings.Contains(s, "):") {
		return langPython
	}
	if strings.Contains(s, "import ") && !strings.Contains(s, "import (") {
		if strings.HasPrefix(strings.TrimSpace(s), "import ") || strings.Contains(s, "from ") {
			return langPython
		}
	}
	if strings.Contains(s, "<-") && strings.Contains(s, "library(") {
		return langR
	}
	return ""
}

func hasKeyword(s, kw string) bool {
	return strings.Contains(s, kw) || strings.Contains(s, strings.ToLower(kw))
}

func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
