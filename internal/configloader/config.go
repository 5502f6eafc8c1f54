// Package configloader resolves the tool configuration from project
// files and environment variables. It searches upward from the working
// directory for a .cellflat.yml, stops at the VCS root, and applies
// CELLFLAT_* overrides on top.
package configloader

import (
	"github.com/yaklabco/cellflat/pkg/projection"
)

// SyntaxOverride replaces parts of the comment syntax used for one
// language. Empty fields keep the built-in value.
type SyntaxOverride struct {
	LineStart  string `yaml:"line_start"`
	BlockOpen  string `yaml:"block_open"`
	BlockClose string `yaml:"block_close"`
}

// Config holds the resolved tool configuration.
type Config struct {
	// ExcludeMarkup drops markup cells from the flattened text.
	ExcludeMarkup bool `yaml:"exclude_markup"`

	// LogLevel is the default logger level name.
	LogLevel string `yaml:"log_level"`

	// LanguageOverrides adjusts the comment syntax per language id.
	LanguageOverrides map[string]SyntaxOverride `yaml:"language_overrides"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// SyntaxFor resolves the comment syntax for a language id, applying
// any configured override on top of the built-in table.
func (c *Config) SyntaxFor(languageID string) projection.CommentSyntax {
	syntax := projection.SyntaxFor(languageID)
	ov, ok := c.LanguageOverrides[languageID]
	if !ok {
		return syntax
	}
	if ov.LineStart != "" {
		syntax.LineStart = ov.LineStart
	}
	if ov.BlockOpen != "" {
		syntax.BlockOpen = ov.BlockOpen
	}
	if ov.BlockClose != "" {
		syntax.BlockClose = ov.BlockClose
	}
	return syntax
}
