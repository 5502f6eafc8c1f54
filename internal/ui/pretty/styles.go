// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Cell table components
	Header   lipgloss.Style
	CellID   lipgloss.Style
	CodeKind lipgloss.Style
	Markup   lipgloss.Style
	Language lipgloss.Style
	Location lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Header:   plain,
			CellID:   plain,
			CodeKind: plain,
			Markup:   plain,
			Language: plain,
			Location: plain,
			Dim:      plain,
			Bold:     plain,
		}
	}
	return &Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		CellID:   lipgloss.NewStyle().Bold(true),
		CodeKind: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Markup:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Language: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     lipgloss.NewStyle().Bold(true),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
