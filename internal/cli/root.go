// Package cli provides the Cobra command structure for cellflat.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cellflat/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root cellflat command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "cellflat",
		Short: "Flatten notebooks into a single synchronized text document",
		Long: `cellflat projects notebook cells into one flat text document and keeps
the two views synchronized.

Each cell is prefixed with a marker comment line, markup cells are
wrapped in block comments, and line endings are normalized. Ranges and
edits translate between cell coordinates and flat-document offsets in
both directions.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFlattenCommand())
	rootCmd.AddCommand(newCellsCommand())
	rootCmd.AddCommand(newLocateCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
