package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cellflat/internal/logging"
)

func newFlattenCommand() *cobra.Command {
	var excludeMarkup bool

	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Print the flattened text of a Markdown notebook",
		Long: `Flatten a Markdown notebook into one text document.

Fenced code blocks become code cells, prose becomes markup cells. Each
cell is preceded by a marker comment line; markup cells are wrapped in
block comments. Reads from stdin when no file is given.

Examples:
  cellflat flatten notebook.md
  cellflat flatten --exclude-markup notebook.md
  cat notebook.md | cellflat flatten`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatten(cmd, args, excludeMarkup)
		},
	}

	cmd.Flags().BoolVar(&excludeMarkup, "exclude-markup", false,
		"drop markup cells from the flattened text")

	return cmd
}

func runFlatten(cmd *cobra.Command, args []string, excludeMarkup bool) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.SetLevel(cfg.LogLevel)

	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	p, err := buildProjection(source, cfg, excludeMarkup)
	if err != nil {
		return err
	}

	logger.Debug("flattened notebook",
		logging.FieldCells, len(p.Cells()),
		logging.FieldAltLen, p.Len(),
	)

	fmt.Fprintln(cmd.OutOrStdout(), p.AltText())
	return nil
}
