package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cellflat/pkg/textpos"
)

func newLocateCommand() *cobra.Command {
	var excludeMarkup bool

	cmd := &cobra.Command{
		Use:   "locate <offset> [file]",
		Short: "Map a flattened-text offset back to a cell position",
		Long: `Translate a byte offset in the flattened text back to the cell and
line/character position it came from. Offsets inside a cell marker
resolve to the start of that cell's content.

Examples:
  cellflat locate 80 notebook.md
  cat notebook.md | cellflat locate 80`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, args, excludeMarkup)
		},
	}

	cmd.Flags().BoolVar(&excludeMarkup, "exclude-markup", false,
		"drop markup cells from the flattened text")

	return cmd
}

func runLocate(cmd *cobra.Command, args []string, excludeMarkup bool) error {
	offset, err := strconv.Atoi(args[0])
	if err != nil || offset < 0 {
		return fmt.Errorf("%w: offset must be a non-negative integer, got %q", ErrUsage, args[0])
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	source, err := readSource(cmd, args[1:])
	if err != nil {
		return err
	}

	p, err := buildProjection(source, cfg, excludeMarkup)
	if err != nil {
		return err
	}

	located := p.FromAltOffsetRange(textpos.OffsetRange{Start: offset, End: offset})
	if len(located) == 0 {
		return fmt.Errorf("%w: offset %d is outside the flattened text (length %d)",
			ErrData, offset, p.Len())
	}

	for _, cr := range located {
		fmt.Fprintf(cmd.OutOrStdout(), "cell %s line %d column %d\n",
			cr.Cell.StableID, cr.Range.Start.Line+1, cr.Range.Start.Character+1)
	}
	return nil
}
