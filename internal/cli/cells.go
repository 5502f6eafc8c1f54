package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cellflat/internal/ui/pretty"
)

func newCellsCommand() *cobra.Command {
	var excludeMarkup bool

	cmd := &cobra.Command{
		Use:   "cells [file]",
		Short: "Show the cells of a notebook and their flattened spans",
		Long: `List every cell of a Markdown notebook with its kind, language, line
ending convention, and the line and byte span it occupies in the
flattened text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCells(cmd, args, excludeMarkup)
		},
	}

	cmd.Flags().BoolVar(&excludeMarkup, "exclude-markup", false,
		"drop markup cells from the flattened text")

	return cmd
}

func runCells(cmd *cobra.Command, args []string, excludeMarkup bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	p, err := buildProjection(source, cfg, excludeMarkup)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("get color flag: %w", err)
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	out := pretty.NewCellTableFormatter(styles).FormatCells(p)
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "no cells")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
