package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/cellflat/internal/configloader"
	"github.com/yaklabco/cellflat/pkg/mdcodec"
	"github.com/yaklabco/cellflat/pkg/notebook"
	"github.com/yaklabco/cellflat/pkg/projection"
)

// readSource reads the notebook Markdown from the path argument, or
// from stdin when no path is given and stdin is not a terminal.
func readSource(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrInput, args[0], err)
		}
		return data, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("%w: no input file given and stdin is a terminal", ErrUsage)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("%w: read stdin: %w", ErrInput, err)
	}
	return data, nil
}

// loadConfig resolves the tool configuration for a command run.
func loadConfig(cmd *cobra.Command) (*configloader.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// buildProjection decodes the Markdown source and flattens it. The
// comment syntax follows the first code cell's language.
func buildProjection(source []byte, cfg *configloader.Config, excludeMarkup bool) (*projection.NotebookProjection, error) {
	nb, err := mdcodec.Decode(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrData, err)
	}

	syntax := projection.DefaultSyntax
	for _, c := range nb.Cells {
		if c.Kind == notebook.KindCode {
			syntax = cfg.SyntaxFor(c.LanguageID)
			break
		}
	}

	return projection.Build(nb.Cells, projection.Options{
		ExcludeMarkup: excludeMarkup || cfg.ExcludeMarkup,
		Syntax:        syntax,
	}), nil
}
