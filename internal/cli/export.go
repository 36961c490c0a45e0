package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgertools/ledgerstats/pkg/errors"
	"github.com/ledgertools/ledgerstats/pkg/ledger"
	"github.com/ledgertools/ledgerstats/pkg/render"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	format     string // "dot" or "svg"
	output     string // output file path (stdout if empty)
	timestamps bool   // include timestamps in node labels
}

// exportCommand creates the export command, which converts a ledger file to
// Graphviz DOT or renders it to SVG.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a ledger DAG file to Graphviz DOT or SVG",
		Long: `Load a ledger DAG file and export it for visual inspection.

With --format dot the Graphviz source is written; with --format svg the
graph is rendered through Graphviz. Pass "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot or svg (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.timestamps, "timestamps", false, "include timestamps in node labels")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, path string, opts exportOpts) error {
	format := opts.format
	if format == "" {
		format = c.cfg.ExportFormat
	}
	if format != "dot" && format != "svg" {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg)", format)
	}

	in, source, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	g, err := ledger.ReadGraph(in)
	if err != nil {
		return fmt.Errorf("load %s: %w", source, err)
	}

	dot := render.ToDOT(g, render.Options{Timestamps: opts.timestamps})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		data, err = render.RenderSVG(ctx, dot)
		if err != nil {
			spinner.StopWithError("rendering failed")
			return err
		}
		spinner.StopWithSuccess("rendered SVG")
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", opts.output)
	}
	printSuccess("exported %d transactions", g.Len())
	printFile(opts.output)
	return nil
}
