package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgertools/ledgerstats/pkg/errors"
	"github.com/ledgertools/ledgerstats/pkg/pipeline"
)

// statsCommand creates the stats command, the main entry point of the tool.
func (c *CLI) statsCommand() *cobra.Command {
	var noValidate bool

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Validate a ledger DAG file and print its statistics report",
		Long: `Load a ledger DAG file, verify its structure and print the statistics
report to stdout.

The input format is one count line followed by that many transaction lines,
each holding a left reference, a right reference and a timestamp. Pass "-"
to read from stdin.

A cyclic or disconnected graph aborts the run; a non-bipartite graph only
produces a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd.Context(), args[0], noValidate)
		},
	}

	cmd.Flags().BoolVarP(&noValidate, "no-validate", "d", false, "disable (slow) graph validation")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, path string, noValidate bool) error {
	logger := loggerFromContext(ctx)
	logger.Info("input file", "path", path)

	in, source, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:          in,
		Source:         source,
		SkipValidation: noValidate || c.cfg.SkipValidation,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.ReportText())
	return nil
}

// openInput opens the input file, or stdin when path is "-".
func openInput(path string) (io.ReadCloser, string, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	return f, path, nil
}
