package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ledgertools/ledgerstats/pkg/pipeline"
)

// checkCommand creates the check command, which runs only the structural
// validators and reports the outcome without computing statistics.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Verify the structural invariants of a ledger DAG file",
		Long: `Load a ledger DAG file and verify its structural invariants: every
vertex reachable from Root over reverse edges, no reference cycles, and
(advisory) two-colorability. Pass "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0])
		},
	}

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	in, source, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	runner := pipeline.NewRunner(logger)
	result, err := runner.Check(ctx, pipeline.Options{
		Input:  in,
		Source: source,
		Logger: logger,
	})
	if err != nil {
		if result != nil && result.Validated {
			printError("graph is %s", result.Connectivity)
		}
		return err
	}

	printSuccess("graph is connected and acyclic")
	printDetail("%d transactions", result.Stats.TxCount)
	if result.Bipartite {
		printInfo("graph is bipartite")
	} else {
		printWarning("graph is not bipartite")
	}
	return nil
}
