package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ledgertools/ledgerstats/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "ledgerstats"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	cfg    Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The user config file is loaded before any command runs, and the logger is
// attached to the command context for subcommands to pick up.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ledgerstats",
		Short:        "Ledgerstats validates and analyzes DAG-structured ledgers",
		Long:         `Ledgerstats is a CLI tool for DAG-structured ledger files: it verifies structural invariants (connectivity, acyclicity, two-colorability) and computes descriptive statistics over depth, fan-in and temporal density.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.statsCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.genCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.completionCommand())

	return root
}
