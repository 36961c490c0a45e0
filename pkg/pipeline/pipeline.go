// Package pipeline runs the complete load → validate → accumulate sequence
// over a ledger input stream.
//
// The pipeline centralizes the run logic so the CLI commands stay thin and
// behave identically. It consists of three stages:
//
//  1. Load: read the declared count and all transaction lines into a Graph
//  2. Validate: connectivity/acyclicity (fatal) and bipartiteness (advisory)
//  3. Stats: one shared pass feeding all accumulators, then finalization
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  f,
//	    Source: path,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.ReportText())
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ledgertools/ledgerstats/pkg/errors"
	"github.com/ledgertools/ledgerstats/pkg/ledger"
)

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the line-oriented ledger description. Required.
	Input io.Reader

	// Source names the input for logs and error messages (a file path, or
	// "stdin"). Defaults to "input".
	Source string

	// SkipValidation disables the structural validators. Statistics on a
	// cyclic graph do not terminate, so this is only safe for inputs known
	// to be well formed.
	SkipValidation bool

	// Logger receives progress output. Defaults to a discarding logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == nil {
		return errors.New(errors.ErrCodeInternal, "input is required")
	}
	if o.Source == "" {
		o.Source = "input"
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs.
	RunID uuid.UUID

	// Graph is the loaded ledger graph.
	Graph *ledger.Graph

	// Validated reports whether the structural validators ran.
	Validated bool

	// Connectivity is the structural outcome. Only meaningful when Validated.
	Connectivity ledger.Connectivity

	// Bipartite reports whether the graph is two-colorable. Only meaningful
	// when Validated and Connectivity is ConnectedAcyclic.
	Bipartite bool

	// Report holds the finalized statistic blocks in output order.
	Report []string

	// Stats contains timing and size information.
	Stats Stats
}

// ReportText joins the report blocks into the final plain-text output, one
// metric per line.
func (r *Result) ReportText() string {
	return strings.Join(r.Report, "\n")
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TxCount      int
	LoadTime     time.Duration
	ValidateTime time.Duration
	StatsTime    time.Duration
}
