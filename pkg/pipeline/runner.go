package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ledgertools/ledgerstats/pkg/errors"
	"github.com/ledgertools/ledgerstats/pkg/ledger"
	"github.com/ledgertools/ledgerstats/pkg/observability"
)

// Runner executes the analysis pipeline. It is stateless apart from its
// logger, so one Runner can serve any number of sequential runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → validate → accumulate pipeline.
//
// A cyclic or disconnected graph is fatal: downstream statistics assume
// acyclicity, so Execute returns a GRAPH_CYCLIC or GRAPH_UNCONNECTED error
// before the stats stage. A non-bipartite graph is advisory only; it is
// logged as a warning, recorded on the Result, and statistics still run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	result, logger, err := r.start(&opts)
	if err != nil {
		return nil, err
	}

	if err := r.load(ctx, result, logger, opts); err != nil {
		return nil, err
	}

	if !opts.SkipValidation {
		if err := r.validate(ctx, result, logger); err != nil {
			return result, err
		}
	}

	// Stats stage
	statsStart := time.Now()
	observability.Pipeline().OnStatsStart(ctx, result.Graph.Len())
	report, err := runStats(result.Graph)
	result.Stats.StatsTime = time.Since(statsStart)
	observability.Pipeline().OnStatsComplete(ctx, result.Graph.Len(), result.Stats.StatsTime, err)
	if err != nil {
		return result, err
	}
	result.Report = report

	logger.Info("computed statistics", "metrics", len(report), "duration", result.Stats.StatsTime)

	return result, nil
}

// Check runs only the load and validate stages. Unlike Execute, validation
// cannot be skipped: it is the whole point of the call.
func (r *Runner) Check(ctx context.Context, opts Options) (*Result, error) {
	result, logger, err := r.start(&opts)
	if err != nil {
		return nil, err
	}

	if err := r.load(ctx, result, logger, opts); err != nil {
		return nil, err
	}

	if err := r.validate(ctx, result, logger); err != nil {
		return result, err
	}
	return result, nil
}

// start validates options and prepares the result with a fresh run id.
func (r *Runner) start(opts *Options) (*Result, *log.Logger, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{RunID: uuid.New()}
	logger := r.Logger.With("run_id", result.RunID.String())
	return result, logger, nil
}

// load reads the graph from the input stream into the result.
func (r *Runner) load(ctx context.Context, result *Result, logger *log.Logger, opts Options) error {
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Source)
	g, err := ledger.ReadGraph(opts.Input)
	observability.Pipeline().OnLoadComplete(ctx, opts.Source, graphLen(g), time.Since(loadStart), err)
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.Source, err)
	}
	result.Graph = g
	result.Stats.TxCount = g.Len()
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Info("loaded transactions", "count", g.Len(), "duration", result.Stats.LoadTime)
	for _, t := range g.Transactions() {
		logger.Debug("transaction", "tx", t.String())
	}
	return nil
}

// validate runs the structural validators and records their outcome.
func (r *Runner) validate(ctx context.Context, result *Result, logger *log.Logger) error {
	g := result.Graph
	validateStart := time.Now()
	observability.Pipeline().OnValidateStart(ctx, g.Len())

	result.Connectivity = g.CheckConnectivity()
	result.Validated = true

	switch result.Connectivity {
	case ledger.Cyclic:
		observability.Pipeline().OnValidateComplete(ctx, result.Connectivity.String(), false, time.Since(validateStart))
		return errors.New(errors.ErrCodeGraphCyclic, "graph is connected but cyclic, this is not supported")
	case ledger.Disconnected:
		observability.Pipeline().OnValidateComplete(ctx, result.Connectivity.String(), false, time.Since(validateStart))
		return errors.New(errors.ErrCodeGraphUnconnected, "graph is unconnected, this is not supported")
	}

	result.Bipartite = g.IsBipartite()
	result.Stats.ValidateTime = time.Since(validateStart)
	observability.Pipeline().OnValidateComplete(ctx, result.Connectivity.String(), result.Bipartite, result.Stats.ValidateTime)

	logger.Info("graph is connected and acyclic", "duration", result.Stats.ValidateTime)
	if result.Bipartite {
		logger.Info("graph is bipartite")
	} else {
		logger.Warn("graph is not bipartite, this should not be a problem")
	}
	return nil
}

// runStats feeds every transaction once, in ascending identifier order, to
// all accumulators and finalizes them in report order.
func runStats(g *ledger.Graph) ([]string, error) {
	stats := ledger.DefaultStats(g)

	for _, t := range g.Transactions() {
		for _, s := range stats {
			s.Accumulate(t)
		}
	}

	n, err := ledger.ExactFloat(g.Len())
	if err != nil {
		return nil, err
	}

	report := make([]string, 0, len(stats))
	for _, s := range stats {
		res, err := s.Result(n)
		if err != nil {
			return nil, err
		}
		report = append(report, res.String())
	}
	return report, nil
}

func graphLen(g *ledger.Graph) int {
	if g == nil {
		return 0
	}
	return g.Len()
}
