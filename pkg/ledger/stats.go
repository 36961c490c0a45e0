package ledger

import (
	"fmt"

	"github.com/ledgertools/ledgerstats/pkg/errors"
)

// Stat accumulates one aggregate metric over a single pass of the
// transaction sequence. Accumulate is invoked once per transaction in
// ascending identifier order; Result finalizes the metric given the total
// transaction count.
type Stat interface {
	// Accumulate folds one transaction into the internal state.
	Accumulate(t Transaction)

	// Result produces the printable aggregate. It fails with a
	// NUMERIC_OVERFLOW error when an internal integer count cannot be
	// represented exactly as a float64.
	Result(nTransactions float64) (fmt.Stringer, error)
}

// DefaultStats returns the full set of accumulators in report order.
// All four share one pass over the graph's transactions.
func DefaultStats(g *Graph) []Stat {
	return []Stat{
		NewDepths(g),
		NewInReferences(g),
		&TimeUnits{},
		NewTimestamps(g),
	}
}

// maxExactInt is the largest integer a float64 represents exactly. Counts
// beyond it must fail rather than silently lose precision.
const maxExactInt = 1 << 53

// ExactFloat converts a non-negative integer count to float64, failing with
// a NUMERIC_OVERFLOW error instead of silently losing precision.
func ExactFloat(n int) (float64, error) {
	if n > maxExactInt {
		return 0, errors.New(errors.ErrCodeNumericOverflow,
			"count %d cannot be represented exactly as float64", n)
	}
	return float64(n), nil
}

func toFloatU64(n uint64) (float64, error) {
	if n > maxExactInt {
		return 0, errors.New(errors.ErrCodeNumericOverflow,
			"value %d cannot be represented exactly as float64", n)
	}
	return float64(n), nil
}

// Depths accumulates the running sum of transaction depths and the set of
// distinct depth values, using a depth cache shared across the whole pass.
type Depths struct {
	graph        *Graph
	cache        DepthCache
	sumOfDepths  int
	uniqueDepths map[int]struct{}
}

// NewDepths creates the depth accumulator for the given graph.
func NewDepths(g *Graph) *Depths {
	return &Depths{
		graph:        g,
		cache:        NewDepthCache(g.Len()),
		uniqueDepths: make(map[int]struct{}, g.Len()),
	}
}

// Accumulate implements Stat.
func (d *Depths) Accumulate(t Transaction) {
	depth := d.graph.Depth(t.ID, d.cache)
	d.sumOfDepths += depth
	d.uniqueDepths[depth] = struct{}{}
}

// Result implements Stat.
func (d *Depths) Result(nTransactions float64) (fmt.Stringer, error) {
	sum, err := ExactFloat(d.sumOfDepths)
	if err != nil {
		return nil, err
	}
	unique, err := ExactFloat(len(d.uniqueDepths))
	if err != nil {
		return nil, err
	}
	return DepthsResult{
		AverageDepth:       sum / (nTransactions + 1),
		AverageTxsPerDepth: nTransactions / unique,
	}, nil
}

// DepthsResult is the finalized depth statistic.
type DepthsResult struct {
	AverageDepth       float64
	AverageTxsPerDepth float64
}

func (r DepthsResult) String() string {
	return fmt.Sprintf("> AVG DAG DEPTH: %.2f\n> AVG TXS PER DEPTH: %.2f",
		r.AverageDepth, r.AverageTxsPerDepth)
}

// InReferences sums the inbound reference count of every transaction. Root
// is not part of the transaction sequence, so its own inbound count is folded
// in on the first accumulation.
type InReferences struct {
	graph  *Graph
	total  int
	primed bool
}

// NewInReferences creates the fan-in accumulator for the given graph.
func NewInReferences(g *Graph) *InReferences {
	return &InReferences{graph: g}
}

// Accumulate implements Stat.
func (i *InReferences) Accumulate(t Transaction) {
	if !i.primed {
		i.total += i.graph.References(Root).Count()
		i.primed = true
	}
	i.total += i.graph.References(t.ID.ID()).Count()
}

// Result implements Stat.
func (i *InReferences) Result(nTransactions float64) (fmt.Stringer, error) {
	total, err := ExactFloat(i.total)
	if err != nil {
		return nil, err
	}
	return InReferencesResult{
		AverageReferences: total / (nTransactions + 1),
	}, nil
}

// InReferencesResult is the finalized fan-in statistic.
type InReferencesResult struct {
	AverageReferences float64
}

func (r InReferencesResult) String() string {
	return fmt.Sprintf("> AVG REF: %.2f", r.AverageReferences)
}

// TimeUnits tracks the maximum timestamp seen. The zero value is ready to use.
type TimeUnits struct {
	maxTimestamp uint64
}

// Accumulate implements Stat.
func (tu *TimeUnits) Accumulate(t Transaction) {
	tu.maxTimestamp = max(tu.maxTimestamp, t.Timestamp)
}

// Result implements Stat.
func (tu *TimeUnits) Result(nTransactions float64) (fmt.Stringer, error) {
	m, err := toFloatU64(tu.maxTimestamp)
	if err != nil {
		return nil, err
	}
	return TimeUnitsResult{
		AverageTxsPerTimeUnit: m / nTransactions,
	}, nil
}

// TimeUnitsResult is the finalized temporal density statistic.
type TimeUnitsResult struct {
	AverageTxsPerTimeUnit float64
}

func (r TimeUnitsResult) String() string {
	return fmt.Sprintf("> AVG TXS PER TIME UNIT: %.2f", r.AverageTxsPerTimeUnit)
}

// Timestamps tracks the set of distinct timestamps seen.
type Timestamps struct {
	uniqueTimestamps map[uint64]struct{}
}

// NewTimestamps creates the timestamp accumulator for the given graph.
func NewTimestamps(g *Graph) *Timestamps {
	return &Timestamps{
		uniqueTimestamps: make(map[uint64]struct{}, g.Len()),
	}
}

// Accumulate implements Stat.
func (ts *Timestamps) Accumulate(t Transaction) {
	ts.uniqueTimestamps[t.Timestamp] = struct{}{}
}

// Result implements Stat.
func (ts *Timestamps) Result(nTransactions float64) (fmt.Stringer, error) {
	unique, err := ExactFloat(len(ts.uniqueTimestamps))
	if err != nil {
		return nil, err
	}
	return TimestampsResult{
		AverageTxsPerTimestamp: nTransactions / unique,
	}, nil
}

// TimestampsResult is the finalized timestamp statistic.
type TimestampsResult struct {
	AverageTxsPerTimestamp float64
}

func (r TimestampsResult) String() string {
	return fmt.Sprintf("> AVG TXS PER TIMESTAMP: %.2f", r.AverageTxsPerTimestamp)
}
