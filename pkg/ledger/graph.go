package ledger

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/ledgertools/ledgerstats/pkg/errors"
)

// RefSet records the inbound references of a single vertex: the set of
// transactions that reference it and the total number of reference
// occurrences. A transaction referencing the same target with both its left
// and right reference contributes one entry to the set but two to the count.
type RefSet struct {
	set   map[TxID]struct{}
	count int
}

// Count returns the number of reference occurrences (fan-in).
func (r *RefSet) Count() int {
	if r == nil {
		return 0
	}
	return r.count
}

// Has reports whether the given transaction references this vertex.
func (r *RefSet) Has(id TxID) bool {
	if r == nil {
		return false
	}
	_, ok := r.set[id]
	return ok
}

// IDs returns the referencing transaction identifiers in ascending order.
func (r *RefSet) IDs() []TxID {
	if r == nil {
		return nil
	}
	ids := make([]TxID, 0, len(r.set))
	for id := range r.set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (r *RefSet) add(id TxID) {
	r.set[id] = struct{}{}
	r.count++
}

// Graph owns the ordered transaction sequence of a ledger plus a reverse
// index mapping each referenced identifier (Root included) to the set and
// count of transactions referencing it. It is built once by ReadGraph and is
// immutable afterwards; all consumers borrow it read-only.
type Graph struct {
	txs     []Transaction
	reverse map[ID]*RefSet
}

func newGraph(capacity int) *Graph {
	return &Graph{
		txs:     make([]Transaction, 0, capacity),
		reverse: make(map[ID]*RefSet, capacity+1),
	}
}

// Len returns the number of transactions, excluding Root.
func (g *Graph) Len() int { return len(g.txs) }

// Transactions returns the transactions in ascending identifier order.
// The returned slice is a copy; the graph itself stays immutable.
func (g *Graph) Transactions() []Transaction { return slices.Clone(g.txs) }

// Tx returns the transaction with the given identifier.
func (g *Graph) Tx(id TxID) (Transaction, bool) {
	i := id.Int() - 2
	if i < 0 || i >= len(g.txs) {
		return Transaction{}, false
	}
	return g.txs[i], true
}

// References returns the inbound reference record of the given vertex, or nil
// if nothing references it. The nil RefSet is valid and reports zero
// references.
func (g *Graph) References(id ID) *RefSet { return g.reverse[id] }

// push appends a transaction and indexes both its references. It is the only
// mutation on a Graph and is never called after ReadGraph returns.
func (g *Graph) push(t Transaction) {
	for _, ref := range []ID{t.Left, t.Right} {
		rs, ok := g.reverse[ref]
		if !ok {
			rs = &RefSet{set: make(map[TxID]struct{})}
			g.reverse[ref] = rs
		}
		rs.add(t.ID)
	}
	g.txs = append(g.txs, t)
}

// ReadGraph builds a Graph from a line-oriented input stream. The first line
// declares the transaction count n; exactly n data lines must follow, each
// parsed by ParseTransaction. Line i (0-indexed) is assigned identifier i+2.
//
// Both references of every transaction are checked against max = n+1, the
// highest identifier the declared count admits. The bound deliberately uses
// the declared total rather than the referencing transaction's own position,
// so a reference to a not-yet-parsed transaction is accepted here and only
// caught later by the structural validators if it breaks the DAG.
//
// Errors: MISSING_COUNT / INVALID_COUNT for the count line,
// TOO_MANY_TRANSACTIONS / TOO_FEW_TRANSACTIONS for length mismatches,
// INVALID_LEFT_REF / INVALID_RIGHT_REF for out-of-bound references, and the
// ParseTransaction errors wrapped with the offending line number. Failures of
// the underlying reader are surfaced unmodified.
func ReadGraph(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New(errors.ErrCodeMissingCount, "missing number of transactions")
	}
	countLine := scanner.Text()
	n, err := strconv.ParseUint(countLine, 10, 63)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCount, err, "invalid number of transactions %q", countLine)
	}

	declared := int(n)
	max := declared + 1
	g := newGraph(declared)

	for i := 0; scanner.Scan(); i++ {
		if i+1 > declared {
			return nil, errors.New(errors.ErrCodeTooManyTransactions, "too many transactions, expected %d", declared)
		}

		t, err := ParseTransaction(i+2, scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}

		if t.Left.Int() > max {
			return nil, errors.New(errors.ErrCodeInvalidLeftRef,
				"invalid left reference to %s on %s, max=%d", t.Left, t.ID, max)
		}
		if t.Right.Int() > max {
			return nil, errors.New(errors.ErrCodeInvalidRightRef,
				"invalid right reference to %s on %s, max=%d", t.Right, t.ID, max)
		}

		g.push(t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if g.Len() < declared {
		return nil, errors.New(errors.ErrCodeTooFewTransactions,
			"too few transactions, expected %d, got %d", declared, g.Len())
	}

	return g, nil
}
