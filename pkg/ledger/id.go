// Package ledger implements the in-memory model of a DAG-structured ledger:
// identifiers, transactions, the graph with its reverse-reference index, the
// structural validators, the memoized depth calculator, and the statistics
// accumulators that run over a built graph.
//
// A ledger consists of a synthetic Root vertex (identifier 1) and n
// transactions (identifiers 2..n+1), each carrying two references to
// earlier-or-equal vertices and a logical timestamp. The graph is built once
// from a line-oriented input stream and is immutable afterwards; validators
// and accumulators borrow it read-only.
package ledger

import (
	"fmt"

	"github.com/ledgertools/ledgerstats/pkg/errors"
)

// Root is the identifier of the synthetic root vertex. It is reserved: no
// parsed transaction may carry it as its own identifier.
const Root ID = 1

// ID identifies a vertex in the ledger graph: either Root (value 1) or a
// transaction (value >= 2). The zero value is not a valid identifier.
type ID int

// ParseID converts an integer into an ID. It returns an INVALID_ID error for
// the value 0, which is outside the identifier domain.
func ParseID(n int) (ID, error) {
	if n == 0 {
		return 0, errors.New(errors.ErrCodeInvalidID, "invalid identifier 0")
	}
	return ID(n), nil
}

// IsRoot reports whether the identifier denotes the root vertex.
func (id ID) IsRoot() bool { return id == Root }

// Int returns the underlying integer value.
func (id ID) Int() int { return int(id) }

// String renders the identifier as "Root" or "Tx:<n>".
func (id ID) String() string {
	if id.IsRoot() {
		return "Root"
	}
	return fmt.Sprintf("Tx:%d", int(id))
}

// TxID identifies a non-root transaction (value >= 2). It exists so that code
// indexing into the transaction sequence can never accidentally hold the root
// identifier. The zero value is not a valid identifier.
type TxID int

// ParseTxID converts an integer into a TxID. It returns an INVALID_ID error
// for 0 and a RESERVED_ID error for 1, which belongs exclusively to Root.
func ParseTxID(n int) (TxID, error) {
	switch n {
	case 0:
		return 0, errors.New(errors.ErrCodeInvalidID, "invalid identifier 0")
	case 1:
		return 0, errors.New(errors.ErrCodeReservedID, "identifier 1 is reserved for Root")
	}
	return TxID(n), nil
}

// ID widens the transaction identifier into the general identifier domain.
func (id TxID) ID() ID { return ID(id) }

// Int returns the underlying integer value.
func (id TxID) Int() int { return int(id) }

// String renders the identifier as "Tx:<n>".
func (id TxID) String() string { return fmt.Sprintf("Tx:%d", int(id)) }
