package ledger

import (
	"strconv"
	"strings"

	"github.com/ledgertools/ledgerstats/pkg/errors"
)

// Transaction is one parsed ledger entry. It is immutable after construction:
// the graph hands out copies, never pointers into its own storage.
type Transaction struct {
	ID        TxID   // sequentially assigned, first parsed transaction gets 2
	Left      ID     // left reference (may be Root)
	Right     ID     // right reference (may be Root)
	Timestamp uint64 // logical timestamp, monotonicity not required
}

// String renders the transaction as "Tx<id, left, right, timestamp>".
func (t Transaction) String() string {
	return "Tx<" + t.ID.String() + ", " + t.Left.String() + ", " + t.Right.String() + ", " +
		strconv.FormatUint(t.Timestamp, 10) + ">"
}

// ParseTransaction parses one input line into a Transaction with the given
// externally assigned identifier. The line must hold three whitespace-separated
// tokens: left reference, right reference, timestamp.
//
// Missing tokens yield MISSING_LEFT / MISSING_RIGHT / MISSING_TIMESTAMP,
// checked in that order. Tokens that fail numeric parsing yield INVALID_LEFT /
// INVALID_RIGHT / INVALID_TIMESTAMP carrying the strconv cause; references
// that parse numerically but fall outside the identifier domain yield
// INVALID_LEFT_ID / INVALID_RIGHT_ID carrying the identifier error.
//
// No upper bound is enforced on the references here: that check depends on the
// total declared transaction count and belongs to the graph builder.
func ParseTransaction(id int, line string) (Transaction, error) {
	txID, err := ParseTxID(id)
	if err != nil {
		return Transaction{}, err
	}

	fields := strings.Fields(line)

	if len(fields) < 1 {
		return Transaction{}, errors.New(errors.ErrCodeMissingLeft, "missing left reference")
	}
	left, err := parseRef(fields[0], errors.ErrCodeInvalidLeft, errors.ErrCodeInvalidLeftID)
	if err != nil {
		return Transaction{}, err
	}

	if len(fields) < 2 {
		return Transaction{}, errors.New(errors.ErrCodeMissingRight, "missing right reference")
	}
	right, err := parseRef(fields[1], errors.ErrCodeInvalidRight, errors.ErrCodeInvalidRightID)
	if err != nil {
		return Transaction{}, err
	}

	if len(fields) < 3 {
		return Transaction{}, errors.New(errors.ErrCodeMissingTimestamp, "missing timestamp")
	}
	timestamp, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Transaction{}, errors.Wrap(errors.ErrCodeInvalidTimestamp, err, "invalid timestamp %q", fields[2])
	}

	return Transaction{ID: txID, Left: left, Right: right, Timestamp: timestamp}, nil
}

// parseRef parses a reference token as a non-negative integer and converts it
// into an ID, mapping the two failure modes to their respective codes.
func parseRef(token string, parseCode, idCode errors.Code) (ID, error) {
	n, err := strconv.ParseUint(token, 10, 63)
	if err != nil {
		return 0, errors.Wrap(parseCode, err, "invalid reference %q", token)
	}
	id, err := ParseID(int(n))
	if err != nil {
		return 0, errors.Wrap(idCode, err, "invalid reference %q", token)
	}
	return id, nil
}
