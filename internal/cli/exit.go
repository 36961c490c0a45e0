package cli

import (
	"github.com/ledgertools/ledgerstats/pkg/errors"
)

// ExitCode maps an error to the process exit code. The mapping distinguishes
// the failure classes a caller may want to script against: opening the input
// (1), parsing the graph (2), and the two fatal structural outcomes (3, 4).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeGraphCyclic:
		return 3
	case errors.ErrCodeGraphUnconnected:
		return 4
	case errors.ErrCodeMissingCount, errors.ErrCodeInvalidCount,
		errors.ErrCodeTooManyTransactions, errors.ErrCodeTooFewTransactions,
		errors.ErrCodeMissingLeft, errors.ErrCodeMissingRight, errors.ErrCodeMissingTimestamp,
		errors.ErrCodeInvalidLeft, errors.ErrCodeInvalidRight, errors.ErrCodeInvalidTimestamp,
		errors.ErrCodeInvalidLeftID, errors.ErrCodeInvalidRightID,
		errors.ErrCodeInvalidLeftRef, errors.ErrCodeInvalidRightRef,
		errors.ErrCodeInvalidID, errors.ErrCodeReservedID:
		return 2
	default:
		return 1
	}
}
