package ledger

import (
	"testing"

	"github.com/ledgertools/ledgerstats/pkg/errors"
)

func TestParseTransaction(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		line     string
		want     Transaction
		wantCode errors.Code
	}{
		{
			name: "Valid",
			id:   2,
			line: "1 1 0",
			want: Transaction{ID: 2, Left: Root, Right: Root, Timestamp: 0},
		},
		{
			name: "ExtraWhitespace",
			id:   3,
			line: "  1 \t 2   5 ",
			want: Transaction{ID: 3, Left: Root, Right: 2, Timestamp: 5},
		},
		{
			name: "TrailingTokensIgnored",
			id:   4,
			line: "1 2 5 garbage",
			want: Transaction{ID: 4, Left: Root, Right: 2, Timestamp: 5},
		},
		{name: "EmptyLine", id: 2, line: "", wantCode: errors.ErrCodeMissingLeft},
		{name: "MissingRight", id: 2, line: "1", wantCode: errors.ErrCodeMissingRight},
		{name: "MissingTimestamp", id: 2, line: "1 1", wantCode: errors.ErrCodeMissingTimestamp},
		{name: "NonNumericLeft", id: 2, line: "x 1 0", wantCode: errors.ErrCodeInvalidLeft},
		{name: "NonNumericRight", id: 2, line: "1 x 0", wantCode: errors.ErrCodeInvalidRight},
		{name: "NonNumericTimestamp", id: 2, line: "1 1 x", wantCode: errors.ErrCodeInvalidTimestamp},
		{name: "NegativeLeft", id: 2, line: "-1 1 0", wantCode: errors.ErrCodeInvalidLeft},
		{name: "ZeroLeft", id: 2, line: "0 1 0", wantCode: errors.ErrCodeInvalidLeftID},
		{name: "ZeroRight", id: 2, line: "1 0 0", wantCode: errors.ErrCodeInvalidRightID},
		{name: "ReservedID", id: 1, line: "1 1 0", wantCode: errors.ErrCodeReservedID},
		{name: "ZeroID", id: 0, line: "1 1 0", wantCode: errors.ErrCodeInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := ParseTransaction(tt.id, tt.line)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("ParseTransaction(%d, %q) error = %v, want code %s", tt.id, tt.line, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTransaction(%d, %q): %v", tt.id, tt.line, err)
			}
			if tx != tt.want {
				t.Errorf("ParseTransaction(%d, %q) = %v, want %v", tt.id, tt.line, tx, tt.want)
			}
		})
	}
}

func TestTransactionString(t *testing.T) {
	tx := Transaction{ID: 3, Left: Root, Right: 2, Timestamp: 7}
	want := "Tx<Tx:3, Root, Tx:2, 7>"
	if got := tx.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
