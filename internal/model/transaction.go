package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MintDateFormat is the date layout Mint uses in its CSV exports.
const MintDateFormat = "01/02/2006"

// TransferCategory marks money moved between the user's own accounts.
// Transfers are excluded by default so totals don't double-count.
const TransferCategory = "Transfer"

// debitType is the transaction type Mint assigns to outgoing money.
const debitType = "debit"

// Transaction represents a single Mint transaction. Fields mirror the
// export columns; AbsoluteAmount is the unsigned magnitude as recorded
// in the file, with the sign recovered through Amount.
type Transaction struct {
	Date                time.Time // date only, no time component
	Description         string
	OriginalDescription string
	AbsoluteAmount      decimal.Decimal // non-negative as exported
	Type                string          // "debit" or other
	Category            string
	Account             string
	Labels              string
	Notes               string
}

// ParseDate parses a Mint-format date like "01/15/2023".
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(MintDateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

// IsDebit reports whether this transaction is a debit.
func (t Transaction) IsDebit() bool {
	return t.Type == debitType
}

// IsTransfer reports whether this transaction was a shifting of money
// between accounts.
func (t Transaction) IsTransfer() bool {
	return t.Category == TransferCategory
}

// Amount is the money gained or lost in this transaction. Differs from
// AbsoluteAmount in that Amount is negative if the transaction is a
// debit.
func (t Transaction) Amount() decimal.Decimal {
	if t.IsDebit() {
		return t.AbsoluteAmount.Neg()
	}
	return t.AbsoluteAmount
}

// CmpAmount compares by signed amount only: -1 if t is smaller than
// other, +1 if larger, 0 on equal amounts. Ties carry no further
// ordering.
func (t Transaction) CmpAmount(other Transaction) int {
	return t.Amount().Cmp(other.Amount())
}

// String renders the transaction on two lines:
//
//	Coffee Shop
//	2023-01-03 | -4.50
func (t Transaction) String() string {
	return fmt.Sprintf("%s\n%s | %s", t.Description, t.Date.Format("2006-01-02"), t.Amount().StringFixed(2))
}
