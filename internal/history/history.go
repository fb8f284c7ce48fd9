// Package history provides the AccountHistory collection: an immutable,
// file-ordered sequence of transactions with date-range and
// debit/deposit filtering. Every filter returns a new collection.
package history

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adamhammes/mintalyze/internal/importer"
	"github.com/adamhammes/mintalyze/internal/model"
)

// AccountHistory is an ordered collection of transactions. The zero
// value is an empty, usable collection.
type AccountHistory struct {
	txns []model.Transaction
}

// New builds an AccountHistory from already-parsed transactions. Unless
// includeTransfers is set, transfers between accounts are dropped.
func New(txns []model.Transaction, includeTransfers bool) *AccountHistory {
	kept := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if !includeTransfers && t.IsTransfer() {
			continue
		}
		kept = append(kept, t)
	}
	return &AccountHistory{txns: kept}
}

// FromCSV builds an AccountHistory from a Mint CSV export. The file is
// read to completion and closed before returning; any unreadable file
// or bad row fails the whole load.
func FromCSV(path string, includeTransfers bool) (*AccountHistory, error) {
	return FromFormat(path, "mint", includeTransfers)
}

// FromFormat builds an AccountHistory from an export in any registered
// format.
func FromFormat(path, format string, includeTransfers bool) (*AccountHistory, error) {
	p := importer.DefaultRegistry().Get(format)
	if p == nil {
		return nil, fmt.Errorf("unknown export format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading export %s: %w", path, err)
	}
	return New(txns, includeTransfers), nil
}

func (h *AccountHistory) filter(keep func(model.Transaction) bool) *AccountHistory {
	kept := make([]model.Transaction, 0, len(h.txns))
	for _, t := range h.txns {
		if keep(t) {
			kept = append(kept, t)
		}
	}
	return &AccountHistory{txns: kept}
}

// After returns a new AccountHistory with the transactions dated
// strictly after d.
func (h *AccountHistory) After(d time.Time) *AccountHistory {
	return h.filter(func(t model.Transaction) bool { return t.Date.After(d) })
}

// OnOrAfter returns a new AccountHistory with the transactions dated on
// or after d.
func (h *AccountHistory) OnOrAfter(d time.Time) *AccountHistory {
	return h.filter(func(t model.Transaction) bool { return !t.Date.Before(d) })
}

// Before returns a new AccountHistory with the transactions dated
// strictly before d.
func (h *AccountHistory) Before(d time.Time) *AccountHistory {
	return h.filter(func(t model.Transaction) bool { return t.Date.Before(d) })
}

// OnOrBefore returns a new AccountHistory with the transactions dated
// on or before d.
func (h *AccountHistory) OnOrBefore(d time.Time) *AccountHistory {
	return h.filter(func(t model.Transaction) bool { return !t.Date.After(d) })
}

// AfterString is After with a Mint-format date string.
func (h *AccountHistory) AfterString(s string) (*AccountHistory, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return h.After(d), nil
}

// OnOrAfterString is OnOrAfter with a Mint-format date string.
func (h *AccountHistory) OnOrAfterString(s string) (*AccountHistory, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return h.OnOrAfter(d), nil
}

// BeforeString is Before with a Mint-format date string.
func (h *AccountHistory) BeforeString(s string) (*AccountHistory, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return h.Before(d), nil
}

// OnOrBeforeString is OnOrBefore with a Mint-format date string.
func (h *AccountHistory) OnOrBeforeString(s string) (*AccountHistory, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return h.OnOrBefore(d), nil
}

// Debits returns a new AccountHistory with only the debit transactions.
//
// Note that Debits().Total() plus Deposits().Total() equals Total().
func (h *AccountHistory) Debits() *AccountHistory {
	return h.filter(model.Transaction.IsDebit)
}

// Deposits returns a new AccountHistory with only the transactions that
// are not debits.
func (h *AccountHistory) Deposits() *AccountHistory {
	return h.filter(func(t model.Transaction) bool { return !t.IsDebit() })
}

// Len returns the number of transactions.
func (h *AccountHistory) Len() int {
	return len(h.txns)
}

// Total returns the sum of signed amounts. An empty collection totals
// zero.
func (h *AccountHistory) Total() decimal.Decimal {
	total := decimal.Zero
	for _, t := range h.txns {
		total = total.Add(t.Amount())
	}
	return total
}

// Transactions returns the transactions in file order. The slice is a
// copy; mutating it does not affect the collection.
func (h *AccountHistory) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(h.txns))
	copy(out, h.txns)
	return out
}

// String renders every transaction, separated by blank lines, in
// collection order.
func (h *AccountHistory) String() string {
	parts := make([]string, len(h.txns))
	for i, t := range h.txns {
		parts[i] = t.String()
	}
	return strings.Join(parts, "\n\n")
}
