package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/adamhammes/mintalyze/internal/model"
)

// MintParser parses Mint transaction CSV exports.
type MintParser struct{}

const (
	mintNumFields    = 9
	mintColDate      = 0
	mintColDesc      = 1
	mintColOrigDesc  = 2
	mintColAmount    = 3
	mintColType      = 4
	mintColCategory  = 5
	mintColAccount   = 6
	mintColLabels    = 7
	mintColNotes     = 8
)

// Format returns the parser name.
func (p *MintParser) Format() string { return "mint" }

// Parse reads a Mint CSV and returns Transactions in file order. The
// first line is the header and is discarded. Any bad row fails the
// whole parse.
func (p *MintParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	// Row length is checked per record so errors can name the row.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading mint CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseMintRow(rec, i+2)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseMintRow(rec []string, row int) (model.Transaction, error) {
	if len(rec) != mintNumFields {
		return model.Transaction{}, &ParseError{
			Row: row,
			Err: fmt.Errorf("expected %d fields, got %d", mintNumFields, len(rec)),
		}
	}

	date, err := model.ParseDate(rec[mintColDate])
	if err != nil {
		return model.Transaction{}, &ParseError{Row: row, Field: "date", Err: err}
	}

	amount, err := decimal.NewFromString(rec[mintColAmount])
	if err != nil {
		return model.Transaction{}, &ParseError{
			Row:   row,
			Field: "amount",
			Err:   fmt.Errorf("parsing amount %q: %w", rec[mintColAmount], err),
		}
	}

	return model.Transaction{
		Date:                date,
		Description:         rec[mintColDesc],
		OriginalDescription: rec[mintColOrigDesc],
		AbsoluteAmount:      amount,
		Type:                rec[mintColType],
		Category:            rec[mintColCategory],
		Account:             rec[mintColAccount],
		Labels:              rec[mintColLabels],
		Notes:               rec[mintColNotes],
	}, nil
}
