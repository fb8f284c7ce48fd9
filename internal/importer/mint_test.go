package importer

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mintHeader = "Date,Description,Original Description,Amount,Transaction Type,Category,Account Name,Labels,Notes\n"

func TestMintParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/mint_export.csv")
	require.NoError(t, err)

	p := &MintParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Len(t, txns, 8)

	// First: coffee debit
	first := txns[0]
	assert.Equal(t, "Coffee Shop", first.Description)
	assert.Equal(t, "SQ *BLUE BOTTLE COFFEE", first.OriginalDescription)
	assert.Equal(t, "4.50", first.AbsoluteAmount.StringFixed(2))
	assert.Equal(t, "debit", first.Type)
	assert.Equal(t, "Food & Dining", first.Category)
	assert.Equal(t, "Checking", first.Account)
	assert.Equal(t, 2023, first.Date.Year())
	assert.Equal(t, 1, int(first.Date.Month()))
	assert.Equal(t, 3, first.Date.Day())

	// Second: paycheck credit
	assert.Equal(t, "Paycheck", txns[1].Description)
	assert.True(t, txns[1].Amount().Equal(txns[1].AbsoluteAmount))

	// Transfers are kept by the parser; excluding them is the
	// collection's job.
	assert.True(t, txns[2].IsTransfer())
	assert.True(t, txns[3].IsTransfer())
}

func TestMintParser_SignedAmounts(t *testing.T) {
	data, err := os.ReadFile("../../testdata/mint_export.csv")
	require.NoError(t, err)

	p := &MintParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	for _, txn := range txns {
		assert.False(t, txn.AbsoluteAmount.IsNegative(), "absolute amount for %s", txn.Description)
		if txn.IsDebit() {
			assert.True(t, txn.Amount().IsNegative(), "expected negative for %s", txn.Description)
		} else {
			assert.True(t, txn.Amount().IsPositive(), "expected positive for %s", txn.Description)
		}
	}
}

func TestMintParser_HeaderOnly(t *testing.T) {
	p := &MintParser{}
	txns, err := p.Parse(strings.NewReader(mintHeader))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestMintParser_Empty(t *testing.T) {
	p := &MintParser{}
	txns, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestMintParser_BadDate(t *testing.T) {
	csv := mintHeader + "2023-01-01,Coffee,,3.50,debit,Food,Checking,,\n"
	p := &MintParser{}
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "parsing date")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Row)
	assert.Equal(t, "date", perr.Field)
}

func TestMintParser_BadAmount(t *testing.T) {
	csv := mintHeader +
		"01/01/2023,Coffee,,3.50,debit,Food,Checking,,\n" +
		"01/02/2023,Paycheck,,NOTANUMBER,credit,Income,Checking,,\n"
	p := &MintParser{}
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), "parsing amount")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Row)
	assert.Equal(t, "amount", perr.Field)
}

func TestMintParser_WrongColumnCount(t *testing.T) {
	csv := mintHeader + "01/01/2023,Coffee,3.50,debit\n"
	p := &MintParser{}
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Row)
	assert.Contains(t, err.Error(), "expected 9 fields, got 4")
}

func TestMintParser_WholeLoadFails(t *testing.T) {
	// One bad row anywhere fails the entire parse.
	csv := mintHeader +
		"01/01/2023,Coffee,,3.50,debit,Food,Checking,,\n" +
		"NOTADATE,Paycheck,,1000.00,credit,Income,Checking,,\n" +
		"01/03/2023,Rent,,1200.00,debit,Home,Checking,,\n"
	p := &MintParser{}
	txns, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Nil(t, txns)
}

func TestMintParser_Format(t *testing.T) {
	p := &MintParser{}
	assert.Equal(t, "mint", p.Format())
}
