// Package export reads and writes flattened statement transactions as CSV.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ofxparse/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "date,account,type,description,memo,amount,currency,reference,check_number"

const (
	numFields    = 9
	dateFormat   = "2006-01-02"
	colDate      = 0
	colAccount   = 1
	colType      = 2
	colDesc      = 3
	colMemo      = 4
	colAmount    = 5
	colCurrency  = 6
	colReference = 7
	colCheckNum  = 8
)

// ReadTransactions reads all rows from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes txns to w, header first.
func WriteTransactions(w io.Writer, txns []model.BankTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendTransactions writes txns to w without a header.
func AppendTransactions(w io.Writer, txns []model.BankTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendFile appends txns to the CSV at path, creating it (and its
// directory) with a header if needed.
func AppendFile(path string, txns []model.BankTransaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	_, err := os.Stat(path)
	needsHeader := errors.Is(err, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	if needsHeader {
		err = WriteTransactions(f, txns)
	} else {
		err = AppendTransactions(f, txns)
	}
	if err != nil {
		return err
	}
	return f.Close()
}

// ReadFile returns every row of the CSV at path. A missing file has none.
func ReadFile(path string) ([]model.BankTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	return ReadTransactions(f)
}

// MarshalTransaction converts a BankTransaction to a CSV row.
func MarshalTransaction(txn model.BankTransaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colAccount] = txn.Account
	row[colType] = txn.Type
	row[colDesc] = txn.Description
	row[colMemo] = txn.Memo
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colCurrency] = txn.Currency
	row[colReference] = txn.Reference
	row[colCheckNum] = txn.CheckNumber
	return row
}

// UnmarshalTransaction converts a CSV row to a BankTransaction.
func UnmarshalTransaction(record []string) (model.BankTransaction, error) {
	if len(record) != numFields {
		return model.BankTransaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.BankTransaction{
		Date:        date,
		Account:     record[colAccount],
		Type:        record[colType],
		Description: record[colDesc],
		Memo:        record[colMemo],
		Amount:      amount,
		Currency:    record[colCurrency],
		Reference:   record[colReference],
		CheckNumber: record[colCheckNum],
	}, nil
}
