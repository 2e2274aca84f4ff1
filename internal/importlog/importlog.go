// Package importlog keeps an append-only CSV record of processed statement
// files.
package importlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileName is the log file, relative to the repository root.
const FileName = "logs/import-log.csv"

// Entry is one processed file.
type Entry struct {
	Timestamp    time.Time
	BatchID      string
	File         string
	Format       string
	Accounts     int
	Transactions int
	Duplicates   int
	Status       Status
	Error        string
}

// Status is the outcome of importing one file.
type Status string

const (
	StatusImported Status = "imported"
	StatusFailed   Status = "failed"
	StatusDryRun   Status = "dry_run"
)

// Header is the CSV header for import-log.csv.
const Header = "timestamp,batch_id,file,format,accounts,transactions,duplicates,status,error"

const (
	numFields    = 9
	colTimestamp = 0
	colBatchID   = 1
	colFile      = 2
	colFormat    = 3
	colAccounts  = 4
	colTxns      = 5
	colDupes     = 6
	colStatus    = 7
	colError     = 8
)

// NewBatchID returns an identifier shared by every entry of one import run.
func NewBatchID() string {
	return uuid.NewString()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colBatchID] = e.BatchID
	row[colFile] = e.File
	row[colFormat] = e.Format
	row[colAccounts] = strconv.Itoa(e.Accounts)
	row[colTxns] = strconv.Itoa(e.Transactions)
	row[colDupes] = strconv.Itoa(e.Duplicates)
	row[colStatus] = string(e.Status)
	row[colError] = e.Error
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	if _, err := uuid.Parse(record[colBatchID]); err != nil {
		return Entry{}, fmt.Errorf("parsing batch_id %q: %w", record[colBatchID], err)
	}

	accounts, err := strconv.Atoi(record[colAccounts])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing accounts %q: %w", record[colAccounts], err)
	}

	txns, err := strconv.Atoi(record[colTxns])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing transactions %q: %w", record[colTxns], err)
	}

	dupes, err := strconv.Atoi(record[colDupes])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing duplicates %q: %w", record[colDupes], err)
	}

	return Entry{
		Timestamp:    ts,
		BatchID:      record[colBatchID],
		File:         record[colFile],
		Format:       record[colFormat],
		Accounts:     accounts,
		Transactions: txns,
		Duplicates:   dupes,
		Status:       Status(record[colStatus]),
		Error:        record[colError],
	}, nil
}

// Append writes entries to <repoRoot>/logs/import-log.csv, creating the file and header if needed.
func Append(repoRoot string, entries []Entry) error {
	path := filepath.Join(repoRoot, FileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	_, err := os.Stat(path)
	needsHeader := errors.Is(err, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <repoRoot>/logs/import-log.csv.
// Returns an empty slice if the file does not exist.
func Read(repoRoot string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(repoRoot, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
