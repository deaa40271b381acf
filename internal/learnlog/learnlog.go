// Package learnlog keeps an append-only audit trail of keyword
// learning events, so category-table growth stays explainable.
package learnlog

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
)

// Entry is one row in the learning log.
type Entry struct {
	Timestamp   time.Time
	CategoryID  string
	Description string
	Keywords    []string // keywords added by this event
}

// Header is the CSV header for learning-log.csv.
const Header = "timestamp,category_id,description,keywords"

const (
	numFields      = 4
	logDir         = "logs"
	logFile        = "logs/learning-log.csv"
	colTimestamp   = 0
	colCategoryID  = 1
	colDescription = 2
	colKeywords    = 3
)

// MarshalEntry converts an Entry to a CSV row. Keywords join with
// semicolons, same convention as tags elsewhere in the data files.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colCategoryID] = e.CategoryID
	row[colDescription] = e.Description
	row[colKeywords] = strings.Join(e.Keywords, ";")
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

	var keywords []string
	if record[colKeywords] != "" {
		keywords = strings.Split(record[colKeywords], ";")
	}

	return Entry{
		Timestamp:   ts,
		CategoryID:  record[colCategoryID],
		Description: record[colDescription],
		Keywords:    keywords,
	}, nil
}

// Append writes entries to <dataDir>/logs/learning-log.csv, creating
// the file and header if needed.
func Append(dataDir string, entries []Entry) error {
	dir := filepath.Join(dataDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(dataDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening learning log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

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
	return cw.Error()
}

// Read returns all entries from <dataDir>/logs/learning-log.csv. A
// missing log is an empty log.
func Read(dataDir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dataDir, logFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening learning log: %w", err)
	}
	defer f.Close()

	return ReadEntries(f)
}

// ReadEntries reads log entries from a reader, skipping the header.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading learning log: %w", err)
	}
	if len(records) == 0 {
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
