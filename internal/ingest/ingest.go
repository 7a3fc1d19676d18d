// Package ingest holds what the exporter-specific loaders share: input file
// checks, structured parse errors and delimiter-aware CSV reading into raw
// tables.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/claude/liftlog/internal/table"
)

var (
	// ErrMissingFile is returned when a configured input file does not exist.
	ErrMissingFile = errors.New("input file missing")
	// ErrParse marks structurally broken exports.
	ErrParse = errors.New("malformed export")
)

// ParseError locates a structural problem in an export. Row is 1-based and
// counts data rows only; 0 means the header.
type ParseError struct {
	Path string
	Row  int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("%s: header: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: row %d: %v", e.Path, e.Row, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// CheckFiles verifies every path exists and is a regular file. The first
// failure is returned wrapping ErrMissingFile.
func CheckFiles(paths ...string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMissingFile, p)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrMissingFile, p)
		}
	}
	return nil
}

// ReadTable parses delimited CSV from r into a raw table. The first record is
// the header; rows wider than the header are a ParseError.
func ReadTable(r io.Reader, path string, delimiter rune) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &ParseError{Path: path, Row: pe.Line - 1, Err: pe.Err}
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, &ParseError{Path: path, Err: errors.New("empty file")}
	}

	header := records[0]
	for i, row := range records[1:] {
		if len(row) > len(header) {
			return nil, &ParseError{
				Path: path,
				Row:  i + 1,
				Err:  fmt.Errorf("%d fields, header has %d", len(row), len(header)),
			}
		}
	}
	t, err := table.New(header, records[1:])
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return t, nil
}

// RequireColumns returns a header ParseError naming the first absent column.
func RequireColumns(t *table.Table, path string, cols ...string) error {
	for _, c := range cols {
		if !t.Has(c) {
			return &ParseError{Path: path, Err: fmt.Errorf("column %q missing", c)}
		}
	}
	return nil
}
