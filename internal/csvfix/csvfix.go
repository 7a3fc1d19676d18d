// Package csvfix repairs Progression CSV exports before they reach a CSV
// parser. The exporter writes line breaks inside comments as new rows and
// never quotes commas typed into comment fields.
package csvfix

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// recordStartRe matches the leading date of a genuine data row.
var recordStartRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// ErrTooManySegments reports comment fragments that could not be folded back
// into the expected comment columns.
var ErrTooManySegments = errors.New("too many comment segments")

// CommentPolicy decides what happens when comment fragments cannot be folded
// back into the comment columns.
type CommentPolicy string

const (
	// PolicyMerge joins every segment into the first comment column.
	PolicyMerge CommentPolicy = "merge"
	// PolicyStrict rejects the row with a ParseError.
	PolicyStrict CommentPolicy = "strict"
)

// ParsePolicy validates a policy name. Empty selects PolicyMerge.
func ParsePolicy(s string) (CommentPolicy, error) {
	switch CommentPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyMerge:
		return PolicyMerge, nil
	case PolicyStrict:
		return PolicyStrict, nil
	}
	return "", fmt.Errorf("unknown comment policy %q (want %q or %q)", s, PolicyMerge, PolicyStrict)
}

// Fallback comment span used when the header does not name the comment columns.
const (
	defaultLeadingFields  = 14
	defaultTrailingFields = 2
)

// Comment column names in the Progression header.
const (
	firstCommentColumn = "Set Comment"
	lastCommentColumn  = "Session Comment"
)

// Options controls the repair passes.
type Options struct {
	Policy CommentPolicy
}

// ParseError identifies a data row the repair passes could not fix.
type ParseError struct {
	Row  int // 1-based data row, header excluded
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %v: %q", e.Row, e.Err, e.Line)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Repair reads a Progression export and returns the header followed by data
// rows, every row carrying exactly len(header) fields.
func Repair(r io.Reader, opts Options) ([][]string, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]
	data := FixLinebreaks(rows[1:])
	data, err = FixDelimiters(header, data, opts)
	if err != nil {
		return nil, err
	}
	return append([][]string{header}, data...), nil
}

// ReadRows splits input into physical lines and parses each one on its own.
// Unlike csv.Reader on the whole stream, empty lines survive as empty rows,
// which the linebreak pass relies on.
func ReadRows(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]string
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			rows = append(rows, nil)
			continue
		}
		fields, err := splitLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	// Drop trailing blank lines; there is no row left for them to join.
	for len(rows) > 0 && rows[len(rows)-1] == nil {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

func splitLine(line string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	fields, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	return fields, err
}

// FixLinebreaks folds continuation rows back into the record they belong to.
// A continuation's first cell is appended to the previous record's last field
// with ". ", its other cells become new trailing fields. An empty row marks
// the following row as a continuation.
func FixLinebreaks(rows [][]string) [][]string {
	fixed := make([][]string, 0, len(rows))
	forceJoin := false
	for _, row := range rows {
		if len(row) == 0 {
			forceJoin = true
			continue
		}
		continuation := forceJoin || !recordStartRe.MatchString(row[0])
		forceJoin = false
		if !continuation || len(fixed) == 0 {
			fixed = append(fixed, cloneRow(row))
			continue
		}
		fixed[len(fixed)-1] = joinContinuation(fixed[len(fixed)-1], row)
	}
	return fixed
}

func joinContinuation(prev, cont []string) []string {
	out := make([]string, 0, len(prev)+len(cont)-1)
	if len(prev) == 0 {
		return append(out, cont...)
	}
	out = append(out, prev[:len(prev)-1]...)
	out = append(out, prev[len(prev)-1]+". "+cont[0])
	return append(out, cont[1:]...)
}

// FixDelimiters rebuilds rows that carry more fields than the header because
// a comment contained the delimiter.
func FixDelimiters(header []string, rows [][]string, opts Options) ([][]string, error) {
	lead, trail := commentSpan(header)
	want := len(header) - lead - trail
	fixed := make([][]string, 0, len(rows))
	for i, row := range rows {
		if len(row) <= len(header) || want <= 0 || len(row) < lead+trail {
			fixed = append(fixed, row)
			continue
		}
		comments, err := foldComments(row[lead:len(row)-trail], want, opts.Policy)
		if err != nil {
			return nil, &ParseError{Row: i + 1, Line: strings.Join(row, ","), Err: err}
		}
		out := make([]string, 0, len(header))
		out = append(out, row[:lead]...)
		out = append(out, comments...)
		out = append(out, row[len(row)-trail:]...)
		fixed = append(fixed, out)
	}
	return fixed, nil
}

// commentSpan returns how many fields precede and follow the comment columns.
func commentSpan(header []string) (lead, trail int) {
	first, last := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case firstCommentColumn:
			first = i
		case lastCommentColumn:
			last = i
		}
	}
	if first >= 0 && last >= first {
		return first, len(header) - last - 1
	}
	return defaultLeadingFields, defaultTrailingFields
}

// foldComments reassembles comment fragments into want columns.
func foldComments(parts []string, want int, policy CommentPolicy) ([]string, error) {
	if len(parts) == 0 {
		return make([]string, want), nil
	}
	segments := []string{parts[0]}
	for _, part := range parts[1:] {
		last := segments[len(segments)-1]
		switch {
		case strings.HasPrefix(part, " "):
			segments[len(segments)-1] = last + ";" + part
		case startsWithDigit(part) && endsWithDigit(last):
			segments[len(segments)-1] = last + "." + part
		default:
			segments = append(segments, part)
		}
	}

	if len(segments) > want {
		if policy == PolicyStrict {
			return nil, fmt.Errorf("%w: %d segments for %d comment columns", ErrTooManySegments, len(segments), want)
		}
		merged := make([]string, want)
		merged[0] = strings.Join(segments, " ")
		return merged, nil
	}
	for len(segments) < want {
		segments = append(segments, "")
	}
	return segments, nil
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func endsWithDigit(s string) bool {
	return s != "" && s[len(s)-1] >= '0' && s[len(s)-1] <= '9'
}

func cloneRow(row []string) []string {
	return append([]string(nil), row...)
}
