// Package progression loads CSV exports of the Progression Android app.
package progression

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/claude/liftlog/internal/csvfix"
	"github.com/claude/liftlog/internal/ingest"
	"github.com/claude/liftlog/internal/table"
)

// Export column names.
const (
	ColDate            = "Date"
	ColSetTimestamp    = "Set Timestamp"
	ColWorkoutName     = "Workout Name"
	ColExerciseName    = "Exercise Name"
	ColRepetitions     = "Repetitions"
	ColWeight          = "Weight"
	ColSetComment      = "Set Comment"
	ColSessionComment  = "Session Comment"
	ColSetOrder        = "Set Order"
	ColSessionDuration = "Session Duration (s)"
	ColSetDuration     = "Set Duration (s)"
	ColTime            = "Time"
)

// TimeLayout is the layout of Date + " " + Set Timestamp.
const TimeLayout = "2006-01-02 15:04:05"

// Required lists the columns the harmonizer reads.
var Required = []string{ColDate, ColSetTimestamp, ColExerciseName, ColRepetitions, ColWeight}

// Options controls loading.
type Options struct {
	Policy csvfix.CommentPolicy
	// TempDir holds the repaired intermediate file. Empty uses os.TempDir.
	TempDir string
}

// Load repairs the export at path, writes the repaired CSV to a temporary
// file, parses that file and removes it again.
func Load(path string, opts Options) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening progression export: %w", err)
	}
	rows, err := csvfix.Repair(f, csvfix.Options{Policy: opts.Policy})
	f.Close()
	if err != nil {
		var pe *csvfix.ParseError
		if errors.As(err, &pe) {
			return nil, &ingest.ParseError{Path: path, Row: pe.Row, Err: err}
		}
		return nil, fmt.Errorf("repairing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, &ingest.ParseError{Path: path, Err: errors.New("empty file")}
	}

	tmp, err := os.CreateTemp(opts.TempDir, "progression-*.csv")
	if err != nil {
		return nil, fmt.Errorf("creating repaired copy: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing repaired copy: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing repaired copy: %w", err)
	}

	repaired, err := os.Open(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("reopening repaired copy: %w", err)
	}
	defer repaired.Close()

	t, err := ingest.ReadTable(repaired, path, ',')
	if err != nil {
		return nil, err
	}
	if err := ingest.RequireColumns(t, path, Required...); err != nil {
		return nil, err
	}
	return t, nil
}
