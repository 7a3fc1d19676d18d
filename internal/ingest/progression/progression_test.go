package progression

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/claude/liftlog/internal/csvfix"
	"github.com/claude/liftlog/internal/ingest"
)

const header = "Date,Set Timestamp,Workout Name,Exercise Name,Repetitions,Weight,Unit,RPE,RIR,Is Warmup,Is Dropset,Exercise Type,Exercise Id,Workout Id,Set Comment,Session Comment,Set Order,Session Duration (s)"

func writeExport(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "progression.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("temp dir holds %d files after Load, want 0", len(entries))
	}
}

// TestLoadRepairsExport checks linebreak and comma repair plus temp file cleanup.
func TestLoadRepairsExport(t *testing.T) {
	path := writeExport(t,
		header,
		"2024-01-01,10:00:00,Push,Bench Press,8,80,kg,,,false,false,strength,1,1,felt heavy, go lighter,,0,3600",
		"2024-01-01,10:05:00,Push,Bench Press,8,80,kg,,,false,false,strength,1,1,last set,,1,3600",
		"really",
	)
	tmp := t.TempDir()
	tbl, err := Load(path, Options{TempDir: tmp})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if got := tbl.Get(0, ColSetComment); got != "felt heavy; go lighter" {
		t.Errorf("set comment = %q, want %q", got, "felt heavy; go lighter")
	}
	if got := tbl.Get(1, ColSessionDuration); got != "3600. really" {
		t.Errorf("session duration cell = %q, want %q", got, "3600. really")
	}
	assertEmpty(t, tmp)
}

// TestLoadStrictFailure removes the temp file and surfaces the row number.
func TestLoadStrictFailure(t *testing.T) {
	path := writeExport(t,
		header,
		"2024-01-01,10:00:00,Push,Bench Press,8,80,kg,,,false,false,strength,1,1,a,b,c,0,3600",
	)
	tmp := t.TempDir()
	_, err := Load(path, Options{Policy: csvfix.PolicyStrict, TempDir: tmp})
	var pe *ingest.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ingest.ParseError", err)
	}
	if pe.Row != 1 {
		t.Errorf("Row = %d, want 1", pe.Row)
	}
	if !errors.Is(err, csvfix.ErrTooManySegments) {
		t.Errorf("err = %v, want ErrTooManySegments", err)
	}
	assertEmpty(t, tmp)
}

// TestLoadMissingColumn rejects exports without the exercise column.
func TestLoadMissingColumn(t *testing.T) {
	path := writeExport(t, "Date,Set Timestamp,Repetitions,Weight", "2024-01-01,10:00:00,8,80")
	tmp := t.TempDir()
	_, err := Load(path, Options{TempDir: tmp})
	if !errors.Is(err, ingest.ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
	assertEmpty(t, tmp)
}
