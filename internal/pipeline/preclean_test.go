package pipeline

import (
	"slices"
	"testing"

	"github.com/claude/liftlog/internal/table"
)

func mustTable(t *testing.T, header []string, rows ...[]string) *table.Table {
	t.Helper()
	tbl, err := table.New(header, rows)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return tbl
}

// TestPrecleanProgression fills reps from set duration and drops redundant columns.
func TestPrecleanProgression(t *testing.T) {
	tbl := mustTable(t,
		[]string{"Date", "Set Timestamp", "Exercise Name", "Repetitions", "Weight", "Unit", "Set Duration (s)", "Time", "Set Comment"},
		[]string{"2024-01-01", "10:00:00", "Plank", "", "", "kg", "60", "x", "a"},
		[]string{"2024-01-01", "10:05:00", "Squat", "5", "100", "kg", "", "y", "b"},
	)
	out, report := PrecleanProgression(tbl)
	if got := out.Get(0, "Repetitions"); got != "60" {
		t.Errorf("Plank reps = %q, want 60", got)
	}
	want := []string{"Unit", "Set Duration (s)", "Time"}
	if !slices.Equal(report.Dropped, want) {
		t.Errorf("Dropped = %q, want %q", report.Dropped, want)
	}
	if !out.Has("Date") || !out.Has("Weight") {
		t.Errorf("protected column dropped: %q", out.Header)
	}
	if out.Len() != 2 {
		t.Errorf("Len() = %d, want 2", out.Len())
	}
}

// TestPrecleanGymBook removes skipped sets and denied columns.
func TestPrecleanGymBook(t *testing.T) {
	tbl := mustTable(t,
		[]string{"Datum", "Zeit", "Training", "Übung", "Wiederholungen / Zeit", "Gewicht / Strecke", "Ausgelassen", "Bereich", "Muskelgruppen (Primäre)", "Notizen"},
		[]string{"01.02.2024", "18:00", "Beine", "Kniebeugen", "8", "100 kg", "Nein", "Beine", "Quads", "a"},
		[]string{"01.02.2024", "18:05", "Beine", "Kniebeugen", "8", "100 kg", "Ja", "Beine", "Quads", "b"},
		[]string{"01.02.2024", "18:10", "Beine", "Beinpresse", "10", "150 kg", "Nein", "Rumpf", "Quads", "c"},
	)
	out, report := PrecleanGymBook(tbl)
	if report.Skipped != 1 || out.Len() != 2 {
		t.Errorf("Skipped = %d, Len() = %d; want 1, 2", report.Skipped, out.Len())
	}
	for _, col := range []string{"Ausgelassen", "Bereich", "Muskelgruppen (Primäre)"} {
		if out.Has(col) {
			t.Errorf("column %q kept", col)
		}
	}
	for _, col := range []string{"Datum", "Training", "Notizen"} {
		if !out.Has(col) {
			t.Errorf("column %q dropped", col)
		}
	}
}
