package gymbook

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gymbook.csv")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadGerman reads a UTF-8 export with BOM and separator hint.
func TestLoadGerman(t *testing.T) {
	data := "\ufeffsep=;\n" +
		"Datum;Zeit;Training;Übung;Wiederholungen / Zeit;Gewicht / Strecke;Notizen;Ausgelassen\n" +
		"01.02.2024;18:30;Beine;Kniebeugen;8 Wdh.;100,0 kg;schwer;Nein\n"
	tbl, err := Load(writeFile(t, []byte(data)), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}
	if got := tbl.Get(0, ColExercise); got != "Kniebeugen" {
		t.Errorf("Übung = %q, want Kniebeugen", got)
	}
	if tbl.Header[0] != ColDate {
		t.Errorf("Header[0] = %q, want %q", tbl.Header[0], ColDate)
	}
}

// TestLoadEnglishWindows1252 translates English headers and decodes cp1252.
func TestLoadEnglishWindows1252(t *testing.T) {
	text := "Date;Time;Workout;Exercise;Reps / Time;Weight / Distance;Notes;Skipped\n" +
		"01.02.2024;18:30;Legs;Squats;8 reps;100,0 kg;café;No\n"
	encoded, err := charmap.Windows1252.NewEncoder().String(text)
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := Load(writeFile(t, []byte(encoded)), Options{Encoding: EncodingWindows1252})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, col := range []string{ColDate, ColTime, ColWorkout, ColExercise, ColReps, ColWeight, ColNotes, ColSkipped} {
		if !tbl.Has(col) {
			t.Errorf("column %q missing after translation; header = %q", col, tbl.Header)
		}
	}
	if got := tbl.Get(0, ColNotes); got != "café" {
		t.Errorf("Notizen = %q, want café", got)
	}
}

// TestLoadUnknownEncoding rejects unsupported charsets.
func TestLoadUnknownEncoding(t *testing.T) {
	if _, err := Load(writeFile(t, []byte("x")), Options{Encoding: "ebcdic"}); err == nil {
		t.Error("Load with ebcdic succeeded, want error")
	}
}

// TestNormalizeHeader maps English and German names and leaves others alone.
func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Weight / Distance", ColWeight, true},
		{" skipped ", ColSkipped, true},
		{"Übung", ColExercise, true},
		{"Calories", "Calories", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeHeader(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeHeader(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
	if !IsSkipped("Ja") || !IsSkipped("yes") || IsSkipped("Nein") {
		t.Error("IsSkipped misclassified a marker")
	}
}
