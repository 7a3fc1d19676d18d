package bodyweight

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/claude/liftlog/internal/ingest"
	"github.com/claude/liftlog/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadDaily stamps entries with the default clock time.
func TestLoadDaily(t *testing.T) {
	path := writeFile(t, "daily.csv", "Date;Weight\n2023-05-01;82,4\n2023-05-02;82.1\n")
	recs, err := LoadDaily(path, "")
	if err != nil {
		t.Fatalf("LoadDaily: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	want := time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)
	if !recs[0].Time.Equal(want) {
		t.Errorf("Time = %v, want %v", recs[0].Time, want)
	}
	if recs[0].WeightKg != 82.4 || recs[1].WeightKg != 82.1 {
		t.Errorf("weights = %v, %v", recs[0].WeightKg, recs[1].WeightKg)
	}
	if recs[0].Source != models.SourceDailyLog {
		t.Errorf("Source = %q", recs[0].Source)
	}
}

// TestLoadScaleKeepsMinimumPerDay keeps the lightest reading with its own timestamp.
func TestLoadScaleKeepsMinimumPerDay(t *testing.T) {
	path := writeFile(t, "scale.csv",
		"Time,WEIGHT (kg),BMI\n"+
			"2024-02-01 07:10:00,81.2,24.1\n"+
			"2024-02-01 21:30:00,82.6,24.5\n"+
			"2024-02-01 06:55:00,81.0,24.0\n"+
			"2024-02-02 07:00:00,80.9,24.0\n")
	recs, err := LoadScale(path)
	if err != nil {
		t.Fatalf("LoadScale: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	if recs[0].WeightKg != 81.0 {
		t.Errorf("day 1 weight = %v, want 81.0", recs[0].WeightKg)
	}
	if want := time.Date(2024, 2, 1, 6, 55, 0, 0, time.UTC); !recs[0].Time.Equal(want) {
		t.Errorf("day 1 time = %v, want %v", recs[0].Time, want)
	}
	if recs[1].WeightKg != 80.9 {
		t.Errorf("day 2 weight = %v, want 80.9", recs[1].WeightKg)
	}
}

// TestLoadCombinesSorted merges both sources in time order.
func TestLoadCombinesSorted(t *testing.T) {
	daily := writeFile(t, "daily.csv", "Date;Weight\n2024-02-03;80\n2020-01-01;90\n")
	scale := writeFile(t, "scale.csv", "Time,WEIGHT (kg)\n2024-02-01 07:00:00,81\n")
	recs, err := Load(daily, scale, "08:30:00")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Time.Before(recs[i-1].Time) {
			t.Errorf("records not sorted at %d", i)
		}
	}
	if recs[0].Time.Hour() != 8 || recs[0].Time.Minute() != 30 {
		t.Errorf("daily clock = %v, want 08:30", recs[0].Time)
	}
}

// TestLoadBadWeight fails on weights that are not numbers.
func TestLoadBadWeight(t *testing.T) {
	path := writeFile(t, "daily.csv", "Date;Weight\n2023-05-01;heavy\n")
	_, err := LoadDaily(path, "")
	var pe *ingest.ParseError
	if !errors.As(err, &pe) || pe.Row != 1 {
		t.Errorf("err = %v, want ParseError at row 1", err)
	}
}

// TestLoadDailyRejectsClock validates the default time format.
func TestLoadDailyRejectsClock(t *testing.T) {
	path := writeFile(t, "daily.csv", "Date;Weight\n")
	if _, err := LoadDaily(path, "9am"); err == nil {
		t.Error("LoadDaily with clock 9am succeeded, want error")
	}
}
