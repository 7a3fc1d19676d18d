package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/names"
)

// TestHarmonizeProgression shifts set order to 1-based and keeps missing weights nil.
func TestHarmonizeProgression(t *testing.T) {
	tbl := mustTable(t,
		[]string{"Date", "Set Timestamp", "Workout Name", "Exercise Name", "Repetitions", "Weight", "Set Order", "Session Duration (s)"},
		[]string{"2024-01-01", "10:00:00", "Pull", "Pullups", "8", "", "0", "3600"},
		[]string{"2024-01-01", "10:05:00", "Pull", "Barbell Rows", "8.0", "82.5", "1", "3600"},
	)
	recs, err := HarmonizeProgression(tbl)
	if err != nil {
		t.Fatalf("HarmonizeProgression: %v", err)
	}
	if recs[0].SetOrder != 1 || recs[1].SetOrder != 2 {
		t.Errorf("set orders = %d, %d; want 1, 2", recs[0].SetOrder, recs[1].SetOrder)
	}
	if recs[0].WeightKg != nil {
		t.Errorf("weight = %v, want nil", *recs[0].WeightKg)
	}
	if recs[1].WeightKg == nil || *recs[1].WeightKg != 82.5 {
		t.Errorf("weight = %v, want 82.5", recs[1].WeightKg)
	}
	if want := time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC); !recs[1].Time.Equal(want) {
		t.Errorf("Time = %v, want %v", recs[1].Time, want)
	}
	if recs[0].SessionDurationSec != 3600 || recs[0].Source != models.SourceProgression {
		t.Errorf("rec = %+v", recs[0])
	}
}

// TestHarmonizeProgressionBadWeight is a hard conversion error.
func TestHarmonizeProgressionBadWeight(t *testing.T) {
	tbl := mustTable(t,
		[]string{"Date", "Set Timestamp", "Exercise Name", "Repetitions", "Weight"},
		[]string{"2024-01-01", "10:00:00", "Squat", "5", "heavy"},
	)
	if _, err := HarmonizeProgression(tbl); !errors.Is(err, ErrConversion) {
		t.Errorf("err = %v, want ErrConversion", err)
	}
}

// TestParseNumbersRejectNegative keeps negative weights and counts from being
// read as their absolute value.
func TestParseNumbersRejectNegative(t *testing.T) {
	for _, in := range []string{"-20 kg", "-2,5", " -7.5kg"} {
		if w, ok := parseWeight(in); ok {
			t.Errorf("parseWeight(%q) = %v, ok; want rejected", in, *w)
		}
	}
	if w, ok := parseWeight("12,5 kg"); !ok || *w != 12.5 {
		t.Errorf("parseWeight(12,5 kg) = %v, %v; want 12.5", w, ok)
	}
	if n, ok := parseCount("-5 Wdh."); ok {
		t.Errorf("parseCount(-5 Wdh.) = %d, ok; want rejected", n)
	}
	if n, ok := parseCount("10 Wdh."); !ok || n != 10 {
		t.Errorf("parseCount(10 Wdh.) = %d, %v; want 10", n, ok)
	}

	tbl := mustTable(t,
		[]string{"Datum", "Zeit", "Übung", "Wiederholungen / Zeit", "Gewicht / Strecke"},
		[]string{"01.02.2024", "18:00", "Klimmzüge", "8 Wdh.", "-20 kg"},
	)
	if _, err := HarmonizeGymBook(tbl); !errors.Is(err, ErrConversion) {
		t.Errorf("assisted weight err = %v, want ErrConversion", err)
	}
}

// TestHarmonizeGymBook extracts numbers from text and derives session metadata.
func TestHarmonizeGymBook(t *testing.T) {
	tbl := mustTable(t,
		[]string{"Datum", "Zeit", "Training", "Übung", "Wiederholungen / Zeit", "Gewicht / Strecke", "Notizen"},
		[]string{"01.02.2024", "18:30", "Beine", "Kniebeugen", "8 Wdh.", "2,5 kg", ""},
		[]string{"01.02.2024", "18:00", "Beine", "Kniebeugen", "10 Wdh.", "100,0 kg", "warm"},
		[]string{"01.02.2024", "18:45", "Beine", "Plank", "1:30", "", ""},
	)
	recs, err := HarmonizeGymBook(tbl)
	if err != nil {
		t.Fatalf("HarmonizeGymBook: %v", err)
	}
	if recs[0].Repetitions != 8 || *recs[0].WeightKg != 2.5 {
		t.Errorf("row 1 = %d reps, %v kg", recs[0].Repetitions, *recs[0].WeightKg)
	}
	if recs[2].Repetitions != 90 {
		t.Errorf("Plank reps = %d, want 90", recs[2].Repetitions)
	}
	if recs[0].SetOrder != 2 || recs[1].SetOrder != 1 {
		t.Errorf("set orders = %d, %d; want 2, 1", recs[0].SetOrder, recs[1].SetOrder)
	}
	for _, r := range recs {
		if r.SessionDurationSec != 45*60 {
			t.Errorf("SessionDurationSec = %d, want 2700", r.SessionDurationSec)
		}
	}
}

// TestHarmonizeGymBookBadDate rejects dates in an unknown format.
func TestHarmonizeGymBookBadDate(t *testing.T) {
	tbl := mustTable(t,
		[]string{"Datum", "Zeit", "Übung", "Wiederholungen / Zeit", "Gewicht / Strecke"},
		[]string{"Feb 1", "18:30", "Kniebeugen", "8", "100"},
	)
	if _, err := HarmonizeGymBook(tbl); !errors.Is(err, ErrConversion) {
		t.Errorf("err = %v, want ErrConversion", err)
	}
}

// TestUnionSortsDescending merges both sources newest first.
func TestUnionSortsDescending(t *testing.T) {
	at := func(h int) models.SetRecord { return models.SetRecord{Time: time.Date(2024, 1, 1, h, 0, 0, 0, time.UTC)} }
	got := Union([]models.SetRecord{at(8), at(12)}, []models.SetRecord{at(10)})
	for i, want := range []int{12, 10, 8} {
		if got[i].Time.Hour() != want {
			t.Errorf("got[%d] = %v, want hour %d", i, got[i].Time, want)
		}
	}
}

// TestReconcileNamesIdempotent applies name reconciliation twice.
func TestReconcileNamesIdempotent(t *testing.T) {
	recs := []models.SetRecord{
		{ExerciseName: "Barbell Rows"}, {ExerciseName: "Calf Raises"}, {ExerciseName: "Crunches"},
		{ExerciseName: "Ab Wheel"}, {ExerciseName: "pistol squat"},
	}
	r := names.NewReconciler()
	once := ReconcileNames(recs, r)
	twice := ReconcileNames(once, r)
	for i := range once {
		if once[i].ExerciseName != twice[i].ExerciseName {
			t.Errorf("%q reconciled to %q, then %q", recs[i].ExerciseName, once[i].ExerciseName, twice[i].ExerciseName)
		}
	}
	if recs[0].ExerciseName != "Barbell Rows" {
		t.Error("input mutated")
	}
	if once[0].ExerciseName != "Barbell Row" || once[1].ExerciseName != "Calf Raise" {
		t.Errorf("singularized = %q, %q", once[0].ExerciseName, once[1].ExerciseName)
	}
}
