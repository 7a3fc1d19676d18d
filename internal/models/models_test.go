package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

// TestWeekdayOf verifies the Monday-first mapping, including the Sunday wrap.
func TestWeekdayOf(t *testing.T) {
	cases := []struct {
		date string
		want Weekday
	}{
		{"2024-01-01", Monday},
		{"2024-01-03", Wednesday},
		{"2024-01-06", Saturday},
		{"2024-01-07", Sunday},
	}
	for _, tc := range cases {
		d, _ := time.Parse("2006-01-02", tc.date)
		if got := WeekdayOf(d); got != tc.want {
			t.Errorf("WeekdayOf(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

// TestWeekdayOrder verifies the categories sort Monday through Sunday.
func TestWeekdayOrder(t *testing.T) {
	days := Weekdays()
	if len(days) != 7 {
		t.Fatalf("weekdays = %d, want 7", len(days))
	}
	for i := 1; i < len(days); i++ {
		if days[i] <= days[i-1] {
			t.Errorf("weekday %v not after %v", days[i], days[i-1])
		}
	}
	if days[0].String() != "Monday" || days[6].String() != "Sunday" {
		t.Errorf("order = %v..%v, want Monday..Sunday", days[0], days[6])
	}
}

// TestWeekdayJSON verifies weekdays serialize as their names.
func TestWeekdayJSON(t *testing.T) {
	data, err := json.Marshal(Friday)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Friday"` {
		t.Errorf("json = %s, want \"Friday\"", data)
	}

	var w Weekday
	if err := json.Unmarshal([]byte(`"sunday"`), &w); err != nil || w != Sunday {
		t.Errorf("unmarshal sunday = %v, %v", w, err)
	}
	if err := json.Unmarshal([]byte(`"Caturday"`), &w); err == nil {
		t.Error("unmarshal Caturday succeeded, want error")
	}
}

// TestOneRepMax verifies the Brzycki formula against hand-computed values.
func TestOneRepMax(t *testing.T) {
	if got := OneRepMax(100, 1); math.Abs(got-100) > 1e-9 {
		t.Errorf("OneRepMax(100, 1) = %f, want 100", got)
	}
	want := 100 / (1.0278 - 0.0278*5)
	if got := OneRepMax(100, 5); math.Abs(got-want) > 1e-9 {
		t.Errorf("OneRepMax(100, 5) = %f, want %f", got, want)
	}
	if got := OneRepMax(0, 10); got != 0 {
		t.Errorf("OneRepMax(0, 10) = %f, want 0", got)
	}
}

// TestRecordMatchesColumns verifies a rendered row lines up with the header.
func TestRecordMatchesColumns(t *testing.T) {
	s := WorkoutSet{
		Time:         time.Date(2024, 1, 2, 18, 30, 0, 0, time.UTC),
		ExerciseName: "Barbell Squat",
		Repetitions:  5,
		WeightKg:     102.5,
		Weekday:      Tuesday,
	}
	rec := s.Record()
	if len(rec) != len(SetColumns) {
		t.Fatalf("record fields = %d, want %d", len(rec), len(SetColumns))
	}
	if rec[0] != "2024-01-02 18:30:00" {
		t.Errorf("time = %q", rec[0])
	}
	if rec[6] != "102.5" {
		t.Errorf("weight = %q, want 102.5", rec[6])
	}
	if rec[10] != "Tuesday" {
		t.Errorf("weekday = %q, want Tuesday", rec[10])
	}
}

// TestBodyweightRecord verifies a bodyweight row lines up with its header.
func TestBodyweightRecord(t *testing.T) {
	b := BodyweightRecord{Time: time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC), WeightKg: 80.2, Source: SourceScale}
	rec := b.Record()
	if len(rec) != len(BodyweightColumns) {
		t.Fatalf("record fields = %d, want %d", len(rec), len(BodyweightColumns))
	}
	if rec[1] != "80.2" || rec[2] != "scale" {
		t.Errorf("record = %q", rec)
	}
}
