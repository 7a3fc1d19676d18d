package pipeline

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
)

func clock(h, m int) time.Time {
	return time.Date(2024, 3, 4, h, m, 0, 0, time.UTC)
}

func weight(w float64) *float64 { return &w }

func setAt(t time.Time, exercise string, reps int) models.SetRecord {
	return models.SetRecord{Time: t, Source: models.SourceGymBook, ExerciseName: exercise, Repetitions: reps, WeightKg: weight(50)}
}

// TestPostcleanDropsLateEntry covers a day with one set logged hours after the session.
func TestPostcleanDropsLateEntry(t *testing.T) {
	recs := []models.SetRecord{
		setAt(clock(13, 45), "Squat", 5),
		setAt(clock(9, 30), "Squat", 5),
		setAt(clock(9, 15), "Squat", 5),
		setAt(clock(9, 0), "Squat", 5),
	}
	for i := range recs {
		recs[i].SessionDurationSec = int((4*time.Hour + 45*time.Minute).Seconds())
	}
	sets, report := Postclean(recs, DefaultOptions())
	if report.DroppedOutliers != 1 {
		t.Errorf("DroppedOutliers = %d, want 1", report.DroppedOutliers)
	}
	if len(sets) != 3 {
		t.Fatalf("sets = %d, want 3", len(sets))
	}
	if last := sets[len(sets)-1].Time; !last.Equal(clock(9, 30)) {
		t.Errorf("last set at %v, want 09:30", last)
	}
	for _, s := range sets {
		if s.SessionDurationSec != 1800 {
			t.Errorf("SessionDurationSec = %d, want 1800", s.SessionDurationSec)
		}
	}
}

// TestPostcleanSmoothsGap compresses a forgotten-save gap to five minutes.
func TestPostcleanSmoothsGap(t *testing.T) {
	recs := []models.SetRecord{
		setAt(clock(10, 0), "Bench", 5),
		setAt(clock(10, 10), "Bench", 5),
		setAt(clock(12, 10), "Row", 8),
		setAt(clock(12, 20), "Row", 8),
	}
	sets, report := Postclean(recs, DefaultOptions())
	if report.SmoothedGaps != 1 {
		t.Errorf("SmoothedGaps = %d, want 1", report.SmoothedGaps)
	}
	want := []time.Time{clock(10, 0), clock(10, 10), clock(10, 15), clock(10, 25)}
	for i, w := range want {
		if !sets[i].Time.Equal(w) {
			t.Errorf("sets[%d].Time = %v, want %v", i, sets[i].Time, w)
		}
	}
	if sets[0].SessionDurationSec != 1500 {
		t.Errorf("SessionDurationSec = %d, want 1500", sets[0].SessionDurationSec)
	}

	opts := DefaultOptions()
	opts.SmoothGaps = false
	sets, report = Postclean(recs, opts)
	if report.SmoothedGaps != 0 || !sets[2].Time.Equal(clock(12, 10)) {
		t.Errorf("smoothing disabled but set moved to %v", sets[2].Time)
	}
}

// TestPostcleanWeightsAndReps fills missing weights and drops zero-rep sets.
func TestPostcleanWeightsAndReps(t *testing.T) {
	bodyweight := setAt(clock(8, 0), "Pullup", 10)
	bodyweight.WeightKg = nil
	recs := []models.SetRecord{bodyweight, setAt(clock(8, 5), "Pullup", 0)}
	sets, report := Postclean(recs, DefaultOptions())
	if report.ZeroRepSets != 1 || len(sets) != 1 {
		t.Fatalf("ZeroRepSets = %d, sets = %d; want 1, 1", report.ZeroRepSets, len(sets))
	}
	if sets[0].WeightKg != 0 || sets[0].SetComment != "" {
		t.Errorf("set = %+v", sets[0])
	}
}

// TestPostcleanSetOrder renumbers every (day, exercise) group to 1..n.
func TestPostcleanSetOrder(t *testing.T) {
	day2 := func(h, m int) time.Time { return clock(h, m).AddDate(0, 0, 1) }
	recs := []models.SetRecord{
		setAt(clock(9, 0), "Squat", 5),
		setAt(clock(9, 5), "Bench", 5),
		setAt(clock(9, 10), "Squat", 5),
		setAt(clock(9, 10), "Squat", 5),
		setAt(day2(9, 0), "Squat", 5),
	}
	recs[0].SetOrder, recs[2].SetOrder, recs[3].SetOrder = 7, 3, 2

	sets, _ := Postclean(recs, DefaultOptions())
	groups := map[string][]int{}
	for i, s := range sets {
		if i > 0 && s.Time.Before(sets[i-1].Time) {
			t.Errorf("sets not ascending at %d", i)
		}
		k := s.Date().Format("2006-01-02") + "/" + s.ExerciseName
		groups[k] = append(groups[k], s.SetOrder)
	}
	for k, orders := range groups {
		for i, o := range orders {
			if o != i+1 {
				t.Errorf("%s set orders = %v, want 1..%d", k, orders, len(orders))
				break
			}
		}
	}
	if len(groups["2024-03-04/Squat"]) != 3 {
		t.Errorf("day 1 squat sets = %v", groups["2024-03-04/Squat"])
	}
}
