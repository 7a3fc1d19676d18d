package pipeline

import (
	"slices"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// PostcleanReport counts the rows and gaps the post-clean pass repaired.
type PostcleanReport struct {
	ZeroRepSets     int
	DroppedOutliers int
	SmoothedGaps    int
}

// Postclean finalizes set records: missing weights become 0, sets without
// repetitions are dropped, stray late entries and forgotten-save gaps are
// repaired, and set order is renumbered 1..n per day and exercise. The
// result is sorted oldest first.
func Postclean(recs []models.SetRecord, opts Options) ([]models.WorkoutSet, PostcleanReport) {
	var report PostcleanReport

	sorted := slices.Clone(recs)
	slices.SortStableFunc(sorted, compareSets)

	sets := make([]models.WorkoutSet, 0, len(sorted))
	for _, r := range sorted {
		if r.Repetitions < 1 {
			report.ZeroRepSets++
			continue
		}
		var weight float64
		if r.WeightKg != nil {
			weight = *r.WeightKg
		}
		sets = append(sets, models.WorkoutSet{
			Time:               r.Time,
			Source:             r.Source,
			WorkoutName:        r.WorkoutName,
			ExerciseName:       r.ExerciseName,
			SetOrder:           r.SetOrder,
			Repetitions:        r.Repetitions,
			WeightKg:           weight,
			SetComment:         r.SetComment,
			SessionComment:     r.SessionComment,
			SessionDurationSec: r.SessionDurationSec,
		})
	}

	sets, report.DroppedOutliers = dropLateEntries(sets, opts.SessionLimit, opts.OutlierGap)
	if opts.SmoothGaps {
		report.SmoothedGaps = smoothGaps(sets, opts.SmoothMin, opts.SmoothMax, opts.SmoothTarget)
	}
	renumberSets(sets)
	return sets, report
}

// dayRanges splits a time-sorted slice into [start, end) ranges of one
// calendar day each.
func dayRanges(sets []models.WorkoutSet) [][2]int {
	var out [][2]int
	start := 0
	for i := 1; i <= len(sets); i++ {
		if i == len(sets) || !models.CalendarDay(sets[i].Time).Equal(models.CalendarDay(sets[start].Time)) {
			out = append(out, [2]int{start, i})
			start = i
		}
	}
	return out
}

func setDayDuration(day []models.WorkoutSet) {
	if len(day) == 0 {
		return
	}
	d := int(day[len(day)-1].Time.Sub(day[0].Time).Seconds())
	for i := range day {
		day[i].SessionDurationSec = d
	}
}

// dropLateEntries inspects every day whose session ran longer than limit.
// The later set of the largest gap above minGap is removed and the day's
// duration recomputed. At most one set per day is dropped.
func dropLateEntries(sets []models.WorkoutSet, limit, minGap time.Duration) ([]models.WorkoutSet, int) {
	if len(sets) == 0 {
		return sets, 0
	}
	out := make([]models.WorkoutSet, 0, len(sets))
	dropped := 0
	for _, r := range dayRanges(sets) {
		day := slices.Clone(sets[r[0]:r[1]])
		if sessionLength(day) > limit {
			largest, at := time.Duration(0), -1
			for i := 1; i < len(day); i++ {
				if gap := day[i].Time.Sub(day[i-1].Time); gap > minGap && gap > largest {
					largest, at = gap, i
				}
			}
			if at >= 0 {
				day = slices.Delete(day, at, at+1)
				dropped++
				setDayDuration(day)
			}
		}
		out = append(out, day...)
	}
	return out, dropped
}

// sessionLength is the longer of the recorded session duration and the
// span of the day's sets.
func sessionLength(day []models.WorkoutSet) time.Duration {
	span := day[len(day)-1].Time.Sub(day[0].Time)
	for _, s := range day {
		if d := time.Duration(s.SessionDurationSec) * time.Second; d > span {
			span = d
		}
	}
	return span
}

// smoothGaps compresses same-day gaps strictly between lo and hi to target
// by moving every later set of that day back. Returns the number of gaps
// compressed.
func smoothGaps(sets []models.WorkoutSet, lo, hi, target time.Duration) int {
	smoothed := 0
	for _, r := range dayRanges(sets) {
		day := sets[r[0]:r[1]]
		var shift time.Duration
		changed := false
		prev := day[0].Time
		for i := 1; i < len(day); i++ {
			orig := day[i].Time
			if gap := orig.Sub(prev); gap > lo && gap < hi {
				shift += gap - target
				smoothed++
				changed = true
			}
			prev = orig
			day[i].Time = orig.Add(-shift)
		}
		if changed {
			setDayDuration(day)
		}
	}
	return smoothed
}

// renumberSets assigns set order 1..n per calendar day and exercise in the
// slice's order.
func renumberSets(sets []models.WorkoutSet) {
	counts := make(map[setKey]int)
	for i := range sets {
		k := setKey{day: models.CalendarDay(sets[i].Time), exercise: sets[i].ExerciseName}
		counts[k]++
		sets[i].SetOrder = counts[k]
	}
}
