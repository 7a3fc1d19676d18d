package pipeline

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/ingest/gymbook"
	"github.com/claude/liftlog/internal/ingest/progression"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/names"
	"github.com/claude/liftlog/internal/table"
)

// ErrConversion marks a cell whose text does not hold the expected number or
// timestamp.
var ErrConversion = errors.New("conversion failed")

var (
	repsRe     = regexp.MustCompile(`-?\d+`)
	weightRe   = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)
	durationRe = regexp.MustCompile(`(\d+):(\d{2})`)
)

func conversionError(source string, row int, column, value string) error {
	return fmt.Errorf("%w: %s row %d, %s = %q", ErrConversion, source, row, column, value)
}

// parseCount extracts the first integer from s. Empty cells count as 0;
// negative counts are rejected.
func parseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	m := repsRe.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseWeight extracts a decimal-comma or decimal-point number from s.
// Empty cells are missing weights. Negative weights (assistance entered as
// "-20 kg") are rejected rather than read as load.
func parseWeight(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	m := weightRe.FindString(s)
	if m == "" {
		return nil, false
	}
	w, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil || w < 0 {
		return nil, false
	}
	return &w, true
}

// parseGymBookReps accepts "12 Wdh." style counts and m:ss durations for
// timed exercises, which become seconds.
func parseGymBookReps(s string) (int, bool) {
	if m := durationRe.FindStringSubmatch(s); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		return minutes*60 + seconds, true
	}
	return parseCount(s)
}

func parseTime(value string, layouts ...string) (time.Time, bool) {
	value = strings.Join(strings.Fields(value), " ")
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HarmonizeProgression converts a pre-cleaned Progression table into set
// records with 1-based set order.
func HarmonizeProgression(t *table.Table) ([]models.SetRecord, error) {
	const src = models.SourceProgression
	out := make([]models.SetRecord, 0, t.Len())
	hasOrder := t.Has(progression.ColSetOrder)
	hasDuration := t.Has(progression.ColSessionDuration)

	for i := range t.Rows {
		row := i + 1
		stamp := t.Get(i, progression.ColDate) + " " + t.Get(i, progression.ColSetTimestamp)
		ts, ok := parseTime(stamp, progression.TimeLayout)
		if !ok {
			return nil, conversionError(src, row, "timestamp", stamp)
		}
		reps, ok := parseCount(t.Get(i, progression.ColRepetitions))
		if !ok {
			return nil, conversionError(src, row, progression.ColRepetitions, t.Get(i, progression.ColRepetitions))
		}
		weight, ok := parseWeight(t.Get(i, progression.ColWeight))
		if !ok {
			return nil, conversionError(src, row, progression.ColWeight, t.Get(i, progression.ColWeight))
		}
		rec := models.SetRecord{
			Time:           ts,
			Source:         src,
			WorkoutName:    strings.TrimSpace(t.Get(i, progression.ColWorkoutName)),
			ExerciseName:   t.Get(i, progression.ColExerciseName),
			Repetitions:    reps,
			WeightKg:       weight,
			SetComment:     strings.TrimSpace(t.Get(i, progression.ColSetComment)),
			SessionComment: strings.TrimSpace(t.Get(i, progression.ColSessionComment)),
		}
		if hasOrder {
			order, ok := parseCount(t.Get(i, progression.ColSetOrder))
			if !ok {
				return nil, conversionError(src, row, progression.ColSetOrder, t.Get(i, progression.ColSetOrder))
			}
			rec.SetOrder = order + 1
		}
		if hasDuration {
			dur, ok := parseCount(t.Get(i, progression.ColSessionDuration))
			if !ok {
				return nil, conversionError(src, row, progression.ColSessionDuration, t.Get(i, progression.ColSessionDuration))
			}
			rec.SessionDurationSec = dur
		}
		out = append(out, rec)
	}

	if !hasOrder || !hasDuration {
		deriveSessionMetadata(out, !hasOrder, !hasDuration)
	}
	return out, nil
}

// HarmonizeGymBook converts a pre-cleaned GymBook table into set records and
// derives the session duration and set order the app does not export.
func HarmonizeGymBook(t *table.Table) ([]models.SetRecord, error) {
	const src = models.SourceGymBook
	out := make([]models.SetRecord, 0, t.Len())
	for i := range t.Rows {
		row := i + 1
		stamp := t.Get(i, gymbook.ColDate) + " " + t.Get(i, gymbook.ColTime)
		ts, ok := parseTime(stamp, gymbook.TimeLayouts...)
		if !ok {
			return nil, conversionError(src, row, "timestamp", stamp)
		}
		reps, ok := parseGymBookReps(t.Get(i, gymbook.ColReps))
		if !ok {
			return nil, conversionError(src, row, gymbook.ColReps, t.Get(i, gymbook.ColReps))
		}
		weight, ok := parseWeight(t.Get(i, gymbook.ColWeight))
		if !ok {
			return nil, conversionError(src, row, gymbook.ColWeight, t.Get(i, gymbook.ColWeight))
		}
		out = append(out, models.SetRecord{
			Time:         ts,
			Source:       src,
			WorkoutName:  strings.TrimSpace(t.Get(i, gymbook.ColWorkout)),
			ExerciseName: t.Get(i, gymbook.ColExercise),
			Repetitions:  reps,
			WeightKg:     weight,
			SetComment:   strings.TrimSpace(t.Get(i, gymbook.ColNotes)),
		})
	}
	deriveSessionMetadata(out, true, true)
	return out, nil
}

// deriveSessionMetadata fills session duration (span of the calendar day)
// and set order (running count per day and exercise, in time order) in place.
func deriveSessionMetadata(recs []models.SetRecord, order, duration bool) {
	idx := make([]int, len(recs))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return recs[a].Time.Compare(recs[b].Time) })

	type span struct{ first, last time.Time }
	days := make(map[time.Time]*span)
	counts := make(map[setKey]int)
	for _, i := range idx {
		day := models.CalendarDay(recs[i].Time)
		if s, ok := days[day]; ok {
			s.last = recs[i].Time
		} else {
			days[day] = &span{first: recs[i].Time, last: recs[i].Time}
		}
		if order {
			k := setKey{day: day, exercise: recs[i].ExerciseName}
			counts[k]++
			recs[i].SetOrder = counts[k]
		}
	}
	if duration {
		for i := range recs {
			s := days[models.CalendarDay(recs[i].Time)]
			recs[i].SessionDurationSec = int(s.last.Sub(s.first).Seconds())
		}
	}
}

type setKey struct {
	day      time.Time
	exercise string
}

// Union concatenates both sources and sorts the result newest first.
func Union(a, b []models.SetRecord) []models.SetRecord {
	out := make([]models.SetRecord, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.SortStableFunc(out, func(x, y models.SetRecord) int { return y.Time.Compare(x.Time) })
	return out
}

// ReconcileNames maps every exercise name onto its reconciled spelling.
func ReconcileNames(recs []models.SetRecord, r *names.Reconciler) []models.SetRecord {
	observed := make([]string, 0, len(recs))
	for _, rec := range recs {
		observed = append(observed, rec.ExerciseName)
	}
	mapping := r.Map(observed)
	out := slices.Clone(recs)
	for i := range out {
		out[i].ExerciseName = mapping[out[i].ExerciseName]
	}
	return out
}

func compareSets(a, b models.SetRecord) int {
	return cmp.Or(a.Time.Compare(b.Time), cmp.Compare(a.SetOrder, b.SetOrder))
}
