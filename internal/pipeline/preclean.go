package pipeline

import (
	"slices"

	"github.com/claude/liftlog/internal/ingest/gymbook"
	"github.com/claude/liftlog/internal/ingest/progression"
	"github.com/claude/liftlog/internal/table"
)

// PrecleanReport describes what a pre-clean pass removed.
type PrecleanReport struct {
	Dropped []string
	Skipped int
}

// Columns the harmonizer parses are never dropped for being constant; a
// single-day export would otherwise lose its date.
var (
	progressionProtected = []string{
		progression.ColDate, progression.ColSetTimestamp, progression.ColWorkoutName,
		progression.ColExerciseName, progression.ColRepetitions, progression.ColWeight,
		progression.ColSetOrder, progression.ColSessionDuration,
	}
	progressionDenied = []string{progression.ColTime, progression.ColSetDuration}

	gymBookProtected = []string{
		gymbook.ColDate, gymbook.ColTime, gymbook.ColWorkout,
		gymbook.ColExercise, gymbook.ColReps, gymbook.ColWeight,
	}
	gymBookDenied = []string{
		gymbook.ColPrimaryMuscles, gymbook.ColOtherMuscles, gymbook.ColSetType,
		gymbook.ColRegion, gymbook.ColSkipped,
	}
)

// PrecleanProgression fills missing repetitions from the set duration of
// timed exercises, then drops constant and known redundant columns.
func PrecleanProgression(t *table.Table) (*table.Table, PrecleanReport) {
	t = t.FillEmpty(progression.ColRepetitions, progression.ColSetDuration)
	dropped := dropList(t, progressionProtected, progressionDenied)
	return t.Drop(dropped...), PrecleanReport{Dropped: dropped}
}

// PrecleanGymBook removes skipped sets, then drops constant and known
// redundant columns.
func PrecleanGymBook(t *table.Table) (*table.Table, PrecleanReport) {
	before := t.Len()
	if t.Has(gymbook.ColSkipped) {
		t = t.Filter(func(r table.Row) bool { return !gymbook.IsSkipped(r.Get(gymbook.ColSkipped)) })
	}
	dropped := dropList(t, gymBookProtected, gymBookDenied)
	return t.Drop(dropped...), PrecleanReport{Dropped: dropped, Skipped: before - t.Len()}
}

// dropList merges constant columns with the deny-list, keeping header order.
func dropList(t *table.Table, protected, denied []string) []string {
	constant := t.ConstantColumns(protected...)
	var out []string
	for _, h := range t.Header {
		if slices.Contains(constant, h) || slices.Contains(denied, h) {
			out = append(out, h)
		}
	}
	return out
}
