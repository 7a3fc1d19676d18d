package storage

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// PersonalRecord is the best estimated one-rep max of an exercise.
type PersonalRecord struct {
	Exercise       string    `json:"exercise"`
	MuscleCategory string    `json:"muscle_category"`
	OneRepMaxKg    float64   `json:"one_rep_max_kg"`
	WeightKg       float64   `json:"weight_kg"`
	Repetitions    int       `json:"repetitions"`
	Time           time.Time `json:"time"`
}

// GetPersonalRecords returns the best estimated 1RM per exercise, ordered by
// exercise name. Only weighted sets within the reliable rep range count; ties
// keep the earliest set.
func (s *Store) GetPersonalRecords(ctx context.Context) ([]PersonalRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	best := make(map[string]PersonalRecord)
	for _, set := range s.sets {
		if set.WeightKg <= 0 || set.Repetitions > models.ReliableRepLimit {
			continue
		}
		cur, ok := best[set.ExerciseName]
		if ok && set.OneRepMaxKg <= cur.OneRepMaxKg {
			continue
		}
		best[set.ExerciseName] = PersonalRecord{
			Exercise:       set.ExerciseName,
			MuscleCategory: set.MuscleCategory,
			OneRepMaxKg:    set.OneRepMaxKg,
			WeightKg:       set.WeightKg,
			Repetitions:    set.Repetitions,
			Time:           set.Time,
		}
	}

	result := make([]PersonalRecord, 0, len(best))
	for _, pr := range best {
		result = append(result, pr)
	}
	slices.SortFunc(result, func(a, b PersonalRecord) int {
		return strings.Compare(a.Exercise, b.Exercise)
	})
	return result, nil
}

// ExerciseSummary holds aggregated stats for a single exercise.
type ExerciseSummary struct {
	Name      string  `json:"name"`
	TotalSets int     `json:"total_sets"`
	TotalReps int     `json:"total_reps"`
	TonnageKg float64 `json:"tonnage_kg"`
	MaxWeight float64 `json:"max_weight_kg"`
	Sessions  int     `json:"sessions"`
}

// GetExerciseSummaries returns per-exercise totals in [start, end), most
// trained exercise first.
func (s *Store) GetExerciseSummaries(ctx context.Context, start, end time.Time) ([]ExerciseSummary, error) {
	sets, err := s.QueryWorkoutSets(ctx, start, end, "")
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*ExerciseSummary)
	days := make(map[string]map[time.Time]struct{})
	for _, set := range sets {
		es, ok := byName[set.ExerciseName]
		if !ok {
			es = &ExerciseSummary{Name: set.ExerciseName}
			byName[set.ExerciseName] = es
			days[set.ExerciseName] = make(map[time.Time]struct{})
		}
		es.TotalSets++
		es.TotalReps += set.Repetitions
		es.TonnageKg += set.VolumeKg
		es.MaxWeight = max(es.MaxWeight, set.WeightKg)
		days[set.ExerciseName][set.Date()] = struct{}{}
	}

	result := make([]ExerciseSummary, 0, len(byName))
	for name, es := range byName {
		es.Sessions = len(days[name])
		result = append(result, *es)
	}
	slices.SortFunc(result, func(a, b ExerciseSummary) int {
		if a.TotalSets != b.TotalSets {
			return b.TotalSets - a.TotalSets
		}
		return strings.Compare(a.Name, b.Name)
	})
	return result, nil
}
