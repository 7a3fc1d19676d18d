package pipeline

import (
	"maps"
	"slices"
	"strings"

	"github.com/claude/liftlog/internal/exercise"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/names"
)

// labelMaps resolve lowercased exercise names to display labels.
type labelMaps struct {
	category, equipment, mechanic, force map[string]string
}

func buildLabelMaps(lib *exercise.Library) labelMaps {
	m := labelMaps{
		category:  make(map[string]string),
		equipment: make(map[string]string),
		mechanic:  make(map[string]string),
		force:     make(map[string]string),
	}
	record := func(dst map[string]string, label string, exs []exercise.Exercise) {
		for _, e := range exs {
			dst[strings.ToLower(e.Name)] = names.TitleCase(label)
		}
	}
	for _, c := range exercise.MuscleCategories() {
		record(m.category, string(c), lib.SearchExercises(exercise.Criteria{MuscleCategory: c}))
	}
	for _, e := range exercise.Equipments() {
		record(m.equipment, string(e), lib.SearchExercises(exercise.Criteria{Equipment: e}))
	}
	for _, mech := range exercise.Mechanics() {
		record(m.mechanic, string(mech), lib.SearchExercises(exercise.Criteria{Mechanic: mech}))
	}
	for _, f := range exercise.Forces() {
		record(m.force, string(f), lib.SearchExercises(exercise.Criteria{Force: f}))
	}
	return m
}

func labelOr(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return models.Unknown
}

// Enrich adds taxonomy labels, weekday, volume and estimated 1RM to every
// set. Names the library does not know get "Unknown" labels and are
// returned sorted.
func Enrich(sets []models.WorkoutSet, lib *exercise.Library) ([]models.WorkoutSet, []string) {
	labels := buildLabelMaps(lib)
	unknown := make(map[string]struct{})

	out := slices.Clone(sets)
	for i := range out {
		s := &out[i]
		key := strings.ToLower(strings.TrimSpace(s.ExerciseName))
		s.MuscleCategory = labelOr(labels.category, key)
		s.Equipment = labelOr(labels.equipment, key)
		s.Mechanic = labelOr(labels.mechanic, key)
		s.Force = labelOr(labels.force, key)
		if s.MuscleCategory == models.Unknown {
			unknown[s.ExerciseName] = struct{}{}
		}
		s.Weekday = models.WeekdayOf(s.Time)
		s.VolumeKg = models.Volume(s.WeightKg, s.Repetitions)
		s.OneRepMaxKg = models.OneRepMax(s.WeightKg, s.Repetitions)
	}
	return out, slices.Sorted(maps.Keys(unknown))
}
