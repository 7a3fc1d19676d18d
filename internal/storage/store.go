// Package storage serves read-only queries over the output of a pipeline run.
// A Store is built once and never modified, so it is safe for concurrent use.
package storage

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/exercise"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/pipeline"
)

// Store holds the unified tables of one run.
type Store struct {
	runID      string
	sets       []models.WorkoutSet
	bodyweight []models.BodyweightRecord
	unknown    []string
	stats      pipeline.Stats
	lib        *exercise.Library
}

// New wraps a finished run. The slices are copied and sorted by time.
func New(res *pipeline.Result, lib *exercise.Library) *Store {
	s := &Store{lib: lib}
	if res == nil {
		return s
	}
	s.runID = res.RunID
	s.stats = res.Stats
	s.sets = slices.Clone(res.Sets)
	slices.SortStableFunc(s.sets, func(a, b models.WorkoutSet) int {
		return a.Time.Compare(b.Time)
	})
	s.bodyweight = slices.Clone(res.Bodyweight)
	slices.SortStableFunc(s.bodyweight, func(a, b models.BodyweightRecord) int {
		return a.Time.Compare(b.Time)
	})
	s.unknown = slices.Clone(res.UnknownExercises)
	slices.Sort(s.unknown)
	return s
}

// RunID returns the identifier of the run the store was built from.
func (s *Store) RunID() string { return s.runID }

// Library returns the exercise library used for enrichment.
func (s *Store) Library() *exercise.Library { return s.lib }

// UnknownExercises returns the exercise names that the library could not
// resolve, sorted.
func (s *Store) UnknownExercises(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.unknown == nil {
		return []string{}, nil
	}
	return slices.Clone(s.unknown), nil
}

// inRange reports whether t lies in [start, end). A zero bound is open.
func inRange(t, start, end time.Time) bool {
	if !start.IsZero() && t.Before(start) {
		return false
	}
	if !end.IsZero() && !t.Before(end) {
		return false
	}
	return true
}

// QueryWorkoutSets returns the sets in [start, end) in time order. A non-empty
// exerciseFilter keeps only sets of that exercise, compared case-insensitively.
func (s *Store) QueryWorkoutSets(ctx context.Context, start, end time.Time, exerciseFilter string) ([]models.WorkoutSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exerciseFilter = strings.TrimSpace(exerciseFilter)
	result := []models.WorkoutSet{}
	for _, set := range s.sets {
		if !inRange(set.Time, start, end) {
			continue
		}
		if exerciseFilter != "" && !strings.EqualFold(set.ExerciseName, exerciseFilter) {
			continue
		}
		result = append(result, set)
	}
	return result, nil
}

// QueryBodyweight returns the bodyweight records in [start, end) in time order.
func (s *Store) QueryBodyweight(ctx context.Context, start, end time.Time) ([]models.BodyweightRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := []models.BodyweightRecord{}
	for _, rec := range s.bodyweight {
		if inRange(rec.Time, start, end) {
			result = append(result, rec)
		}
	}
	return result, nil
}

// DataStats holds aggregate statistics about the loaded run.
type DataStats struct {
	RunID             string         `json:"run_id"`
	TotalSets         int            `json:"total_sets"`
	TotalSessions     int            `json:"total_sessions"`
	BodyweightRecords int            `json:"bodyweight_records"`
	EarliestData      *time.Time     `json:"earliest_data"`
	LatestData        *time.Time     `json:"latest_data"`
	SetsBySource      map[string]int `json:"sets_by_source"`
	Pipeline          pipeline.Stats `json:"pipeline"`
}

// GetDataStats summarizes the whole store.
func (s *Store) GetDataStats(ctx context.Context) (*DataStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stats := &DataStats{
		RunID:             s.runID,
		TotalSets:         len(s.sets),
		BodyweightRecords: len(s.bodyweight),
		SetsBySource:      make(map[string]int),
		Pipeline:          s.stats,
	}
	days := make(map[time.Time]struct{})
	for _, set := range s.sets {
		stats.SetsBySource[set.Source]++
		days[set.Date()] = struct{}{}
	}
	stats.TotalSessions = len(days)

	var earliest, latest time.Time
	observe := func(t time.Time) {
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
		if t.After(latest) {
			latest = t
		}
	}
	for _, set := range s.sets {
		observe(set.Time)
	}
	for _, rec := range s.bodyweight {
		observe(rec.Time)
	}
	if !earliest.IsZero() {
		stats.EarliestData = &earliest
		stats.LatestData = &latest
	}
	return stats, nil
}
