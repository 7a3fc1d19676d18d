package storage

import (
	"context"
	"slices"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// StrengthVolumeSummary holds aggregated strength training stats for a period.
type StrengthVolumeSummary struct {
	WorkingSets       int     `json:"working_sets"`
	TotalReps         int     `json:"total_reps"`
	TonnageKg         float64 `json:"tonnage_kg"`
	Sessions          int     `json:"sessions"`
	AvgSetsPerSession float64 `json:"avg_sets_per_session"`
}

// CategoryVolume holds the set count and tonnage of one muscle category.
type CategoryVolume struct {
	Category  string  `json:"category"`
	Sets      int     `json:"sets"`
	TonnageKg float64 `json:"tonnage_kg"`
}

// TrainingSummaryPeriod holds the strength volume of one time period.
type TrainingSummaryPeriod struct {
	Period     string                `json:"period"`
	Strength   StrengthVolumeSummary `json:"strength"`
	Categories []CategoryVolume      `json:"categories"`
}

// GetTrainingSummary returns aggregated strength volume per period, newest
// period first. bucket is "1 week" or "1 month".
func (s *Store) GetTrainingSummary(ctx context.Context, start, end time.Time, bucket string) ([]TrainingSummaryPeriod, error) {
	sets, err := s.QueryWorkoutSets(ctx, start, end, "")
	if err != nil {
		return nil, err
	}
	interval := truncInterval(bucket)

	type accumulator struct {
		summary    StrengthVolumeSummary
		days       map[time.Time]struct{}
		categories map[string]*CategoryVolume
	}
	periodMap := make(map[time.Time]*accumulator)
	for _, set := range sets {
		key := periodStart(set.Time, interval)
		acc, ok := periodMap[key]
		if !ok {
			acc = &accumulator{
				days:       make(map[time.Time]struct{}),
				categories: make(map[string]*CategoryVolume),
			}
			periodMap[key] = acc
		}
		acc.summary.WorkingSets++
		acc.summary.TotalReps += set.Repetitions
		acc.summary.TonnageKg += set.VolumeKg
		acc.days[set.Date()] = struct{}{}

		cv, ok := acc.categories[set.MuscleCategory]
		if !ok {
			cv = &CategoryVolume{Category: set.MuscleCategory}
			acc.categories[set.MuscleCategory] = cv
		}
		cv.Sets++
		cv.TonnageKg += set.VolumeKg
	}

	periods := make([]time.Time, 0, len(periodMap))
	for p := range periodMap {
		periods = append(periods, p)
	}
	slices.SortFunc(periods, func(a, b time.Time) int { return b.Compare(a) })

	result := make([]TrainingSummaryPeriod, 0, len(periods))
	for _, p := range periods {
		acc := periodMap[p]
		sv := acc.summary
		sv.Sessions = len(acc.days)
		if sv.Sessions > 0 {
			sv.AvgSetsPerSession = float64(sv.WorkingSets) / float64(sv.Sessions)
		}
		cats := make([]CategoryVolume, 0, len(acc.categories))
		for _, cv := range acc.categories {
			cats = append(cats, *cv)
		}
		slices.SortFunc(cats, func(a, b CategoryVolume) int {
			if a.Sets != b.Sets {
				return b.Sets - a.Sets
			}
			if a.Category < b.Category {
				return -1
			}
			if a.Category > b.Category {
				return 1
			}
			return 0
		})
		result = append(result, TrainingSummaryPeriod{
			Period:     p.Format("2006-01-02"),
			Strength:   sv,
			Categories: cats,
		})
	}
	return result, nil
}

// truncInterval converts bucket strings like "1 month" to the period unit
// used for grouping (e.g. "month", "week").
func truncInterval(bucket string) string {
	switch bucket {
	case "1 week", "week":
		return "week"
	case "1 month", "month":
		return "month"
	default:
		return "month"
	}
}

// periodStart truncates t to the first day of its week (Monday) or month.
func periodStart(t time.Time, interval string) time.Time {
	day := models.CalendarDay(t)
	if interval == "week" {
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	}
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
}
