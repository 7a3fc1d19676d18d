package storage

import (
	"context"
	"sort"
	"strings"
	"time"
)

// RelativeRepLimit is the highest repetition count for which weight divided
// by bodyweight is reported. Sets above it get relative volume instead.
const RelativeRepLimit = 8

// RelativeStrengthPoint relates one set of an exercise to the lifter's
// bodyweight on that day. Exactly one of RelativeStrength and
// HighRepRelativeVolume is set.
type RelativeStrengthPoint struct {
	Time                  time.Time `json:"time"`
	Repetitions           int       `json:"repetitions"`
	WeightKg              float64   `json:"weight_kg"`
	OneRepMaxKg           float64   `json:"one_rep_max_kg"`
	BodyweightKg          float64   `json:"bodyweight_kg"`
	RelativeStrength      *float64  `json:"relative_strength,omitempty"`
	HighRepRelativeVolume *float64  `json:"high_rep_relative_volume,omitempty"`
}

// GetRelativeStrength returns the sets of an exercise alongside the bodyweight
// measured on the same day or, failing that, the most recent earlier day.
// Sets without any earlier bodyweight and unweighted sets are left out.
func (s *Store) GetRelativeStrength(ctx context.Context, exerciseName string) ([]RelativeStrengthPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exerciseName = strings.TrimSpace(exerciseName)
	result := []RelativeStrengthPoint{}
	for _, set := range s.sets {
		if !strings.EqualFold(set.ExerciseName, exerciseName) || set.WeightKg <= 0 {
			continue
		}
		bw, ok := s.bodyweightOn(set.Date())
		if !ok {
			continue
		}
		p := RelativeStrengthPoint{
			Time:         set.Time,
			Repetitions:  set.Repetitions,
			WeightKg:     set.WeightKg,
			OneRepMaxKg:  set.OneRepMaxKg,
			BodyweightKg: bw,
		}
		if set.Repetitions <= RelativeRepLimit {
			v := set.WeightKg / bw
			p.RelativeStrength = &v
		} else {
			v := set.VolumeKg / bw
			p.HighRepRelativeVolume = &v
		}
		result = append(result, p)
	}
	return result, nil
}

// bodyweightOn returns the last measurement taken on or before day.
func (s *Store) bodyweightOn(day time.Time) (float64, bool) {
	next := day.AddDate(0, 0, 1)
	i := sort.Search(len(s.bodyweight), func(i int) bool {
		return !s.bodyweight[i].Time.Before(next)
	})
	if i == 0 {
		return 0, false
	}
	w := s.bodyweight[i-1].WeightKg
	return w, w > 0
}
