package models

import (
	"strconv"
	"time"
)

// Sources of a set record.
const (
	SourceProgression = "progression"
	SourceGymBook     = "gymbook"
)

// Unknown labels an exercise attribute that the exercise library cannot resolve.
const Unknown = "Unknown"

// SetRecord is one harmonized set before post-cleaning. WeightKg is nil when
// the export left the weight cell empty (bodyweight exercises).
type SetRecord struct {
	Time               time.Time
	Source             string
	WorkoutName        string
	ExerciseName       string
	SetOrder           int
	Repetitions        int
	WeightKg           *float64
	SetComment         string
	SessionComment     string
	SessionDurationSec int
}

// WorkoutSet is the unified, enriched per-set record.
type WorkoutSet struct {
	Time               time.Time `json:"time"`
	Source             string    `json:"source"`
	WorkoutName        string    `json:"workout_name"`
	ExerciseName       string    `json:"exercise_name"`
	SetOrder           int       `json:"set_order"`
	Repetitions        int       `json:"repetitions"`
	WeightKg           float64   `json:"weight_kg"`
	SetComment         string    `json:"set_comment"`
	SessionComment     string    `json:"session_comment,omitempty"`
	SessionDurationSec int       `json:"session_duration_s"`
	Weekday            Weekday   `json:"weekday"`
	VolumeKg           float64   `json:"volume_kg"`
	OneRepMaxKg        float64   `json:"one_rep_max_kg"`
	MuscleCategory     string    `json:"muscle_category"`
	Equipment          string    `json:"equipment"`
	Mechanic           string    `json:"mechanic"`
	Force              string    `json:"force"`
}

// Date returns the calendar day of the set.
func (s WorkoutSet) Date() time.Time {
	return CalendarDay(s.Time)
}

// SetColumns are the display names of the unified table, in Record order.
var SetColumns = []string{
	"Time",
	"Source",
	"Workout Name",
	"Exercise Name",
	"Set Order",
	"Repetitions",
	"Weight [kg]",
	"Set Comment",
	"Session Comment",
	"Session Duration [s]",
	"Weekday",
	"Volume [kg]",
	"1RM [kg]",
	"Muscle Category",
	"Equipment",
	"Mechanic",
	"Force",
}

// Record renders the set as a row matching SetColumns.
func (s WorkoutSet) Record() []string {
	return []string{
		s.Time.Format("2006-01-02 15:04:05"),
		s.Source,
		s.WorkoutName,
		s.ExerciseName,
		strconv.Itoa(s.SetOrder),
		strconv.Itoa(s.Repetitions),
		formatFloat(s.WeightKg),
		s.SetComment,
		s.SessionComment,
		strconv.Itoa(s.SessionDurationSec),
		s.Weekday.String(),
		formatFloat(s.VolumeKg),
		formatFloat(s.OneRepMaxKg),
		s.MuscleCategory,
		s.Equipment,
		s.Mechanic,
		s.Force,
	}
}

// CalendarDay truncates t to midnight in its own location.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
