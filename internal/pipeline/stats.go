package pipeline

// Stats counts what each stage of a run kept, dropped and repaired.
type Stats struct {
	ProgressionRows int `json:"progression_rows"`
	GymBookRows     int `json:"gymbook_rows"`
	SkippedSets     int `json:"skipped_sets"`

	DroppedColumns map[string][]string `json:"dropped_columns,omitempty"`

	ZeroRepSets     int `json:"zero_rep_sets"`
	DroppedOutliers int `json:"dropped_outliers"`
	SmoothedGaps    int `json:"smoothed_gaps"`

	Sets              int `json:"sets"`
	BodyweightRecords int `json:"bodyweight_records"`
	UnknownExercises  int `json:"unknown_exercises"`
}
