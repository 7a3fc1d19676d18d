package models

import "time"

// Bodyweight sources.
const (
	SourceDailyLog = "daily"
	SourceScale    = "scale"
)

// BodyweightRecord is a single bodyweight measurement.
type BodyweightRecord struct {
	Time     time.Time `json:"time"`
	WeightKg float64   `json:"weight_kg"`
	Source   string    `json:"source"`
}

// BodyweightColumns are the display names of the bodyweight table.
var BodyweightColumns = []string{"Time", "Weight [kg]", "Source"}

// Record renders the measurement as a row matching BodyweightColumns.
func (b BodyweightRecord) Record() []string {
	return []string{b.Time.Format("2006-01-02 15:04:05"), formatFloat(b.WeightKg), b.Source}
}
