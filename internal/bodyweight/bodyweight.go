// Package bodyweight loads the two bodyweight exports: a daily log with one
// date-only entry per day and a smart scale with several timestamped
// readings per day.
package bodyweight

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/ingest"
	"github.com/claude/liftlog/internal/models"
)

// Export column names.
const (
	ColDailyDate   = "Date"
	ColDailyWeight = "Weight"
	ColScaleTime   = "Time"
	ColScaleWeight = "WEIGHT (kg)"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
	timeLayout  = dateLayout + " " + clockLayout
)

// DefaultTime is the clock time given to daily log entries.
const DefaultTime = "09:00:00"

// ValidClock reports whether s is a 15:04:05 clock time.
func ValidClock(s string) bool {
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

func parseWeight(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

// LoadDaily reads the semicolon-separated Date;Weight log. Every entry is
// stamped with clock (15:04:05); empty means DefaultTime.
func LoadDaily(path, clock string) ([]models.BodyweightRecord, error) {
	if clock == "" {
		clock = DefaultTime
	}
	if !ValidClock(clock) {
		return nil, fmt.Errorf("invalid default time %q, want HH:MM:SS", clock)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bodyweight log: %w", err)
	}
	defer f.Close()

	t, err := ingest.ReadTable(f, path, ';')
	if err != nil {
		return nil, err
	}
	if err := ingest.RequireColumns(t, path, ColDailyDate, ColDailyWeight); err != nil {
		return nil, err
	}
	out := make([]models.BodyweightRecord, 0, t.Len())
	for i := range t.Rows {
		date := strings.TrimSpace(t.Get(i, ColDailyDate))
		if date == "" {
			continue
		}
		ts, err := time.Parse(timeLayout, date+" "+clock)
		if err != nil {
			return nil, &ingest.ParseError{Path: path, Row: i + 1, Err: fmt.Errorf("date %q: %w", date, err)}
		}
		w, err := parseWeight(t.Get(i, ColDailyWeight))
		if err != nil {
			return nil, &ingest.ParseError{Path: path, Row: i + 1, Err: fmt.Errorf("weight %q: %w", t.Get(i, ColDailyWeight), err)}
		}
		out = append(out, models.BodyweightRecord{Time: ts, WeightKg: w, Source: models.SourceDailyLog})
	}
	return out, nil
}

// LoadScale reads the comma-separated scale export and keeps the lightest
// reading of each calendar day, with that reading's timestamp.
func LoadScale(path string) ([]models.BodyweightRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scale export: %w", err)
	}
	defer f.Close()

	t, err := ingest.ReadTable(f, path, ',')
	if err != nil {
		return nil, err
	}
	if err := ingest.RequireColumns(t, path, ColScaleTime, ColScaleWeight); err != nil {
		return nil, err
	}

	lightest := make(map[time.Time]models.BodyweightRecord)
	for i := range t.Rows {
		stamp := strings.TrimSpace(t.Get(i, ColScaleTime))
		if stamp == "" {
			continue
		}
		ts, err := time.Parse(timeLayout, stamp)
		if err != nil {
			return nil, &ingest.ParseError{Path: path, Row: i + 1, Err: fmt.Errorf("time %q: %w", stamp, err)}
		}
		w, err := parseWeight(t.Get(i, ColScaleWeight))
		if err != nil {
			return nil, &ingest.ParseError{Path: path, Row: i + 1, Err: fmt.Errorf("weight %q: %w", t.Get(i, ColScaleWeight), err)}
		}
		day := models.CalendarDay(ts)
		if cur, ok := lightest[day]; !ok || w < cur.WeightKg {
			lightest[day] = models.BodyweightRecord{Time: ts, WeightKg: w, Source: models.SourceScale}
		}
	}
	out := make([]models.BodyweightRecord, 0, len(lightest))
	for _, r := range lightest {
		out = append(out, r)
	}
	Sort(out)
	return out, nil
}

// Combine concatenates both sources sorted by time.
func Combine(daily, scale []models.BodyweightRecord) []models.BodyweightRecord {
	out := make([]models.BodyweightRecord, 0, len(daily)+len(scale))
	out = append(out, daily...)
	out = append(out, scale...)
	Sort(out)
	return out
}

// Sort orders records by time, stable for equal timestamps.
func Sort(recs []models.BodyweightRecord) {
	slices.SortStableFunc(recs, func(a, b models.BodyweightRecord) int { return a.Time.Compare(b.Time) })
}

// Load runs both loaders and combines the result.
func Load(dailyPath, scalePath, clock string) ([]models.BodyweightRecord, error) {
	daily, err := LoadDaily(dailyPath, clock)
	if err != nil {
		return nil, fmt.Errorf("loading daily bodyweight: %w", err)
	}
	scale, err := LoadScale(scalePath)
	if err != nil {
		return nil, fmt.Errorf("loading scale bodyweight: %w", err)
	}
	return Combine(daily, scale), nil
}
