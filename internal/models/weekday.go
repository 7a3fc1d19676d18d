package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Weekday is an ordered day-of-week category starting on Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayOf returns the Monday-first weekday of t.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday starts on Sunday.
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// Weekdays lists all categories in display order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (w Weekday) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// ParseWeekday accepts a full English day name in any case.
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if strings.EqualFold(name, s) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

func (w *Weekday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	d, err := ParseWeekday(s)
	if err != nil {
		return err
	}
	*w = d
	return nil
}
