package domain

import (
	"encoding/json"
	"fmt"
)

const minutesPerDay = 24 * 60

// TimeOfDay is an hour:minute value without date context, minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a "HH:MM" string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("parsing time of day %q: %w", s, err)
	}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return t, nil
}

// MinutesSinceMidnight converts the time to minutes since 00:00.
func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ElapsedHours converts a start/end span and a break into worked hours.
// A span whose end lies before its start crosses midnight and wraps by
// one day (22:00 to 06:00 is eight hours). A break longer than the span
// clamps the result to zero rather than going negative; malformed input
// is the caller's problem, not an error here.
func ElapsedHours(start, end TimeOfDay, breakMinutes int) float64 {
	startMin := start.MinutesSinceMidnight()
	endMin := end.MinutesSinceMidnight()
	if endMin < startMin {
		endMin += minutesPerDay
	}
	worked := endMin - startMin - breakMinutes
	if worked < 0 {
		worked = 0
	}
	return float64(worked) / 60.0
}
