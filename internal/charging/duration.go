package charging

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a charging interval broken into whole hours and remainder
// minutes. Sub-minute precision is discarded, not rounded up.
type Duration struct {
	Hours   int
	Minutes int
}

// String renders the short form used on session cards, e.g. "2h 30m".
func (d Duration) String() string {
	return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
}

// TotalMinutes returns the interval as whole minutes.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// FormatError reports a clock string that is not HH:MM within 00:00-23:59.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: want HH:MM between 00:00 and 23:59", e.Field, e.Value)
}

// ParseClock parses a wall-clock string ("08:30", "8:30") into hour and
// minute. The hour may be one or two digits, the minute must be exactly two.
func ParseClock(field, s string) (hour, minute int, err error) {
	badFormat := &FormatError{Field: field, Value: s}

	hh, mm, found := strings.Cut(s, ":")
	if !found || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, 0, badFormat
	}
	hour, err = strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, badFormat
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, badFormat
	}
	return hour, minute, nil
}

// SessionDuration computes the elapsed charging time between startTime and
// endTime on the given date. An end reading earlier than the start reading
// means the session crossed midnight, so the end is moved forward by exactly
// one day; multi-day sessions are not supported.
func SessionDuration(date time.Time, startTime, endTime string) (Duration, error) {
	sh, sm, err := ParseClock("start time", startTime)
	if err != nil {
		return Duration{}, err
	}
	eh, em, err := ParseClock("end time", endTime)
	if err != nil {
		return Duration{}, err
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), sh, sm, 0, 0, time.UTC)
	end := time.Date(date.Year(), date.Month(), date.Day(), eh, em, 0, 0, time.UTC)
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	total := int(end.Sub(start).Minutes())
	return Duration{Hours: total / 60, Minutes: total % 60}, nil
}
