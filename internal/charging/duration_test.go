package charging

import (
	"errors"
	"testing"
	"time"
)

var testDate = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func TestSessionDuration_SameDay(t *testing.T) {
	testCases := []struct {
		start, end   string
		hours, mins  int
	}{
		{"08:00", "10:30", 2, 30},
		{"00:00", "23:59", 23, 59},
		{"09:15", "09:15", 0, 0},
		{"12:00", "13:00", 1, 0},
		{"8:05", "9:00", 0, 55}, // single-digit hour is accepted
	}

	for _, tc := range testCases {
		d, err := SessionDuration(testDate, tc.start, tc.end)
		if err != nil {
			t.Errorf("SessionDuration(%q, %q) error = %v, want nil", tc.start, tc.end, err)
			continue
		}
		if d.Hours != tc.hours || d.Minutes != tc.mins {
			t.Errorf("SessionDuration(%q, %q) = %dh %dm, want %dh %dm",
				tc.start, tc.end, d.Hours, d.Minutes, tc.hours, tc.mins)
		}
	}
}

func TestSessionDuration_MidnightRollover(t *testing.T) {
	d, err := SessionDuration(testDate, "23:00", "02:00")
	if err != nil {
		t.Fatalf("SessionDuration(23:00, 02:00) error = %v, want nil", err)
	}
	if d.Hours != 3 || d.Minutes != 0 {
		t.Errorf("SessionDuration(23:00, 02:00) = %dh %dm, want 3h 0m", d.Hours, d.Minutes)
	}
}

func TestSessionDuration_RolloverWithMinutes(t *testing.T) {
	d, err := SessionDuration(testDate, "22:45", "01:15")
	if err != nil {
		t.Fatalf("SessionDuration(22:45, 01:15) error = %v, want nil", err)
	}
	if d.Hours != 2 || d.Minutes != 30 {
		t.Errorf("SessionDuration(22:45, 01:15) = %dh %dm, want 2h 30m", d.Hours, d.Minutes)
	}
}

func TestSessionDuration_InvalidTimes(t *testing.T) {
	testCases := []struct {
		start, end string
	}{
		{"", "10:00"},
		{"10:00", ""},
		{"24:00", "10:00"},
		{"10:00", "10:60"},
		{"10.30", "11:00"},
		{"10:3", "11:00"}, // minute must be two digits
		{"abc", "def"},
		{"10:00:00", "11:00"},
	}

	for _, tc := range testCases {
		_, err := SessionDuration(testDate, tc.start, tc.end)
		if err == nil {
			t.Errorf("SessionDuration(%q, %q) error = nil, want FormatError", tc.start, tc.end)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("SessionDuration(%q, %q) error = %v, want *FormatError", tc.start, tc.end, err)
		}
	}
}

func TestParseClock_Boundaries(t *testing.T) {
	h, m, err := ParseClock("start time", "00:00")
	if err != nil || h != 0 || m != 0 {
		t.Errorf("ParseClock(00:00) = %d:%d, %v, want 0:0, nil", h, m, err)
	}
	h, m, err = ParseClock("end time", "23:59")
	if err != nil || h != 23 || m != 59 {
		t.Errorf("ParseClock(23:59) = %d:%d, %v, want 23:59, nil", h, m, err)
	}
}

func TestDuration_String(t *testing.T) {
	d := Duration{Hours: 2, Minutes: 5}
	if got := d.String(); got != "2h 5m" {
		t.Errorf("Duration.String() = %q, want %q", got, "2h 5m")
	}
}
