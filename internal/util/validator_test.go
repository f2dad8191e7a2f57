package util

import (
	"testing"
)

func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidatePercentage(t *testing.T) {
	for _, p := range []int{0, 1, 50, 99, 100} {
		if err := ValidatePercentage(p); err != nil {
			t.Errorf("ValidatePercentage(%d) error = %v, want nil", p, err)
		}
	}
	for _, p := range []int{-1, 101, 1000} {
		if err := ValidatePercentage(p); err == nil {
			t.Errorf("ValidatePercentage(%d) error = nil, want error", p)
		}
	}
}

func TestValidateChargeRange_Valid(t *testing.T) {
	testCases := []struct{ start, end int }{
		{0, 100},
		{20, 80},
		{99, 100},
	}
	for _, tc := range testCases {
		if err := ValidateChargeRange(tc.start, tc.end); err != nil {
			t.Errorf("ValidateChargeRange(%d, %d) error = %v, want nil", tc.start, tc.end, err)
		}
	}
}

func TestValidateChargeRange_Invalid(t *testing.T) {
	testCases := []struct{ start, end int }{
		{80, 20},  // end below start
		{50, 50},  // no charge added
		{-5, 50},  // start out of range
		{20, 110}, // end out of range
	}
	for _, tc := range testCases {
		if err := ValidateChargeRange(tc.start, tc.end); err == nil {
			t.Errorf("ValidateChargeRange(%d, %d) error = nil, want error", tc.start, tc.end)
		}
	}
}

// A record that passes range validation always has a positive charge gain.
func TestValidateChargeRange_GainPositive(t *testing.T) {
	start, end := 20, 80
	if err := ValidateChargeRange(start, end); err != nil {
		t.Fatalf("ValidateChargeRange(%d, %d) error = %v, want nil", start, end, err)
	}
	gained := end - start
	if gained != 60 {
		t.Errorf("charge gained = %d, want 60", gained)
	}
	if gained <= 0 {
		t.Error("charge gained must be positive after validation")
	}
}

func TestValidateNotes(t *testing.T) {
	if err := ValidateNotes("charged at home"); err != nil {
		t.Errorf("ValidateNotes(short) error = %v, want nil", err)
	}
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateNotes(string(long)); err == nil {
		t.Error("ValidateNotes(501 chars) error = nil, want error")
	}
}

func TestValidateEnergyKWh(t *testing.T) {
	for _, kwh := range []float64{0.01, 0.3, 0.5, 2.0} {
		if err := ValidateEnergyKWh(kwh); err != nil {
			t.Errorf("ValidateEnergyKWh(%v) error = %v, want nil", kwh, err)
		}
	}
	for _, kwh := range []float64{0, -0.5, 100, 5000} {
		if err := ValidateEnergyKWh(kwh); err == nil {
			t.Errorf("ValidateEnergyKWh(%v) error = nil, want error", kwh)
		}
	}
}
