package util

import (
	"fmt"
	"time"
)

// ValidateDate checks a date string is YYYY-MM-DD.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidatePercentage checks a battery state-of-charge value is within 0-100.
func ValidatePercentage(p int) error {
	if p < 0 || p > 100 {
		return fmt.Errorf("percentage must be within 0-100, got %d", p)
	}
	return nil
}

// ValidateChargeRange checks that a session adds charge: end > start.
func ValidateChargeRange(startPct, endPct int) error {
	if err := ValidatePercentage(startPct); err != nil {
		return err
	}
	if err := ValidatePercentage(endPct); err != nil {
		return err
	}
	if endPct <= startPct {
		return fmt.Errorf("end percentage must be greater than start percentage, got %d -> %d", startPct, endPct)
	}
	return nil
}

// ValidateNotes checks a notes annotation is within the column limit.
func ValidateNotes(notes string) error {
	if len(notes) > 500 {
		return fmt.Errorf("notes too long, max 500 characters")
	}
	return nil
}

// ValidateEnergyKWh checks a user-supplied energy reading is plausible.
func ValidateEnergyKWh(kwh float64) error {
	if kwh <= 0 {
		return fmt.Errorf("energy must be positive, got %f", kwh)
	}
	if kwh >= 100 {
		return fmt.Errorf("energy too large for a scooter session, got %f", kwh)
	}
	return nil
}
