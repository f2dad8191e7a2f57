package charging

import (
	"math"
	"testing"
	"time"
)

func TestEnergyAddedKWh(t *testing.T) {
	// (80-20)/100 * 0.5 = 0.3, exact before display rounding
	got := EnergyAddedKWh(20, 80, 0.5)
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("EnergyAddedKWh(20, 80, 0.5) = %v, want 0.3", got)
	}
}

func TestEnergyAddedKWh_DefaultCapacity(t *testing.T) {
	// capacity <= 0 falls back to the 0.5 kWh default
	got := EnergyAddedKWh(0, 100, 0)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EnergyAddedKWh(0, 100, 0) = %v, want 0.5", got)
	}
}

func TestEnergyAddedKWh_InvertedRange(t *testing.T) {
	// inverted percentages yield a negative value the caller must reject
	if got := EnergyAddedKWh(80, 20, 0.5); got >= 0 {
		t.Errorf("EnergyAddedKWh(80, 20, 0.5) = %v, want negative", got)
	}
}

func TestFormatKWh(t *testing.T) {
	testCases := []struct {
		kwh  float64
		want string
	}{
		{0, "0.00 kWh"},
		{0.3, "0.30 kWh"},
		{1.234, "1.23 kWh"},
		{12.5, "12.50 kWh"},
	}
	for _, tc := range testCases {
		if got := FormatKWh(tc.kwh); got != tc.want {
			t.Errorf("FormatKWh(%v) = %q, want %q", tc.kwh, got, tc.want)
		}
	}
}

func TestFormatTotalMinutes(t *testing.T) {
	testCases := []struct {
		minutes int
		want    string
	}{
		{0, "0 minutes"},
		{1, "1 minute"},
		{59, "59 minutes"},
		{60, "1 hour 0 minutes"},
		{90, "1 hour 30 minutes"},
		{1440, "1 day 0 minutes"},
		{1500, "1 day 1 hour 0 minutes"}, // greedy day/hour/minute decomposition
		{2900, "2 days 20 minutes"},
	}
	for _, tc := range testCases {
		if got := FormatTotalMinutes(tc.minutes); got != tc.want {
			t.Errorf("FormatTotalMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestDayPartOf(t *testing.T) {
	testCases := []struct {
		hour int
		want DayPart
	}{
		{0, Overnight},
		{4, Overnight},
		{5, Morning},
		{11, Morning},
		{12, Afternoon},
		{16, Afternoon},
		{17, Evening},
		{20, Evening},
		{21, LateEvening},
		{23, LateEvening},
	}
	for _, tc := range testCases {
		if got := DayPartOf(tc.hour); got != tc.want {
			t.Errorf("DayPartOf(%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestMostFrequentDayPart_TieBreak(t *testing.T) {
	// Evening and Morning tied: canonical ordering picks Morning
	counts := map[DayPart]int{Morning: 2, Evening: 2, Overnight: 1}
	part, ok := mostFrequentDayPart(counts)
	if !ok || part != Morning {
		t.Errorf("mostFrequentDayPart = %q, %v, want Morning, true", part, ok)
	}
}

func session(start, end string, startPct, endPct int) Session {
	return Session{
		Date:            time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		EndTime:         end,
		StartPercentage: startPct,
		EndPercentage:   endPct,
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 0.5)
	if s.TotalChargingTime != "0 minutes" {
		t.Errorf("TotalChargingTime = %q, want %q", s.TotalChargingTime, "0 minutes")
	}
	if s.AverageChargePerSession != "N/A" {
		t.Errorf("AverageChargePerSession = %q, want N/A", s.AverageChargePerSession)
	}
	if s.MostFrequentChargingTimes != "N/A" {
		t.Errorf("MostFrequentChargingTimes = %q, want N/A", s.MostFrequentChargingTimes)
	}
	if s.TotalEnergyConsumed != "0.00 kWh" {
		t.Errorf("TotalEnergyConsumed = %q, want %q", s.TotalEnergyConsumed, "0.00 kWh")
	}
	if s.SessionCount != 0 {
		t.Errorf("SessionCount = %d, want 0", s.SessionCount)
	}
}

func TestSummarize_MostFrequentBucket(t *testing.T) {
	sessions := []Session{
		session("08:00", "09:00", 20, 50), // Morning
		session("08:30", "10:00", 30, 60), // Morning
		session("22:00", "23:00", 40, 70), // Late Evening
	}
	s := Summarize(sessions, 0.5)
	if s.MostFrequentChargingTimes != "Morning" {
		t.Errorf("MostFrequentChargingTimes = %q, want Morning", s.MostFrequentChargingTimes)
	}
}

func TestSummarize_Totals(t *testing.T) {
	sessions := []Session{
		session("08:00", "10:00", 20, 80), // 2h, +60%, 0.3 kWh
		session("23:00", "01:00", 50, 90), // 2h via rollover, +40%, 0.2 kWh
	}
	s := Summarize(sessions, 0.5)
	if s.TotalChargingTime != "4 hours 0 minutes" {
		t.Errorf("TotalChargingTime = %q, want %q", s.TotalChargingTime, "4 hours 0 minutes")
	}
	if s.AverageChargePerSession != "50.0%" {
		t.Errorf("AverageChargePerSession = %q, want %q", s.AverageChargePerSession, "50.0%")
	}
	if s.TotalEnergyConsumed != "0.50 kWh" {
		t.Errorf("TotalEnergyConsumed = %q, want %q", s.TotalEnergyConsumed, "0.50 kWh")
	}
	if s.SessionCount != 2 {
		t.Errorf("SessionCount = %d, want 2", s.SessionCount)
	}
}

func TestSummarize_UserSuppliedEnergyWins(t *testing.T) {
	override := 0.42
	withOverride := session("08:00", "09:00", 20, 80)
	withOverride.EnergyKWh = &override

	s := Summarize([]Session{withOverride}, 0.5)
	if s.TotalEnergyConsumed != "0.42 kWh" {
		t.Errorf("TotalEnergyConsumed = %q, want %q", s.TotalEnergyConsumed, "0.42 kWh")
	}
}

func TestSummarize_BadTimeDoesNotAbortBatch(t *testing.T) {
	sessions := []Session{
		session("08:00", "10:00", 20, 80),
		session("bogus", "10:00", 10, 30), // skipped for time stats only
	}
	s := Summarize(sessions, 0.5)
	if s.TotalChargingTime != "2 hours 0 minutes" {
		t.Errorf("TotalChargingTime = %q, want %q", s.TotalChargingTime, "2 hours 0 minutes")
	}
	// percentage and energy stats still include the corrupt-time session
	if s.AverageChargePerSession != "40.0%" {
		t.Errorf("AverageChargePerSession = %q, want %q", s.AverageChargePerSession, "40.0%")
	}
	if s.SessionCount != 2 {
		t.Errorf("SessionCount = %d, want 2", s.SessionCount)
	}
}

func TestSession_ChargeGained(t *testing.T) {
	s := session("08:00", "09:00", 20, 80)
	if got := s.ChargeGained(); got != 60 {
		t.Errorf("ChargeGained() = %d, want 60", got)
	}
	if s.ChargeGained() <= 0 {
		t.Error("ChargeGained() must be positive for a validated session")
	}
}
