package charging

import (
	"strconv"
	"strings"
	"time"
)

// Session is the value the computation core works on. It mirrors a stored
// charging record but carries no storage concerns, so the aggregation stays
// pure and testable.
type Session struct {
	Date            time.Time
	StartTime       string // HH:MM
	EndTime         string // HH:MM
	StartPercentage int
	EndPercentage   int
	// EnergyKWh is a user-supplied reading. When set it is authoritative;
	// when nil the estimate from EnergyAddedKWh is used instead.
	EnergyKWh *float64
}

// ChargeGained returns the percentage points added during the session.
// Positive for any session that passed validation.
func (s Session) ChargeGained() int {
	return s.EndPercentage - s.StartPercentage
}

// Energy returns the session's energy in kWh: the user-supplied reading
// when present, otherwise the capacity-based estimate.
func (s Session) Energy(capacityKWh float64) float64 {
	if s.EnergyKWh != nil {
		return *s.EnergyKWh
	}
	return EnergyAddedKWh(s.StartPercentage, s.EndPercentage, capacityKWh)
}

// Summary holds the four display statistics derived from a session list.
type Summary struct {
	TotalChargingTime         string `json:"total_charging_time"`
	AverageChargePerSession   string `json:"average_charge_per_session"`
	MostFrequentChargingTimes string `json:"most_frequent_charging_times"`
	TotalEnergyConsumed       string `json:"total_energy_consumed"`
	SessionCount              int    `json:"session_count"`
}

// Summarize reduces a session list into display statistics. A session whose
// times cannot be parsed contributes nothing to the total time or the
// day-part counts but never aborts the rest of the batch. An empty list
// yields zero/"N/A" values rather than an error.
func Summarize(sessions []Session, capacityKWh float64) Summary {
	if len(sessions) == 0 {
		return Summary{
			TotalChargingTime:         FormatTotalMinutes(0),
			AverageChargePerSession:   "N/A",
			MostFrequentChargingTimes: "N/A",
			TotalEnergyConsumed:       FormatKWh(0),
		}
	}

	var (
		totalMinutes int
		gained       int
		energy       float64
	)
	counts := make(map[DayPart]int)

	for _, s := range sessions {
		if d, err := SessionDuration(s.Date, s.StartTime, s.EndTime); err == nil {
			totalMinutes += d.TotalMinutes()
		}
		gained += s.ChargeGained()
		energy += s.Energy(capacityKWh)
		if h, _, err := ParseClock("start time", s.StartTime); err == nil {
			counts[DayPartOf(h)]++
		}
	}

	avg := float64(gained) / float64(len(sessions))

	mostFrequent := "N/A"
	if part, ok := mostFrequentDayPart(counts); ok {
		mostFrequent = string(part)
	}

	return Summary{
		TotalChargingTime:         FormatTotalMinutes(totalMinutes),
		AverageChargePerSession:   strconv.FormatFloat(avg, 'f', 1, 64) + "%",
		MostFrequentChargingTimes: mostFrequent,
		TotalEnergyConsumed:       FormatKWh(energy),
		SessionCount:              len(sessions),
	}
}

// FormatTotalMinutes decomposes a minute total greedily into days, hours
// and minutes (1 day = 1440 minutes). Zero-valued day and hour units are
// omitted; the minute unit is always shown, so a zero total reads
// "0 minutes" and 1500 reads "1 day 1 hour 0 minutes".
func FormatTotalMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	days := total / 1440
	hours := (total % 1440) / 60
	minutes := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	parts = append(parts, plural(minutes, "minute"))
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
