package charging

// DayPart labels the time of day a charging session starts.
type DayPart string

const (
	Morning     DayPart = "Morning"      // 05:00-11:59
	Afternoon   DayPart = "Afternoon"    // 12:00-16:59
	Evening     DayPart = "Evening"      // 17:00-20:59
	LateEvening DayPart = "Late Evening" // 21:00-23:59
	Overnight   DayPart = "Overnight"    // 00:00-04:59
)

// dayPartOrder is the canonical ordering used to break ties when two
// buckets have the same session count.
var dayPartOrder = []DayPart{Morning, Afternoon, Evening, LateEvening, Overnight}

// DayPartOf buckets a start hour into its day-part label.
func DayPartOf(hour int) DayPart {
	switch {
	case hour >= 5 && hour <= 11:
		return Morning
	case hour >= 12 && hour <= 16:
		return Afternoon
	case hour >= 17 && hour <= 20:
		return Evening
	case hour >= 21:
		return LateEvening
	default:
		return Overnight
	}
}

// mostFrequentDayPart returns the bucket with the highest count. Ties go to
// the bucket that comes first in the canonical ordering, so the result is
// deterministic.
func mostFrequentDayPart(counts map[DayPart]int) (DayPart, bool) {
	var best DayPart
	bestCount := 0
	for _, p := range dayPartOrder {
		if counts[p] > bestCount {
			best = p
			bestCount = counts[p]
		}
	}
	return best, bestCount > 0
}
