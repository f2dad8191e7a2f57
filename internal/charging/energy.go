package charging

import "strconv"

// DefaultBatteryCapacityKWh is the assumed pack size of a typical small
// electric scooter (500 Wh). The effective value comes from configuration;
// this is only the fallback.
const DefaultBatteryCapacityKWh = 0.5

// EnergyAddedKWh estimates the energy added during a session from the
// percentage delta and the battery capacity. The result is unrounded;
// callers that aggregate must sum raw values and format only the final
// total so rounding error does not compound.
//
// A negative result means endPct <= startPct, which validation should have
// rejected upstream; callers must treat it as a data-integrity error.
func EnergyAddedKWh(startPct, endPct int, capacityKWh float64) float64 {
	if capacityKWh <= 0 {
		capacityKWh = DefaultBatteryCapacityKWh
	}
	return float64(endPct-startPct) / 100 * capacityKWh
}

// FormatKWh renders an energy value for display: two decimals plus unit.
func FormatKWh(kwh float64) string {
	return strconv.FormatFloat(kwh, 'f', 2, 64) + " kWh"
}
