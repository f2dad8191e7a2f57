package insights

import (
	"fmt"
	"strings"

	"github.com/abbaschallawala95/studio/internal/charging"
)

// promptHeader carries the fixed analysis instructions sent with every
// request. The numeric results shown in the app are computed locally; the
// model's reply is advisory prose only.
const promptHeader = `You are an AI assistant specializing in analyzing electric scooter charging data. Your task is to provide insightful summaries based on the user's charging history.

ASSUMPTIONS FOR CALCULATION:
- The electric scooter has an average battery capacity of 0.5 kWh (500Wh).

CALCULATIONS:
1. For each session, calculate the energy consumed in kWh. The formula is: (endPercentage - startPercentage) / 100 * 0.5 kWh.
2. Calculate 'totalChargingTime' by summing the duration of all sessions. Provide a human-readable format (e.g., "1 day 4 hours").
3. Calculate 'averageChargePerSession' as the average percentage points gained per session.
4. Calculate 'totalEnergyConsumed' by summing the energy consumed from all sessions. Format it to two decimal places (e.g., "1.23 kWh").
5. Determine the 'mostFrequentChargingTimes' by analyzing the start times of the sessions (e.g., "Late Evening").

Reply with a JSON object containing exactly these string fields:
"totalChargingTime", "averageChargePerSession", "mostFrequentChargingTimes", "totalEnergyConsumed".

USER DATA:
`

// BuildPrompt serializes the session list into the textual request for the
// narrative-generation service.
func BuildPrompt(sessions []charging.Session) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	for _, s := range sessions {
		fmt.Fprintf(&b, "- Date: %s, Start: %s (%d%%), End: %s (%d%%)\n",
			s.Date.Format("2006-01-02"),
			s.StartTime, s.StartPercentage,
			s.EndTime, s.EndPercentage)
	}
	return b.String()
}
