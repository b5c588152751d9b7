// internal/predictor/health.go
package predictor

import "math"

// Sleep-based health heuristic. The optimal band earns the full boost;
// hours below it cost 5 points per missing hour, hours above cost 2 per
// excess hour, floored at zero.
const (
	optimalSleepMin       = 7.0
	optimalSleepMax       = 8.5
	maxHealthBoostPercent = 10.0
	deficitPenaltyPerHour = 5.0
	excessPenaltyPerHour  = 2.0
)

// HealthIncreasePercent maps average sleep hours to a projected health
// improvement percentage, rounded to one decimal place.
func HealthIncreasePercent(avgSleepHours float64) float64 {
	var increase float64
	switch {
	case avgSleepHours >= optimalSleepMin && avgSleepHours <= optimalSleepMax:
		increase = maxHealthBoostPercent
	case avgSleepHours < optimalSleepMin:
		deviation := optimalSleepMin - avgSleepHours
		increase = math.Max(0, maxHealthBoostPercent-deviation*deficitPenaltyPerHour)
	default:
		deviation := avgSleepHours - optimalSleepMax
		increase = math.Max(0, maxHealthBoostPercent-deviation*excessPenaltyPerHour)
	}
	return math.Round(increase*10) / 10
}
