package planner

import "math"

// Round rounds half up to the nearest integer, the way displayed figures are rounded.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Floor(x + 0.5)
}

// Ceil rounds a monthly contribution up so the target is never undershot.
func Ceil(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Ceil(x)
}

// Percent returns round(part/whole*100), or 0 when whole is not positive.
func Percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return Round(part / whole * 100)
}

// Clamp limits a percentage to [0, 100].
func Clamp(pct float64) float64 {
	return math.Max(0, math.Min(100, pct))
}
