package pricing

import "math"

// Round2 rounds a euro amount to two decimal places, half up. The function is
// idempotent: Round2(Round2(x)) == Round2(x).
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Floor(x*100+0.5) / 100
}

// ToCents converts a euro amount to integer cents. For any finite x,
// ToCents(Round2(x)) == ToCents(x).
func ToCents(x float64) int64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int64(math.Floor(x*100 + 0.5))
}

// ClampNonNegative returns 0 for negative input, x otherwise.
func ClampNonNegative(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
