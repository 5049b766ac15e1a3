package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// ToUint8 rounds v half away from zero and clamps it into [0, 255].
// NaN maps to 0.
func ToUint8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}

	return uint8(Clamp(math.Round(v), 0, 255))
}

// Normalize maps an 8-bit sample into [0, 1].
func Normalize(v uint8) float64 {
	return float64(v) / 255
}
