// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// CubicInterpolate performs cubic interpolation
// x is the fractional position between y1 and y2 (0 <= x <= 1)
// y0, y1, y2, y3 are four consecutive samples
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	// Catmull-Rom spline interpolation
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}

// RoundToInt16 rounds a raw PCM value to the nearest int16, clamping to the
// int16 range. Cubic interpolation can overshoot the input range.
func RoundToInt16(x float32) int16 {
	r := math.Round(float64(x))
	if r > math.MaxInt16 {
		return math.MaxInt16
	}
	if r < math.MinInt16 {
		return math.MinInt16
	}

	return int16(r)
}

// Float32ToInt16 converts a normalized sample in [-1, 1] to int16 using the
// 32768 scale, so that int16 -> float32 -> int16 round-trips exactly.
func Float32ToInt16(x float32) int16 {
	v := float64(x) * 32768.0
	if v >= math.MaxInt16 {
		return math.MaxInt16
	}
	if v <= math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}
