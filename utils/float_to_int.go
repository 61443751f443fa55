// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ScaleSample maps the mean of n samples nominally in [-1, 1] onto the
// signed integer range [lo, hi] as floor(hi * sum * gain / n), clamped.
// Pass n = 1 for a single sample. The operations run in that order so
// results match other peak generators bit for bit.
func ScaleSample(sum float64, n int, gain float64, lo, hi int) int {
	if n < 1 {
		n = 1
	}
	v := math.Floor(float64(hi) * sum * gain / float64(n))

	// NaN compares false against both bounds
	if !(v >= float64(lo)) {
		if math.IsNaN(v) {
			return 0
		}
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM, truncating
// toward zero.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * math.MaxInt16)
}
