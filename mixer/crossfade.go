// SPDX-License-Identifier: EPL-2.0

package mixer

import "math"

// EqualPowerGains maps a crossfader position to the deck A and deck B
// coefficients of the equal-power law: cos(p·π/2) and sin(p·π/2).
// p is clamped into [0, 1] first.
func EqualPowerGains(p float32) (a, b float32) {
	theta := float64(clampUnit(p)) * (math.Pi / 2)
	return float32(math.Cos(theta)), float32(math.Sin(theta))
}

// clampGain forces a gain to be non-negative. NaN maps to 0.
func clampGain(g float32) float32 {
	if !(g > 0) {
		return 0
	}

	return g
}

// clampUnit forces v into [0, 1]. NaN maps to 0.
func clampUnit(v float32) float32 {
	switch {
	case !(v > 0):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
