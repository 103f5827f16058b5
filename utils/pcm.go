// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and rounds it to 16-bit PCM. The scale
// is symmetric (±32767) so that 1 and -1 mirror each other.
func Float32ToInt16(x float32) int16 {
	return int16(Float32ToPCM(x, 16))
}

// Float32ToPCM clamps x to [-1, 1] and rounds it to a signed integer sample
// of the given bit depth (8 to 32).
func Float32ToPCM(x float32, bitDepth int) int {
	switch {
	case x != x:
		x = 0
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	peak := float64(PCMScale(bitDepth)) - 1
	return int(math.Round(float64(x) * peak))
}

// PCMToFloat32 normalises a signed integer sample of the given bit depth
// into [-1, 1).
func PCMToFloat32(v int, bitDepth int) float32 {
	return float32(float64(v) / float64(PCMScale(bitDepth)))
}

// PCMScale returns 2^(bitDepth-1), the magnitude of the most negative sample.
// Unknown depths fall back to 16 bits.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128
	case 16:
		return 32768
	case 24:
		return 8388608
	case 32:
		return 2147483648
	default:
		return 32768
	}
}
