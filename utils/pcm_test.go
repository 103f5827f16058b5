// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "full scale", input: 1, want: math.MaxInt16},
		{name: "negative full scale", input: -1, want: -math.MaxInt16},
		{name: "half", input: 0.5, want: 16384},
		{name: "negative half", input: -0.5, want: -16384},
		{name: "clamp over", input: 1.5, want: math.MaxInt16},
		{name: "clamp under", input: -7, want: -math.MaxInt16},
		{name: "NaN", input: float32(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToPCM_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		want     int
	}{
		{bitDepth: 8, want: 127},
		{bitDepth: 16, want: 32767},
		{bitDepth: 24, want: 8388607},
		{bitDepth: 32, want: 2147483647},
		{bitDepth: 12, want: 32767},
	}

	for _, tt := range tests {
		if got := Float32ToPCM(1, tt.bitDepth); got != tt.want {
			t.Errorf("Float32ToPCM(1, %d) = %d, want %d", tt.bitDepth, got, tt.want)
		}
		if got := Float32ToPCM(-1, tt.bitDepth); got != -tt.want {
			t.Errorf("Float32ToPCM(-1, %d) = %d, want %d", tt.bitDepth, got, -tt.want)
		}
	}
}

func TestPCMToFloat32(t *testing.T) {
	t.Parallel()

	if got := PCMToFloat32(-32768, 16); got != -1 {
		t.Errorf("PCMToFloat32(-32768, 16) = %v, want -1", got)
	}
	if got := PCMToFloat32(64, 8); got != 0.5 {
		t.Errorf("PCMToFloat32(64, 8) = %v, want 0.5", got)
	}
	if got := PCMToFloat32(0, 24); got != 0 {
		t.Errorf("PCMToFloat32(0, 24) = %v, want 0", got)
	}
}

func TestPCMRoundTrip(t *testing.T) {
	t.Parallel()

	for v := -32767; v <= 32767; v += 97 {
		f := PCMToFloat32(v, 16)
		// The decode scale is 32768 and the encode scale 32767, so allow one
		// step of drift at the extremes.
		if got := int(Float32ToInt16(f)); got-v > 1 || v-got > 1 {
			t.Fatalf("round trip of %d gave %d", v, got)
		}
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = Float32ToInt16(0.25)
	})

	if allocs != 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	samples := make([]float32, 4096)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.01))
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, s := range samples {
			_ = Float32ToInt16(s)
		}
	}
}
