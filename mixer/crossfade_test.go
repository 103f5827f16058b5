// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"math"
	"testing"
)

func TestEqualPowerGains_KnownPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		p     float32
		wantA float32
		wantB float32
	}{
		{name: "full A", p: 0, wantA: 1, wantB: 0},
		{name: "center", p: 0.5, wantA: math.Sqrt2 / 2, wantB: math.Sqrt2 / 2},
		{name: "full B", p: 1, wantA: 0, wantB: 1},
		{name: "quarter", p: 0.25, wantA: float32(math.Cos(math.Pi / 8)), wantB: float32(math.Sin(math.Pi / 8))},
		{name: "clamped low", p: -1, wantA: 1, wantB: 0},
		{name: "clamped high", p: 2, wantA: 0, wantB: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, b := EqualPowerGains(tt.p)
			if !approxEqual(a, tt.wantA) || !approxEqual(b, tt.wantB) {
				t.Errorf("EqualPowerGains(%v) = (%v, %v), want (%v, %v)", tt.p, a, b, tt.wantA, tt.wantB)
			}
		})
	}
}

func TestEqualPowerGains_ConstantPower(t *testing.T) {
	t.Parallel()

	for i := 0; i <= 1000; i++ {
		p := float32(i) / 1000
		a, b := EqualPowerGains(p)

		power := float64(a)*float64(a) + float64(b)*float64(b)
		if math.Abs(power-1) > 1e-6 {
			t.Fatalf("EqualPowerGains(%v): a²+b² = %v, want 1", p, power)
		}
	}
}

func TestEqualPowerGains_Monotonic(t *testing.T) {
	t.Parallel()

	prevA, prevB := EqualPowerGains(0)
	for i := 1; i <= 100; i++ {
		a, b := EqualPowerGains(float32(i) / 100)
		if a > prevA || b < prevB {
			t.Fatalf("step %d: A %v -> %v, B %v -> %v", i, prevA, a, prevB, b)
		}
		prevA, prevB = a, b
	}
}

func TestClampGain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want float32
	}{
		{in: -1, want: 0},
		{in: 0, want: 0},
		{in: 0.5, want: 0.5},
		{in: 3, want: 3},
		{in: float32(math.Inf(-1)), want: 0},
		{in: float32(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		if got := clampGain(tt.in); got != tt.want {
			t.Errorf("clampGain(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
