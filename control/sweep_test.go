// SPDX-License-Identifier: EPL-2.0

package control

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ik5/deejay/mixer"
)

func TestSweep_Position(t *testing.T) {
	t.Parallel()

	s := Sweep{From: 0.2, To: 1, Duration: 4 * time.Second}

	tests := []struct {
		elapsed time.Duration
		want    float32
	}{
		{elapsed: -time.Second, want: 0.2},
		{elapsed: 0, want: 0.2},
		{elapsed: time.Second, want: 0.4},
		{elapsed: 2 * time.Second, want: 0.6},
		{elapsed: 4 * time.Second, want: 1},
		{elapsed: time.Minute, want: 1},
	}

	for _, tt := range tests {
		if got := s.Position(tt.elapsed); math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("Position(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}

	if got := (Sweep{From: 0, To: 0.7}).Position(0); got != 0.7 {
		t.Errorf("zero-duration Position() = %v, want 0.7", got)
	}
}

func TestRun_ReachesEachEnd(t *testing.T) {
	t.Parallel()

	c, rx := newPair(t, 1024)

	err := Run(context.Background(), c, time.Millisecond,
		Sweep{From: 0, To: 1, Duration: 10 * time.Millisecond},
		Sweep{From: 1, To: 0.5, Duration: 5 * time.Millisecond},
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := drain(rx)
	if len(got) < 4 {
		t.Fatalf("received %d updates, want a stream", len(got))
	}
	if got[0] != mixer.Crossfader(0) {
		t.Errorf("first = %v, want Crossfader(0)", got[0])
	}
	if last := got[len(got)-1]; last != mixer.Crossfader(0.5) {
		t.Errorf("last = %v, want Crossfader(0.5)", last)
	}

	sawEnd := false
	for _, u := range got {
		if u.Kind() != mixer.KindCrossfader {
			t.Fatalf("unexpected update %v", u)
		}
		sawEnd = sawEnd || u.Value() == 1
	}
	if !sawEnd {
		t.Error("first sweep never reached 1")
	}
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	c, _ := newPair(t, 1024)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	err := Run(ctx, c, time.Millisecond, Sweep{From: 0, To: 1, Duration: time.Hour})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestRun_InvalidTick(t *testing.T) {
	t.Parallel()

	c, _ := newPair(t, 1)
	if err := Run(context.Background(), c, 0); !errors.Is(err, ErrInvalidTick) {
		t.Errorf("Run() error = %v, want ErrInvalidTick", err)
	}
}
