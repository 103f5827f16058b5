// SPDX-License-Identifier: EPL-2.0

package control

import (
	"context"
	"time"

	"github.com/ik5/deejay/mixer"
)

// Sweep moves the crossfader linearly from From to To over Duration.
type Sweep struct {
	From     float32
	To       float32
	Duration time.Duration
}

// Position is the crossfader value elapsed into the sweep.
func (s Sweep) Position(elapsed time.Duration) float32 {
	if s.Duration <= 0 || elapsed >= s.Duration {
		return s.To
	}
	if elapsed <= 0 {
		return s.From
	}

	t := float32(float64(elapsed) / float64(s.Duration))
	return s.From + (s.To-s.From)*t
}

// Run plays the sweeps one after another, sending a crossfader update and
// flushing parked values every tick. It returns nil after the last sweep
// reaches its end value, or the context error when ctx is done first.
// Values still parked in ctrl when Run returns go out on a later Flush.
func Run(ctx context.Context, ctrl *Controller, tick time.Duration, steps ...Sweep) error {
	if tick <= 0 {
		return ErrInvalidTick
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for _, step := range steps {
		if err := runSweep(ctx, ctrl, ticker.C, step); err != nil {
			return err
		}
	}

	return nil
}

func runSweep(ctx context.Context, ctrl *Controller, ticks <-chan time.Time, step Sweep) error {
	if err := ctrl.Set(mixer.Crossfader(step.From)); err != nil {
		return err
	}

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticks:
			elapsed := now.Sub(start)
			ctrl.Flush()
			if err := ctrl.Set(mixer.Crossfader(step.Position(elapsed))); err != nil {
				return err
			}
			if elapsed >= step.Duration {
				return nil
			}
		}
	}
}
