// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/deejay"
	"github.com/ik5/deejay/control"
	"github.com/ik5/deejay/engine"
	"github.com/ik5/deejay/formats/wav"
	"github.com/ik5/deejay/mixer"
	"github.com/ik5/deejay/settings"
)

const channelCapacity = 64

type mixFlags struct {
	crossfader float64
	gainA      float64
	gainB      float64
	master     float64
}

// sweepSink moves the crossfader after every period according to how much
// audio has been written so far.
type sweepSink struct {
	deejay.Sink
	ctrl   *control.Controller
	sweep  control.Sweep
	rate   int
	frames int
}

func (s *sweepSink) Write(samples []float32) error {
	if err := s.Sink.Write(samples); err != nil {
		return err
	}

	s.frames += len(samples) / 2
	elapsed := time.Duration(s.frames) * time.Second / time.Duration(s.rate)
	s.ctrl.Flush()

	return s.ctrl.Set(mixer.Crossfader(s.sweep.Position(elapsed)))
}

func runRender(args []string, s settings.Settings, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pathA := fs.String("a", "", "file for deck A")
	pathB := fs.String("b", "", "file for deck B")
	out := fs.String("out", "mix.wav", "output WAV file")
	sweep := fs.Duration("sweep", 0, "crossfade from the -crossfader position to deck B over this much audio")
	var m mixFlags
	fs.Float64Var(&m.crossfader, "crossfader", 0.5, "crossfader position, 0 is deck A and 1 is deck B")
	fs.Float64Var(&m.gainA, "gain-a", 1, "deck A gain")
	fs.Float64Var(&m.gainB, "gain-b", 1, "deck B gain")
	fs.Float64Var(&m.master, "master", 1, "master gain")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := engine.ConfigFrom(s)
	decks, err := openDecks(cfg.SampleRate, logger, *pathA, *pathB)
	if err != nil {
		return err
	}

	tx, rx, err := mixer.NewParameterChannel(channelCapacity)
	if err != nil {
		closeAll(decks)
		return err
	}

	e, err := engine.New(cfg, rx, decks[0], decks[1])
	if err != nil {
		closeAll(decks)
		return err
	}
	defer e.Close()

	ctrl := control.NewController(tx)
	for _, u := range []mixer.Update{
		mixer.DeckGain(mixer.DeckA, float32(m.gainA)),
		mixer.DeckGain(mixer.DeckB, float32(m.gainB)),
		mixer.MasterGain(float32(m.master)),
		mixer.Crossfader(float32(m.crossfader)),
	} {
		if err := ctrl.Set(u); err != nil {
			return err
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *out, err)
	}
	defer f.Close()

	enc, err := wav.NewEncoder(f, cfg.SampleRate, 2)
	if err != nil {
		return err
	}

	var sink deejay.Sink = enc
	if *sweep > 0 {
		sink = &sweepSink{
			Sink:  enc,
			ctrl:  ctrl,
			sweep: control.Sweep{From: float32(m.crossfader), To: 1, Duration: *sweep},
			rate:  cfg.SampleRate,
		}
	}

	frames, err := deejay.Render(e, sink)
	if err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	logger.Info("render finished",
		"out", *out,
		"frames", frames,
		"seconds", float64(frames)/float64(cfg.SampleRate))

	return nil
}
