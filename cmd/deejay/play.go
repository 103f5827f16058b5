// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/ik5/deejay/control"
	"github.com/ik5/deejay/crashlog"
	"github.com/ik5/deejay/engine"
	"github.com/ik5/deejay/internal/console"
	"github.com/ik5/deejay/internal/playback"
	"github.com/ik5/deejay/mixer"
	"github.com/ik5/deejay/settings"
	"github.com/ik5/deejay/version"
)

const keyHelp = "a/z deck A  s/x deck B  ,/. crossfader  c center  +/- master  q quit"

// crashGuard records panics raised on the audio thread, which belongs to
// the output library and so never passes through main.
type crashGuard struct {
	proc    playback.Processor
	path    string
	version string
}

func (g crashGuard) Process(out []float32) (int, error) {
	defer crashlog.Recover(g.path, g.version)

	return g.proc.Process(out)
}

func runPlay(args []string, s settings.Settings, crashLog string, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pathA := fs.String("a", "", "file for deck A")
	pathB := fs.String("b", "", "file for deck B")

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

	if s.Device != "default" {
		logger.Warn("output goes to the system default device", "device", s.Device)
	}

	guarded := crashGuard{proc: e, path: crashLog, version: version.Current()}
	stream := playback.NewStream(guarded, cfg.BufferFrames)
	player, err := playback.Open(cfg.SampleRate, cfg.BufferFrames, stream)
	if err != nil {
		return err
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	player.Play()

	// Ends the session once both decks have played out.
	go func() {
		defer crashlog.Recover(crashLog, version.Current())

		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !player.Playing() {
					cancel()
					return
				}
			}
		}
	}()

	fmt.Fprintln(stdout, keyHelp)
	if err := console.New(control.NewController(tx), console.DefaultKeymap()).Run(ctx, stdin, stdout); err != nil {
		return err
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	return nil
}
