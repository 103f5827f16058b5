// SPDX-License-Identifier: EPL-2.0

// Package engine pulls periods from two decks through a mixer.SummingBus.
//
// An Engine is driven from a single goroutine, the audio thread. It is the
// only reader of the parameter channel; the control side keeps the matching
// Sender.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/deejay/audio"
	"github.com/ik5/deejay/mixer"
	"github.com/ik5/deejay/settings"
)

// Bounds reads that make no progress before giving up on a deck.
const maxEmptyReads = 100

// Config sizes an Engine.
type Config struct {
	SampleRate   int
	BufferFrames int
}

// ConfigFrom derives a Config from persisted settings.
func ConfigFrom(s settings.Settings) Config {
	return Config{
		SampleRate:   int(s.SampleRate),
		BufferFrames: int(s.BufferFrames),
	}
}

func (c Config) Validate() error {
	if c.SampleRate < 1 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.BufferFrames < 1 {
		return fmt.Errorf("%w: buffer frames %d", ErrInvalidConfig, c.BufferFrames)
	}

	return nil
}

type deck struct {
	src  audio.Source
	buf  []float32
	done bool
}

// fill reads whole frames into d.buf, zero-filling anything the source
// could not supply. It returns the number of frames the source produced.
func (d *deck) fill(frames int) (int, error) {
	buf := d.buf[:frames*2]
	got := 0
	empty := 0

	for !d.done && got < len(buf) {
		n, err := d.src.ReadSamples(buf[got:])
		got += n

		switch {
		case errors.Is(err, io.EOF):
			d.done = true
		case err != nil:
			return got / 2, fmt.Errorf("%w", err)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				return got / 2, io.ErrNoProgress
			}
		default:
			empty = 0
		}
	}

	clear(buf[got:])

	return got / 2, nil
}

// Engine mixes two stereo decks at a fixed period size.
type Engine struct {
	cfg   Config
	bus   *mixer.SummingBus
	decks [2]deck
}

// New builds an Engine reading parameter updates from rx. Both decks must
// already be stereo at cfg.SampleRate (see Deck). A nil deck plays silence.
func New(cfg Config, rx *mixer.Receiver, deckA, deckB audio.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg: cfg,
		bus: mixer.NewSummingBus(rx),
	}

	for i, src := range []audio.Source{deckA, deckB} {
		d := &e.decks[i]
		d.buf = make([]float32, cfg.BufferFrames*2)
		d.src = src
		if src == nil {
			d.done = true
			continue
		}
		if src.Channels() != 2 || src.SampleRate() != cfg.SampleRate {
			return nil, fmt.Errorf("%w: deck %s is %d Hz/%d ch, session is %d Hz/2 ch",
				ErrDeckFormat, mixer.DeckID(i), src.SampleRate(), src.Channels(), cfg.SampleRate)
		}
	}

	return e, nil
}

func (e *Engine) Config() Config { return e.cfg }

// Bus exposes the bus for inspection. Only call its accessors from the
// goroutine driving Process.
func (e *Engine) Bus() *mixer.SummingBus { return e.bus }

// Done reports whether both decks are exhausted.
func (e *Engine) Done() bool {
	return e.decks[0].done && e.decks[1].done
}

// Process renders up to BufferFrames frames into out, which must hold whole
// stereo frames. Pending parameter updates are applied first. It returns
// the number of frames carrying deck audio and io.EOF once both decks are
// exhausted. Samples of out past BufferFrames frames are zeroed.
func (e *Engine) Process(out []float32) (int, error) {
	if len(out)%2 != 0 {
		return 0, ErrOutputSize
	}

	frames := min(len(out)/2, e.cfg.BufferFrames)
	clear(out[frames*2:])
	out = out[:frames*2]

	produced := 0
	for i := range e.decks {
		n, err := e.decks[i].fill(frames)
		if err != nil {
			return 0, fmt.Errorf("deck %s: %w", mixer.DeckID(i), err)
		}
		produced = max(produced, n)
	}

	e.bus.MixStereo(e.decks[0].buf[:frames*2], e.decks[1].buf[:frames*2], out)

	if e.Done() {
		return produced, io.EOF
	}

	return produced, nil
}

// Close closes both decks.
func (e *Engine) Close() error {
	var errs []error
	for _, d := range e.decks {
		if d.src != nil {
			if err := d.src.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}
