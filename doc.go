// SPDX-License-Identifier: EPL-2.0

// Package deejay mixes two audio decks into one stereo output.
//
// The work is split between two goroutines. The audio goroutine owns a
// mixer.SummingBus (inside an engine.Engine) and renders fixed-size periods.
// The control goroutine owns the mixer.Sender end of a bounded parameter
// channel and moves gains and the crossfader through it; the bus picks the
// changes up at the start of the next period, without locks or allocation.
//
// # Packages
//
//   - mixer: the parameter channel, updates and the summing bus
//   - engine: decks and period rendering
//   - control: update coalescing and crossfader automation
//   - audio, formats/...: decoding, resampling and stereo conversion
//   - settings, bundle, crashlog, version: the command line tool's support
//
// # Offline rendering
//
//	tx, rx, _ := mixer.NewParameterChannel(64)
//	deckA, _ := deejay.OpenDeck(formats.NewRegistry(), "a.mp3", 48000)
//	deckB, _ := deejay.OpenDeck(formats.NewRegistry(), "b.ogg", 48000)
//	e, _ := engine.New(engine.Config{SampleRate: 48000, BufferFrames: 512}, rx, deckA, deckB)
//	defer e.Close()
//
//	_, _ = tx.Send(mixer.Crossfader(0.25))
//
//	out, _ := os.Create("mix.wav")
//	enc, _ := wav.NewEncoder(out, 48000, 2)
//	frames, err := deejay.Render(e, enc)
//
// Render stops when both decks are exhausted.
package deejay
