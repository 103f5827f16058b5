// SPDX-License-Identifier: EPL-2.0

// Package mixer provides the two-deck stereo summing bus and the lock-free
// parameter channel that feeds it.
//
// The package is split along the two execution contexts of an audio
// application:
//   - The control side (UI, MIDI, automation) owns a Sender and pushes
//     Update values at any rate.
//   - The audio side owns the SummingBus, which holds the Receiver and
//     drains it at the start of every MixStereo call.
//
// Neither side ever blocks on the other. The channel is a bounded
// single-producer/single-consumer ring; it never allocates after creation.
//
// # Creating a Bus
//
//	tx, rx, err := mixer.NewParameterChannel(64)
//	if err != nil {
//	    // capacity was < 1
//	}
//	bus := mixer.NewSummingBus(rx)
//
// # Sending Updates
//
// Updates are plain values built by DeckGain, Crossfader and MasterGain:
//
//	if rejected, err := tx.Send(mixer.Crossfader(0.25)); err != nil {
//	    // ring is full, rejected is the value that was not queued
//	    retryNextTick(rejected)
//	}
//
// A full ring drops the newest update. Parameters are "latest value wins"
// state, so the control side should retry on its next tick instead of
// treating the failure as fatal (see the control package).
//
// # Mixing
//
// MixStereo is called once per audio-callback period with three interleaved
// stereo buffers of equal, even length:
//
//	bus.MixStereo(deckA, deckB, out)
//
// It first applies every pending update in arrival order, then writes
//
//	out = deckA*gainA + deckB*gainB
//
// where gainX = deckGain[X] * crossfade[X] * masterGain. Mismatched or
// odd-length buffers are programming errors and panic.
//
// # Crossfader Law
//
// The crossfader uses an equal-power law. A position p in [0, 1] maps to the
// angle p*π/2; deck A is scaled by its cosine and deck B by its sine, so
// gainA² + gainB² is always 1 and perceived loudness stays constant across
// the sweep.
//
// # Clamping
//
// Out-of-range parameters are not errors. Negative (and NaN) gains become 0
// and crossfader positions are clamped into [0, 1].
package mixer
