// SPDX-License-Identifier: EPL-2.0

package mixer

// SummingBus mixes two interleaved stereo decks into one output through
// per-deck gains, an equal-power crossfader and a master gain.
//
// All fields are owned by the goroutine calling MixStereo. The control side
// only reaches them through the parameter channel.
type SummingBus struct {
	deckGains  [numDecks]float32
	crossfader float32
	masterGain float32

	params *Receiver
}

// NewSummingBus returns a bus with unity deck gains, a centered crossfader
// and unity master gain, fed by params.
func NewSummingBus(params *Receiver) *SummingBus {
	return &SummingBus{
		deckGains:  [numDecks]float32{1, 1},
		crossfader: 0.5,
		masterGain: 1,
		params:     params,
	}
}

func (b *SummingBus) DeckGain(deck DeckID) float32 {
	if !deck.Valid() {
		return 0
	}
	return b.deckGains[deck]
}

func (b *SummingBus) Crossfader() float32 { return b.crossfader }
func (b *SummingBus) MasterGain() float32 { return b.masterGain }

// Gains returns the effective per-deck scalars for the current state,
// without draining pending updates.
func (b *SummingBus) Gains() (gainA, gainB float32) {
	xfA, xfB := EqualPowerGains(b.crossfader)
	gainA = b.deckGains[DeckA] * xfA * b.masterGain
	gainB = b.deckGains[DeckB] * xfB * b.masterGain

	return gainA, gainB
}

// apply folds one update into the bus state.
func (b *SummingBus) apply(u Update) {
	switch u.kind {
	case KindDeckGain:
		if u.deck.Valid() {
			b.deckGains[u.deck] = clampGain(u.value)
		}
	case KindCrossfader:
		b.crossfader = clampUnit(u.value)
	case KindMasterGain:
		b.masterGain = clampGain(u.value)
	case KindNone:
	}
}

// drain applies every update currently queued, oldest first, and returns
// how many were applied.
func (b *SummingBus) drain() int {
	if b.params == nil {
		return 0
	}

	n := 0
	for {
		u, ok := b.params.Pop()
		if !ok {
			return n
		}
		b.apply(u)
		n++
	}
}

// MixStereo drains pending parameter updates and writes
// out = deckA*gainA + deckB*gainB for every sample.
//
// All three buffers must have the same even length; each consecutive pair of
// samples is one left/right frame. Any other shape is a programming error
// and panics. MixStereo does not allocate.
func (b *SummingBus) MixStereo(deckA, deckB, out []float32) {
	if len(deckA) != len(deckB) {
		panic("mixer: deck buffers must have equal length")
	}
	if len(deckA) != len(out) {
		panic("mixer: output buffer must match deck length")
	}
	if len(deckA)%2 != 0 {
		panic("mixer: buffers must contain interleaved stereo frames")
	}

	b.drain()
	gainA, gainB := b.Gains()

	// Re-slice so the compiler can drop bounds checks in the loop.
	deckB = deckB[:len(deckA)]
	out = out[:len(deckA)]

	for i := 0; i < len(deckA); i += 2 {
		out[i] = deckA[i]*gainA + deckB[i]*gainB
		out[i+1] = deckA[i+1]*gainA + deckB[i+1]*gainB
	}
}
