// SPDX-License-Identifier: EPL-2.0

// Package console turns key presses on a raw terminal into parameter
// updates.
package console

import (
	"fmt"

	"github.com/ik5/deejay/mixer"
)

// MaxGain caps gains reachable from the keyboard.
const MaxGain = 2

// State mirrors what the control side last asked the bus for.
type State struct {
	GainA      float32
	GainB      float32
	Crossfader float32
	Master     float32
}

// DefaultState matches a freshly built mixer.SummingBus.
func DefaultState() State {
	return State{GainA: 1, GainB: 1, Crossfader: 0.5, Master: 1}
}

func (s State) String() string {
	return fmt.Sprintf("A %.2f  B %.2f  X %.2f  M %.2f", s.GainA, s.GainB, s.Crossfader, s.Master)
}

type Action uint8

const (
	ActionNone Action = iota
	ActionUpdate
	ActionQuit
)

const ctrlC = 0x03

// Keymap binds keys to parameter moves of a fixed step:
//
//	a / z   deck A gain up / down
//	s / x   deck B gain up / down
//	, / .   crossfader toward A / toward B
//	+ / -   master up / down (= works as +)
//	c       center the crossfader
//	q       quit (Ctrl-C too)
type Keymap struct {
	GainStep       float32
	CrossfaderStep float32
}

func DefaultKeymap() Keymap {
	return Keymap{GainStep: 0.05, CrossfaderStep: 0.05}
}

// Apply returns the state after key and the update to send for it. The
// update is only meaningful when the action is ActionUpdate.
func (k Keymap) Apply(s State, key byte) (State, mixer.Update, Action) {
	switch key {
	case 'a':
		s.GainA = clamp(s.GainA+k.GainStep, 0, MaxGain)
		return s, mixer.DeckGain(mixer.DeckA, s.GainA), ActionUpdate
	case 'z':
		s.GainA = clamp(s.GainA-k.GainStep, 0, MaxGain)
		return s, mixer.DeckGain(mixer.DeckA, s.GainA), ActionUpdate
	case 's':
		s.GainB = clamp(s.GainB+k.GainStep, 0, MaxGain)
		return s, mixer.DeckGain(mixer.DeckB, s.GainB), ActionUpdate
	case 'x':
		s.GainB = clamp(s.GainB-k.GainStep, 0, MaxGain)
		return s, mixer.DeckGain(mixer.DeckB, s.GainB), ActionUpdate
	case ',':
		s.Crossfader = clamp(s.Crossfader-k.CrossfaderStep, 0, 1)
		return s, mixer.Crossfader(s.Crossfader), ActionUpdate
	case '.':
		s.Crossfader = clamp(s.Crossfader+k.CrossfaderStep, 0, 1)
		return s, mixer.Crossfader(s.Crossfader), ActionUpdate
	case 'c':
		s.Crossfader = 0.5
		return s, mixer.Crossfader(s.Crossfader), ActionUpdate
	case '+', '=':
		s.Master = clamp(s.Master+k.GainStep, 0, MaxGain)
		return s, mixer.MasterGain(s.Master), ActionUpdate
	case '-':
		s.Master = clamp(s.Master-k.GainStep, 0, MaxGain)
		return s, mixer.MasterGain(s.Master), ActionUpdate
	case 'q', ctrlC:
		return s, mixer.Update{}, ActionQuit
	}

	return s, mixer.Update{}, ActionNone
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
