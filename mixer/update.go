// SPDX-License-Identifier: EPL-2.0

package mixer

import "fmt"

// DeckID selects one of the two inputs of the bus.
type DeckID uint8

const (
	DeckA DeckID = iota
	DeckB

	numDecks = 2
)

func (d DeckID) Valid() bool { return d < numDecks }

func (d DeckID) String() string {
	switch d {
	case DeckA:
		return "A"
	case DeckB:
		return "B"
	default:
		return fmt.Sprintf("DeckID(%d)", uint8(d))
	}
}

// Kind tags the variant carried by an Update.
type Kind uint8

const (
	KindNone Kind = iota
	KindDeckGain
	KindCrossfader
	KindMasterGain
)

func (k Kind) String() string {
	switch k {
	case KindDeckGain:
		return "DeckGain"
	case KindCrossfader:
		return "Crossfader"
	case KindMasterGain:
		return "MasterGain"
	default:
		return "None"
	}
}

// Update is a single parameter change travelling from the control side to
// the bus. It is a small value type so it can be copied through the ring
// without touching the heap. The zero Update carries KindNone and is ignored
// by the bus.
type Update struct {
	kind  Kind
	deck  DeckID
	value float32
}

// DeckGain sets the linear gain of one deck.
func DeckGain(deck DeckID, gain float32) Update {
	return Update{kind: KindDeckGain, deck: deck, value: gain}
}

// Crossfader sets the crossfader position, 0 is full A and 1 is full B.
func Crossfader(position float32) Update {
	return Update{kind: KindCrossfader, value: position}
}

// MasterGain sets the linear gain applied after the crossfader.
func MasterGain(gain float32) Update {
	return Update{kind: KindMasterGain, value: gain}
}

func (u Update) Kind() Kind     { return u.kind }
func (u Update) Value() float32 { return u.value }

// Deck is only meaningful for KindDeckGain.
func (u Update) Deck() DeckID { return u.deck }

func (u Update) String() string {
	switch u.kind {
	case KindDeckGain:
		return fmt.Sprintf("DeckGain{%s, %g}", u.deck, u.value)
	case KindCrossfader, KindMasterGain:
		return fmt.Sprintf("%s(%g)", u.kind, u.value)
	default:
		return "None"
	}
}
