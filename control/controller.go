// SPDX-License-Identifier: EPL-2.0

// Package control holds the control-thread side of the parameter channel.
//
// Everything here runs on the control goroutine and only touches the
// mixer.Sender; nothing in this package may be called from the audio
// goroutine.
package control

import (
	"errors"

	"github.com/ik5/deejay/mixer"
)

// Parameter slots. Each holds at most one coalesced value.
const (
	slotGainA = iota
	slotGainB
	slotCrossfader
	slotMaster

	numSlots
)

func slotOf(u mixer.Update) (int, bool) {
	switch u.Kind() {
	case mixer.KindDeckGain:
		switch u.Deck() {
		case mixer.DeckA:
			return slotGainA, true
		case mixer.DeckB:
			return slotGainB, true
		}
	case mixer.KindCrossfader:
		return slotCrossfader, true
	case mixer.KindMasterGain:
		return slotMaster, true
	}

	return 0, false
}

// Controller sends updates and keeps the newest value per parameter when
// the channel is full, so a burst of moves never loses the final position.
type Controller struct {
	tx      *mixer.Sender
	pending [numSlots]mixer.Update
	waiting [numSlots]bool
	dropped int
}

func NewController(tx *mixer.Sender) *Controller {
	return &Controller{tx: tx}
}

// Set sends u, or parks it until the next Flush if the channel is full.
// A parked value replaces any older parked value for the same parameter.
func (c *Controller) Set(u mixer.Update) error {
	slot, ok := slotOf(u)
	if !ok {
		return ErrInvalidUpdate
	}

	// An older value for this slot is still parked: sending u now would
	// let the older one overwrite it on the next Flush.
	if c.waiting[slot] {
		c.pending[slot] = u
		c.dropped++
		c.Flush()
		return nil
	}

	if _, err := c.tx.Send(u); errors.Is(err, mixer.ErrChannelFull) {
		c.pending[slot] = u
		c.waiting[slot] = true
	}

	return nil
}

// Flush retries parked values in slot order and returns how many are still
// parked.
func (c *Controller) Flush() int {
	for slot := range numSlots {
		if !c.waiting[slot] {
			continue
		}
		if _, err := c.tx.Send(c.pending[slot]); err != nil {
			break
		}
		c.waiting[slot] = false
	}

	return c.Pending()
}

// Pending counts parked values.
func (c *Controller) Pending() int {
	n := 0
	for _, w := range c.waiting {
		if w {
			n++
		}
	}

	return n
}

// Coalesced counts values that were superseded before reaching the bus.
func (c *Controller) Coalesced() int { return c.dropped }
