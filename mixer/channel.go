// SPDX-License-Identifier: EPL-2.0

package mixer

import "sync/atomic"

const cacheLine = 64

// ring is a bounded single-producer/single-consumer FIFO.
//
// head and tail are free-running counters; the slot index is counter % size.
// Only the producer stores tail and only the consumer stores head, so each
// side publishes its progress with a single atomic store. A slot is written
// before tail is advanced and read before head is advanced, which gives the
// other side a happens-before edge on the slot contents.
type ring struct {
	head atomic.Uint64
	_    [cacheLine - 8]byte
	tail atomic.Uint64
	_    [cacheLine - 8]byte

	size  uint64
	slots []Update
}

func (r *ring) push(u Update) bool {
	tail := r.tail.Load()
	if tail-r.head.Load() == r.size {
		return false
	}

	r.slots[tail%r.size] = u
	r.tail.Store(tail + 1)

	return true
}

func (r *ring) pop() (Update, bool) {
	head := r.head.Load()
	if head == r.tail.Load() {
		return Update{}, false
	}

	u := r.slots[head%r.size]
	r.head.Store(head + 1)

	return u, true
}

func (r *ring) len() int {
	// Load head first: tail only grows, so the difference never underflows.
	head := r.head.Load()
	return int(r.tail.Load() - head)
}

// Sender is the control-side end of a parameter channel. It must be used
// from one goroutine at a time.
type Sender struct {
	r *ring
}

// Receiver is the audio-side end of a parameter channel. It must be used
// from one goroutine at a time.
type Receiver struct {
	r *ring
}

// NewParameterChannel allocates a ring holding up to capacity pending
// updates and returns both of its ends.
func NewParameterChannel(capacity int) (*Sender, *Receiver, error) {
	if capacity < 1 {
		return nil, nil, ErrInvalidCapacity
	}

	r := &ring{
		size:  uint64(capacity),
		slots: make([]Update, capacity),
	}

	return &Sender{r: r}, &Receiver{r: r}, nil
}

// Send queues u if the ring has room. When the ring is full, u is returned
// unchanged together with ErrChannelFull and the caller decides whether to
// retry, drop or log it. Send never blocks.
func (s *Sender) Send(u Update) (Update, error) {
	if !s.r.push(u) {
		return u, ErrChannelFull
	}

	return Update{}, nil
}

func (s *Sender) Len() int { return s.r.len() }
func (s *Sender) Cap() int { return int(s.r.size) }

// Pop removes the oldest pending update. It reports false when the ring is
// empty and never blocks.
func (r *Receiver) Pop() (Update, bool) {
	return r.r.pop()
}

func (r *Receiver) Len() int { return r.r.len() }
func (r *Receiver) Cap() int { return int(r.r.size) }
