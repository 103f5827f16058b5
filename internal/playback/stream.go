// SPDX-License-Identifier: EPL-2.0

// Package playback sends engine output to the sound card.
//
// The device pulls bytes from a Stream; each pull renders as many engine
// periods as it needs. The pull runs on the output library's goroutine,
// which makes it the audio thread.
package playback

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"
)

const bytesPerSample = 4

// Processor renders one period of interleaved stereo. engine.Engine
// implements it.
type Processor interface {
	Process(out []float32) (int, error)
}

// Stream encodes Processor output as float32 little-endian bytes.
type Stream struct {
	proc    Processor
	period  []float32
	encoded []byte
	pending []byte

	// err is only touched by the reading goroutine; final is its copy for
	// other goroutines.
	err   error
	mu    sync.Mutex
	final error
}

// NewStream renders periodFrames frames per Process call.
func NewStream(proc Processor, periodFrames int) *Stream {
	return &Stream{
		proc:    proc,
		period:  make([]float32, periodFrames*2),
		encoded: make([]byte, periodFrames*2*bytesPerSample),
	}
}

// Read fills p with whole samples. It returns io.EOF after the last
// rendered frame has been handed out.
func (s *Stream) Read(p []byte) (int, error) {
	n := 0
	for n+bytesPerSample <= len(p) {
		if len(s.pending) == 0 {
			if s.err != nil {
				break
			}
			s.render()
			if len(s.pending) == 0 {
				break
			}
		}

		c := copy(p[n:len(p)/bytesPerSample*bytesPerSample], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 && s.err != nil {
		return 0, s.err
	}

	return n, nil
}

func (s *Stream) render() {
	frames, err := s.proc.Process(s.period)
	if err != nil {
		s.err = err
		s.mu.Lock()
		s.final = err
		s.mu.Unlock()
	}

	samples := s.period[:frames*2]
	for i, v := range samples {
		binary.LittleEndian.PutUint32(s.encoded[i*bytesPerSample:], math.Float32bits(v))
	}
	s.pending = s.encoded[:len(samples)*bytesPerSample]
}

// Err returns the error that ended the stream, nil for a clean end of both
// decks or while still playing. It is safe to call from any goroutine.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if errors.Is(s.final, io.EOF) {
		return nil
	}

	return s.final
}
