// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/deejay/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader used by source, to allow testing.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source copies straight into dst: oggvorbis already yields interleaved
// float32 in [-1, 1].
type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	eof        bool
}

func newSource(dec oggReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}
	if s.channels < 1 {
		return 0, audio.ErrNoChannels
	}

	dst = dst[:len(dst)/s.channels*s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	// Read returns samples, not frames, and may stop at a packet boundary.
	n, err := s.dec.Read(dst)
	switch {
	case errors.Is(err, io.EOF):
		s.eof = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}

	return n, nil
}

// Decoder decodes Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}
