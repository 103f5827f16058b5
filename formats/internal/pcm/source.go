// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM decoders of github.com/go-audio to the
// float32 audio.Source contract.
package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/deejay/utils"
)

// Reader is the part of go-audio's wav.Decoder and aiff.Decoder that
// produces samples. It is an interface to allow testing.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams normalised float32 samples out of a Reader.
type Source struct {
	dec      Reader
	format   *goaudio.Format
	bitDepth int
	buf      *goaudio.IntBuffer
	eof      bool
}

func NewSource(dec Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 4096),
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BufSize() int    { return cap(s.buf.Data) }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w", err)
	}

	scale := 1 / utils.PCMScale(s.bitDepth)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) * scale
	}

	// go-audio signals the end of data with a short read.
	if err != nil || n < len(dst) {
		s.eof = true
		return n, io.EOF
	}

	return n, nil
}
