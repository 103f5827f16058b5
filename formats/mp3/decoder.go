// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/deejay/audio"
	"github.com/ik5/deejay/utils"
)

// go-mp3 always decodes to 16-bit little-endian interleaved stereo.
const (
	channels       = 2
	bytesPerSample = 2
)

// mp3Reader is the part of gomp3.Decoder used by source, to allow testing.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	eof        bool
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 4096*bytesPerSample),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	// Whole frames only, so a read never splits a left/right pair.
	want := len(dst) / channels * channels * bytesPerSample
	if want == 0 {
		return 0, nil
	}
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.dec, s.buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.eof = true
	case err != nil:
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	samples := n / bytesPerSample
	scale := 1 / utils.PCMScale(16)
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[i*2:]))) * scale
	}

	if s.eof {
		return samples, io.EOF
	}

	return samples, nil
}

// Decoder decodes MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}
