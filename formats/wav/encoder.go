// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/deejay/utils"
)

// Encoder writes interleaved float32 samples as 16-bit PCM to a seekable
// writer. The header sizes are patched in on Close.
type Encoder struct {
	enc    *gowav.Encoder
	buf    *goaudio.IntBuffer
	closed bool
}

func NewEncoder(w io.WriteSeeker, sampleRate, channels int) (*Encoder, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	format := &goaudio.Format{NumChannels: channels, SampleRate: sampleRate}

	return &Encoder{
		enc: gowav.NewEncoder(w, sampleRate, 16, channels, formatPCM),
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 0, 4096),
			SourceBitDepth: 16,
		},
	}, nil
}

// Write appends samples. Values outside [-1, 1] are clipped.
func (e *Encoder) Write(samples []float32) error {
	if e.closed {
		return ErrEncoderClosed
	}
	if len(samples) == 0 {
		return nil
	}

	if cap(e.buf.Data) < len(samples) {
		e.buf.Data = make([]int, len(samples))
	}
	e.buf.Data = e.buf.Data[:len(samples)]

	for i, s := range samples {
		e.buf.Data[i] = utils.Float32ToPCM(s, 16)
	}

	if err := e.enc.Write(e.buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close finalises the file. It does not close the underlying writer.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
