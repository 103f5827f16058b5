// SPDX-License-Identifier: EPL-2.0

package deejay

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/deejay/engine"
	"github.com/ik5/deejay/utils"
)

// Sink receives rendered periods of interleaved stereo. wav.Encoder is one.
type Sink interface {
	Write(samples []float32) error
}

// Render runs e until both decks are exhausted, writing every period to
// sink. It returns the number of frames written.
func Render(e *engine.Engine, sink Sink) (int, error) {
	buf := make([]float32, e.Config().BufferFrames*2)
	total := 0

	for {
		n, err := e.Process(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return total, fmt.Errorf("rendering: %w", err)
		}

		if n > 0 {
			if werr := sink.Write(buf[:n*2]); werr != nil {
				return total, fmt.Errorf("writing mix: %w", werr)
			}
			total += n
		}

		if err != nil {
			return total, nil
		}
	}
}

// pcm16Sink collects clipped 16-bit samples in memory.
type pcm16Sink struct {
	samples []int16
}

func (s *pcm16Sink) Write(samples []float32) error {
	for _, v := range samples {
		s.samples = append(s.samples, utils.Float32ToInt16(v))
	}

	return nil
}

// RenderStereo16 renders e into memory as interleaved 16-bit PCM.
func RenderStereo16(e *engine.Engine) ([]int16, error) {
	sink := &pcm16Sink{}
	if _, err := Render(e, sink); err != nil {
		return nil, err
	}

	return sink.samples, nil
}
