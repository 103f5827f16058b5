// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"

	"github.com/ik5/deejay/internal/audiotest"
)

type mockSource = audiotest.MockSource

var (
	newMockSource     = audiotest.NewMockSource
	newSilentSource   = audiotest.NewSilentSource
	newSineSource     = audiotest.NewSineSource
	newConstantSource = audiotest.NewConstantSource
)

// newRampSource emits frame/totalFrames offset by the channel index.
func newRampSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return float32(frame)/float32(totalFrames) + float32(channel)
	})
}

// readAll drains src with buffers of bufSize samples.
func readAll(src Source, bufSize int) ([]float32, error) {
	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
