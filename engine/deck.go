// SPDX-License-Identifier: EPL-2.0

package engine

import "github.com/ik5/deejay/audio"

// Deck brings a decoded source to the session format: sampleRate Hz,
// interleaved stereo. Rate conversion runs first so mono files are
// resampled before being doubled.
func Deck(src audio.Source, sampleRate int) audio.Source {
	if src.SampleRate() != sampleRate {
		src = audio.NewResampler(src, sampleRate)
	}
	if src.Channels() != 2 {
		src = audio.NewStereoAdapter(src)
	}

	return src
}
