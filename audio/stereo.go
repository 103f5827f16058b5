// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoAdapter presents any source as interleaved stereo.
//
// Mono is copied to both sides, stereo passes through, and wider layouts
// are folded by averaging even-indexed channels into left and odd-indexed
// channels into right.
type StereoAdapter struct {
	src Source
	tmp []float32
}

func NewStereoAdapter(src Source) *StereoAdapter {
	return &StereoAdapter{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (s *StereoAdapter) SampleRate() int { return s.src.SampleRate() }
func (s *StereoAdapter) Channels() int   { return 2 }
func (s *StereoAdapter) BufSize() int    { return s.src.BufSize() }

func (s *StereoAdapter) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with whole stereo frames; len(dst) must be even.
func (s *StereoAdapter) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	channels := s.src.Channels()
	switch {
	case channels < 1:
		return 0, ErrNoChannels
	case channels == 2:
		return s.src.ReadSamples(dst)
	}

	frames := len(dst) / 2
	need := frames * channels

	// Grow but never shrink, the period size is usually fixed.
	if cap(s.tmp) < need {
		s.tmp = make([]float32, need)
	}
	tmp := s.tmp[:need]

	n, err := s.src.ReadSamples(tmp)
	frames = n / channels
	if frames == 0 {
		return 0, err
	}

	if channels == 1 {
		for f := range frames {
			v := tmp[f]
			dst[f<<1] = v
			dst[f<<1+1] = v
		}

		return frames * 2, err
	}

	left := channels - channels/2
	right := channels / 2
	invLeft := 1 / float32(left)
	invRight := 1 / float32(right)

	for f := range frames {
		base := f * channels
		var l, r float32
		for c := 0; c < channels; c += 2 {
			l += tmp[base+c]
		}
		for c := 1; c < channels; c += 2 {
			r += tmp[base+c]
		}
		dst[f<<1] = l * invLeft
		dst[f<<1+1] = r * invRight
	}

	return frames * 2, err
}
