// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/deejay/utils"
)

// maxEmptyReads bounds how many (0, nil) reads are tolerated in a row.
const maxEmptyReads = 100

// Resampler converts src to another sample rate with Catmull-Rom cubic
// interpolation. Channel count is preserved. When downsampling, incoming
// frames pass through a one-pole low-pass first.
//
// A source of N frames produces ceil(N * dstRate / srcRate) frames; the last
// source frame is held for the interpolation tail.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// window holds four consecutive source frames; output is interpolated
	// between window[1] and window[2]. live marks frames that came from the
	// source rather than edge padding.
	window [4][]float32
	live   [4]bool
	primed bool
	frac   float64

	in     []float32
	inPos  int
	inLen  int
	srcEOF bool
	done   bool

	smooth []float32
	alpha  float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		in:       make([]float32, 1024*channels),
		smooth:   make([]float32, channels),
	}
	if step > 1 {
		r.alpha = 0.5
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// load copies the next source frame into dst and reports whether one was
// available.
func (r *Resampler) load(dst []float32, first bool) (bool, error) {
	for empty := 0; r.inPos >= r.inLen; empty++ {
		if r.srcEOF {
			return false, nil
		}
		if empty == maxEmptyReads {
			return false, io.ErrNoProgress
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n/r.channels
		if errors.Is(err, io.EOF) {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	frame := r.in[r.inPos*r.channels : (r.inPos+1)*r.channels]
	r.inPos++

	if r.alpha == 0 {
		copy(dst, frame)
		return true, nil
	}

	if first {
		copy(r.smooth, frame)
	}
	for c, x := range frame {
		y := r.alpha*x + (1-r.alpha)*r.smooth[c]
		r.smooth[c] = y
		dst[c] = y
	}

	return true, nil
}

// shift drops window[0] and loads a new window[3], holding window[2] when
// the source is exhausted.
func (r *Resampler) shift() error {
	oldest := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.live[:], r.live[1:])
	r.window[3] = oldest

	ok, err := r.load(r.window[3], false)
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}
	r.live[3] = ok

	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.load(r.window[1], true)
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return nil
	}
	copy(r.window[0], r.window[1])
	r.live[1] = true

	for i := 2; i < 4; i++ {
		ok, err := r.load(r.window[i], false)
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
		r.live[i] = ok
	}
	r.primed = true

	return nil
}

// ReadSamples produces interleaved samples at the target rate. len(dst) must
// be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed && !r.done {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		if r.done || !r.live[1] {
			r.done = true
			return written * r.channels, io.EOF
		}

		t := float32(r.frac)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], t)
		}
		written++

		r.frac += r.step
		for r.frac >= 1 {
			r.frac--
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}
	}

	return written * r.channels, nil
}
