// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream primitives that bring decoded files to
// the session format before they reach the summing bus.
//
// This package contains:
//   - Source interface for audio input
//   - Resampler for sample rate conversion
//   - StereoAdapter for channel layout conversion
//   - Format registry for decoder lookup by file extension
//
// # Source Interface
//
// The Source interface is the foundation of the deck pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders and processors all implement it, so they chain freely.
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 48000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// # Stereo
//
// The summing bus only accepts interleaved stereo. StereoAdapter duplicates
// mono, passes stereo through, and folds wider layouts down:
//
//	deck := audio.NewStereoAdapter(audio.NewResampler(source, 48000))
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("intro.wav")
//
// The formats package provides a registry with every bundled decoder.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]. Values outside the range are legal
// while mixing and are only clamped when written to integer PCM.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available, possibly along
// with a final n > 0:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
