// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files.
//
// Decoding and seekable encoding go through github.com/go-audio/wav;
// WriteWAV16 is a streaming writer for destinations that cannot seek.
//
// # Decoding
//
//	file, _ := os.Open("deck-a.wav")
//	source, err := wav.Decoder{}.Decode(file)
//
// 16, 24 and 32-bit integer PCM with any channel count is accepted. The
// returned audio.Source yields float32 samples in [-1.0, 1.0).
//
// # Encoding
//
// Encoder writes the mixed output of the summing bus:
//
//	out, _ := os.Create("mix.wav")
//	enc, err := wav.NewEncoder(out, 48000, 2)
//	enc.Write(period)   // interleaved float32, clipped to [-1, 1]
//	enc.Close()         // patches the header sizes
//
// When the destination is a pipe, collect int16 samples and use
// WriteWAV16 instead, which computes the header up front.
//
// # Errors
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrOnlyPCMSupported: compressed or floating point WAV
//   - ErrUnsupportedBitDepth: 8-bit or unusual depths
//   - ErrUnsupportedWavLayout: missing or broken fmt chunk
package wav
