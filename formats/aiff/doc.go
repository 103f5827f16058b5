// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
//	file, _ := os.Open("deck-b.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//
// 16 and 24-bit PCM is supported; AIFF-C (compressed) is not. Samples are
// delivered big-endian-agnostic as float32 in [-1.0, 1.0).
package aiff
