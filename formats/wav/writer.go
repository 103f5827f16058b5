// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const headerSize = 44

// WriteWAV16 writes a complete 16-bit PCM WAV with the given channel count
// to w. samples are interleaved int16 frames. Unlike Encoder it needs no
// seeking, so it can target pipes and network streams.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 {
		return ErrInvalidChannels
	}

	const bitsPerSample = 16
	blockAlign := channels * bitsPerSample / 8
	dataSize := len(samples) * 2
	if uint64(dataSize)+headerSize-8 > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes of PCM", ErrUnsupportedWavLayout, dataSize)
	}

	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(headerSize-8+dataSize))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Write 8KB of PCM at a time.
	const chunkSamples = 4096
	buf := make([]byte, 2*min(len(samples), chunkSamples))

	for start := 0; start < len(samples); start += chunkSamples {
		chunk := samples[start:min(start+chunkSamples, len(samples))]
		out := buf[:2*len(chunk)]
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
