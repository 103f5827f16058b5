// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"
)

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "text", data: []byte("This is not AIFF data")},
		{name: "wav header", data: []byte("RIFF\x24\x00\x00\x00WAVEfmt ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestDecoder_ReaderError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	_, err := Decoder{}.Decode(iotest.ErrReader(errBoom))
	if !errors.Is(err, errBoom) {
		t.Errorf("Decode() error = %v, want %v", err, errBoom)
	}
}
