// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/deejay/audio"
)

// mockOggVorbisReader hands out at most packet samples per Read, like a
// decoder returning one Vorbis packet at a time.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	packet     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(p []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, io.EOF
	}

	limit := len(p)
	if m.packet > 0 {
		limit = min(limit, m.packet)
	}
	n := copy(p[:limit], m.samples)
	m.samples = m.samples[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not Ogg Vorbis data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 6})

	if s.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", s.SampleRate())
	}
	if s.Channels() != 6 {
		t.Errorf("Channels() = %d, want 6", s.Channels())
	}
	if s.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want > 0", s.BufSize())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		dst      int
		want     int
	}{
		{name: "mono", channels: 1, dst: 5, want: 5},
		{name: "stereo", channels: 2, dst: 6, want: 6},
		{name: "stereo odd dst", channels: 2, dst: 7, want: 6},
		{name: "5.1", channels: 6, dst: 13, want: 12},
		{name: "dst smaller than a frame", channels: 6, dst: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples := make([]float32, 60)
			for i := range samples {
				samples[i] = float32(i) / 100
			}
			s := newSource(&mockOggVorbisReader{sampleRate: 48000, channels: tt.channels, samples: samples})

			buf := make([]float32, tt.dst)
			n, err := s.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != tt.want {
				t.Fatalf("ReadSamples() n = %d, want %d", n, tt.want)
			}
			for i := range n {
				if buf[i] != samples[i] {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], samples[i])
				}
			}
		})
	}
}

func TestSource_ShortPackets(t *testing.T) {
	t.Parallel()

	m := &mockOggVorbisReader{sampleRate: 48000, channels: 2, samples: make([]float32, 10), packet: 4}
	s := newSource(m)

	var reads []int
	buf := make([]float32, 8)
	for {
		n, err := s.ReadSamples(buf)
		reads = append(reads, n)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	want := []int{4, 4, 2, 0}
	if len(reads) != len(want) {
		t.Fatalf("reads = %v, want %v", reads, want)
	}
	for i := range want {
		if reads[i] != want[i] {
			t.Errorf("reads = %v, want %v", reads, want)
			break
		}
	}

	if n, err := s.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after EOF = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	errCorrupt := errors.New("bad packet")
	s := newSource(&mockOggVorbisReader{sampleRate: 48000, channels: 2, err: errCorrupt})
	if _, err := s.ReadSamples(make([]float32, 4)); !errors.Is(err, errCorrupt) {
		t.Errorf("ReadSamples() error = %v, want %v", err, errCorrupt)
	}

	s = newSource(&mockOggVorbisReader{sampleRate: 48000})
	if _, err := s.ReadSamples(make([]float32, 4)); !errors.Is(err, audio.ErrNoChannels) {
		t.Errorf("ReadSamples() error = %v, want audio.ErrNoChannels", err)
	}
}
