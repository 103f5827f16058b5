// SPDX-License-Identifier: EPL-2.0

package deejay

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/deejay/audio"
	"github.com/ik5/deejay/engine"
)

// fileSource closes the file a decoder reads from together with the
// decoder.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}

// OpenDeck decodes path with the decoder registered for its extension and
// brings it to sampleRate stereo. Closing the returned source closes the
// file.
func OpenDeck(reg *audio.Registry, path string, sampleRate int) (audio.Source, error) {
	dec, err := reg.Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return engine.Deck(&fileSource{Source: src, f: f}, sampleRate), nil
}
