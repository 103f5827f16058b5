// SPDX-License-Identifier: EPL-2.0

// Package formats bundles every decoder this module ships with.
package formats

import (
	"github.com/ik5/deejay/audio"
	"github.com/ik5/deejay/formats/aiff"
	"github.com/ik5/deejay/formats/mp3"
	"github.com/ik5/deejay/formats/vorbis"
	"github.com/ik5/deejay/formats/wav"
)

// NewRegistry returns a registry keyed by file extension.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}
