// SPDX-License-Identifier: EPL-2.0

package snrnoise

import (
	"github.com/akhil4674/Signal-to-noise-program/audio"
	"github.com/akhil4674/Signal-to-noise-program/formats/aiff"
	"github.com/akhil4674/Signal-to-noise-program/formats/mp3"
	"github.com/akhil4674/Signal-to-noise-program/formats/vorbis"
	"github.com/akhil4674/Signal-to-noise-program/formats/wav"
)

// DefaultRegistry returns a registry with every bundled codec.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("mp3", mp3.Decoder{})
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	r.RegisterEncoder("mp3", mp3.Encoder{})
	r.RegisterEncoder("wav", wav.Encoder{})

	return r
}
