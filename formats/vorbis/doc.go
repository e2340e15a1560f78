// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to floating point. The source quantizes each value to a
// signed 16-bit sample (scaled by 32768 and clamped) so it plugs into the
// same int16 pipeline as the PCM formats.
//
// Reads always return whole frames: dst shorter than one frame fails with
// audio.ErrInvalidDstSize, and any remainder past the last whole frame is
// left untouched.
//
//	file, _ := os.Open("voice.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer source.Close()
package vorbis
