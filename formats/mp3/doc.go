// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding and encoding.
//
// Decoding uses github.com/hajimehoshi/go-mp3 and encoding uses the pure Go
// shine encoder from github.com/braheezy/shine-mp3.
//
// # Decoding
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder always reports two channels: go-mp3 duplicates mono streams
// into both slots. Use audio.NewMonoMixer or audio.ReadMono16 to fold them.
//
// # Encoding
//
// The Encoder writes mono 16-bit PCM at one of the MPEG layer III sample
// rates (8, 11.025, 12, 16, 22.05, 24, 32, 44.1 or 48 kHz). Any other rate
// fails with ErrUnsupportedSampleRate; NearestSampleRate tells callers what
// to resample to first.
//
//	out, _ := os.Create("noisy.mp3")
//	defer out.Close()
//	err := mp3.Encoder{}.Encode(out, 44100, samples)
package mp3
