// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and encoding on top of
// github.com/go-audio/wav.
//
// Only uncompressed PCM at 16 bits per sample is handled. Other layouts
// are rejected with ErrOnlyPCM16bitSupported.
//
// # Decoding
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
//	buf := make([]int16, 4096)
//	n, err := source.ReadSamples(buf)
//
// The RIFF parser seeks between chunks. Readers that are not an
// io.ReadSeeker are buffered in memory first.
//
// # Encoding
//
// Encoder always writes mono 16-bit PCM. It needs an io.WriteSeeker because
// chunk sizes are patched after the samples are written:
//
//	out, _ := os.Create("noisy.wav")
//	defer out.Close()
//	err := wav.Encoder{}.Encode(out, 44100, samples)
package wav
