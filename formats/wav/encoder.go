// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// chunkSize caps how many samples are handed to the go-audio encoder at once.
const chunkSize = 8192

// Encoder writes mono 16-bit PCM WAV files. Any positive sample rate is
// accepted.
type Encoder struct{}

// Encode writes samples as a mono 16-bit PCM WAV at sampleRate. The RIFF and
// data chunk sizes are patched by seeking back once the payload is written.
func (Encoder) Encode(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d Hz", ErrInvalidSampleRate, sampleRate)
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, 1, pcmFormat)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, 0, min(len(samples), chunkSize)),
	}

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))

		buf.Data = buf.Data[:0]
		for _, s := range samples[i:end] {
			buf.Data = append(buf.Data, int(s))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	if len(samples) == 0 {
		// still emit a header and an empty data chunk
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav header: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
