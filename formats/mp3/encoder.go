// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	shine "github.com/braheezy/shine-mp3/pkg/mp3"
)

// supportedRates are the MPEG-1, MPEG-2 and MPEG-2.5 layer III sample rates.
var supportedRates = []int{8000, 11025, 12000, 16000, 22050, 24000, 32000, 44100, 48000}

// SupportedSampleRate reports whether rate can be encoded.
func SupportedSampleRate(rate int) bool {
	for _, r := range supportedRates {
		if r == rate {
			return true
		}
	}

	return false
}

// Encoder writes mono 16-bit PCM as MP3 using a pure Go shine encoder.
type Encoder struct{}

// NearestSampleRate returns the encodable rate closest to rate. Ties go to
// the higher rate.
func (Encoder) NearestSampleRate(rate int) int {
	best := supportedRates[0]
	for _, r := range supportedRates[1:] {
		if abs(r-rate) <= abs(best-rate) {
			best = r
		}
	}

	return best
}

// Encode writes samples as a mono MP3 stream at sampleRate.
func (Encoder) Encode(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if !SupportedSampleRate(sampleRate) {
		return fmt.Errorf("%w: %d Hz", ErrUnsupportedSampleRate, sampleRate)
	}
	if len(samples) == 0 {
		return ErrNoSamples
	}

	enc := shine.NewEncoder(sampleRate, 1)
	block := frameSamples(sampleRate)

	// shine reads a full block per frame and strides its writes for stereo,
	// so mono input is fed one zero-padded block at a time.
	padded := make([]int16, (len(samples)+block-1)/block*block)
	copy(padded, samples)

	for off := 0; off < len(padded); off += block {
		if err := enc.Write(w, padded[off:off+block]); err != nil {
			return fmt.Errorf("encoding mp3: %w", err)
		}
	}

	return nil
}

// frameSamples returns the number of mono samples shine consumes per frame
// at sampleRate: two granules for MPEG-1 rates, one for MPEG-2 and 2.5.
func frameSamples(sampleRate int) int {
	switch sampleRate {
	case 32000, 44100, 48000:
		return 2 * shine.GRANULE_SIZE
	default:
		return shine.GRANULE_SIZE
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
