// SPDX-License-Identifier: EPL-2.0

package noise

import "math"

// MeasureSNR estimates the SNR in dB actually achieved between an original
// buffer and its noisy copy: 10·log10(variance(original) / mean((noisy-original)²)).
//
// Identical buffers give +Inf.
func MeasureSNR(original, noisy []int16) (float64, error) {
	if len(original) != len(noisy) {
		return 0, ErrLengthMismatch
	}
	if len(original) == 0 {
		return 0, ErrEmptyInput
	}

	var mse float64
	for i := range original {
		diff := float64(noisy[i]) - float64(original[i])
		mse += diff * diff
	}
	mse /= float64(len(original))

	if mse == 0 {
		return math.Inf(1), nil
	}

	return 10 * math.Log10(Variance(original)/mse), nil
}
