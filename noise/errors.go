// SPDX-License-Identifier: EPL-2.0

package noise

import "errors"

var (
	// ErrEmptyInput is returned when there are no samples to measure a variance from.
	ErrEmptyInput = errors.New("noise: empty input buffer")

	// ErrNonFiniteSNR is returned for a NaN or infinite SNR in dB.
	ErrNonFiniteSNR = errors.New("noise: SNR must be a finite number of dB")

	// ErrNilSource is returned when no Gaussian source was supplied.
	ErrNilSource = errors.New("noise: nil gaussian source")

	// ErrLengthMismatch is returned by MeasureSNR when the buffers differ in length.
	ErrLengthMismatch = errors.New("noise: buffers differ in length")
)
