// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat  = errors.New("no codec registered for format")
	ErrEmptyStream    = errors.New("stream contains no samples")
	ErrInvalidRate    = errors.New("sample rate must be positive")
)
