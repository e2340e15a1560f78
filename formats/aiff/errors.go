// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile is returned when the FORM/AIFF header or COMM chunk is missing
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported is returned for any sample size other than 16 bits
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout is returned when the decoder cannot report a format
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
