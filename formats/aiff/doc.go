// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files through github.com/go-audio/aiff.
//
// Samples are returned as interleaved big-endian-decoded int16 values in the
// file's native channel layout. Files with other bit depths fail with
// ErrOnlyPCM16bitSupported; anything that is not FORM/AIFF fails with
// ErrNotAiffFile.
//
//	file, _ := os.Open("take1.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadMono16(source, 0, source.BufSize())
package aiff
