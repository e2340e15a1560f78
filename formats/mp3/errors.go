package mp3

import "errors"

var (
	// ErrUnsupportedSampleRate indicates a rate MPEG layer III cannot carry
	ErrUnsupportedSampleRate = errors.New("unsupported MP3 sample rate")

	// ErrNoSamples indicates an empty buffer was passed to the encoder
	ErrNoSamples = errors.New("no samples to encode")
)
