// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM plumbing between codecs and the noise
// injector.
//
// This package contains the core building blocks:
//   - Source interface for interleaved 16-bit PCM input
//   - Decoder and Encoder interfaces, and a Registry keyed by file extension
//   - MonoMixer for channel mixing
//   - Resampler for sample rate conversion
//   - ReadMono16 and Resample for whole-buffer processing
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All decoders and processors implement this interface, allowing them to be
// chained together.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging. The
// average is computed in 32 bits and truncated toward zero:
//
//	mono := audio.NewMonoMixer(source)
//
// # Resampling
//
// The Resampler changes the sample rate using Catmull-Rom interpolation, with
// a one-pole low-pass filter when downsampling:
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]int16, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Encoders that only accept some rates implement RateChecker; Resample brings
// a Buffer to the rate they ask for.
//
// # Registry
//
//	reg := audio.NewRegistry()
//	reg.Register("mp3", mp3.Decoder{})
//	reg.RegisterEncoder("mp3", mp3.Encoder{})
//	dec, ok := reg.Get(filepath.Ext(path))
//
// Keys are case-insensitive and a leading dot is ignored.
package audio
