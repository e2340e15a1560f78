// SPDX-License-Identifier: EPL-2.0

// Package snrnoise adds white Gaussian noise to recorded audio at a chosen
// signal-to-noise ratio.
//
// A Processor ties the pieces together: it decodes the input by file
// extension, folds it to a mono 16-bit buffer, hands that buffer to a
// noise.Injector and writes the result with the encoder registered for the
// output extension.
//
// # Quick Start
//
//	p := snrnoise.NewProcessor(noise.NewInjector(noise.NewRandomGaussian()))
//	res, err := p.Process("input_audio.mp3", "noisy_output_audio.mp3", 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Output, res.NoisePower)
//
// # Formats
//
// DefaultRegistry decodes MP3, WAV, AIFF and Ogg Vorbis and encodes MP3 and
// WAV. Stereo inputs are averaged to mono before noise is added.
//
// MP3 output only carries the MPEG layer III sample rates. When the decoded
// rate is not one of them the noisy buffer is resampled to the nearest one
// before encoding, so the noise level is always computed on the original
// signal.
//
// # Reproducible Runs
//
// Seed the generator to get the same noise for the same input:
//
//	inj := noise.NewInjector(noise.NewGaussian(42))
//
// # Output Naming
//
// OutputName derives the file name the interactive front end writes:
// "speech.mp3" at 12.5 dB becomes "speech_noisy_SNR_12.5dB.mp3" in the
// current directory. Existing files are overwritten.
package snrnoise
