// SPDX-License-Identifier: EPL-2.0

// Package noise injects additive white Gaussian noise into 16-bit PCM
// samples at a requested signal-to-noise ratio.
//
// # Algorithm
//
// For N input samples the injector draws two sequences u and v of N unit
// normal variates, in that order, from a Gaussian source. Each noise value is
//
//	r = u² + v²
//	s = sqrt(max(0, -2·ln(r) / r))
//	x = u · s · noisePower
//
// where noisePower = sqrt(max(0, variance(samples) / 10^(snrDB/10))) and
// variance is the population variance of the input. The noisy sample is the
// original plus x. NaN and infinite results are replaced by 0 and every value
// is truncated toward zero before it is narrowed to int16.
//
// Draws with r > 1 produce no noise at all, so the effective noise shape is
// not a textbook Box-Muller Gaussian. Seeded output stays comparable with
// earlier runs of the same transform.
//
// # Random Source
//
// The source is injected through the Gaussian interface:
//
//	src := noise.NewGaussian(42) // deterministic
//	noisy, err := noise.Inject(samples, 5.0, src, noise.Wrap)
//
// Injector wraps a source with a mutex and can be shared between goroutines:
//
//	inj := noise.NewInjector(noise.NewGaussian(42))
//	noisy, err := inj.Inject(samples, 10)
//
// # Overflow
//
// Sums outside the int16 range are handled according to an Overflow policy.
// Wrap (the default) reduces the truncated value modulo 2^16, the way a plain
// integer cast does. Saturate clamps to [-32768, 32767].
//
// # Degenerate Input
//
// Silent input (zero variance) and SNR values whose linear ratio underflows
// to 0 or overflows to +Inf are not errors. They yield non-finite
// intermediates that the scrub step turns into 0, so the output is either the
// original signal or zeroed samples. Only an empty buffer, a non-finite dB
// value and a nil source are reported as errors.
package noise
