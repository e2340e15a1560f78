// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// LinearSNR converts a ratio in decibels to a linear power ratio.
func LinearSNR(snrDB float64) float64 {
	return math.Pow(10, snrDB/10)
}

// NoisePower returns the scale applied to each unit noise value for a signal
// of the given variance: sqrt(max(0, variance / 10^(snrDB/10))).
//
// The result is +Inf when the linear ratio underflows to zero and NaN when
// variance is NaN.
func NoisePower(variance, snrDB float64) float64 {
	return math.Sqrt(math.Max(0, variance/LinearSNR(snrDB)))
}

// Variance returns the population variance of samples.
func Variance(samples []int16) float64 {
	return stat.PopVariance(toFloat64(samples), nil)
}

// Inject returns a copy of samples with Gaussian noise added at snrDB.
//
// Exactly 2·len(samples) variates are taken from src: all of u first, then
// all of v. The output has the same length as samples.
func Inject(samples []int16, snrDB float64, src Gaussian, mode Overflow) ([]int16, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	if math.IsNaN(snrDB) || math.IsInf(snrDB, 0) {
		return nil, ErrNonFiniteSNR
	}
	if src == nil {
		return nil, ErrNilSource
	}

	n := len(samples)
	u := draw(src, n)
	v := draw(src, n)

	signal := toFloat64(samples)
	power := NoisePower(stat.PopVariance(signal, nil), snrDB)

	// Only the real component survives into the output, so v·s is never
	// formed; v still feeds the radius.
	for i := range signal {
		r := u[i]*u[i] + v[i]*v[i]
		s := math.Sqrt(math.Max(0, -2*math.Log(r)/r))
		signal[i] += u[i] * s * power
	}

	Scrub(signal)

	return ToInt16(signal, mode), nil
}

// Injector adds noise using a shared Gaussian source. It is safe for
// concurrent use; callers are serialized on the source.
type Injector struct {
	src      Gaussian
	overflow Overflow

	mtx *sync.Mutex
}

// NewInjector returns an Injector drawing from src with the Wrap policy.
func NewInjector(src Gaussian) *Injector {
	return &Injector{
		src:      src,
		overflow: Wrap,
		mtx:      &sync.Mutex{},
	}
}

// WithOverflow sets the narrowing policy and returns the Injector.
func (in *Injector) WithOverflow(mode Overflow) *Injector {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	in.overflow = mode
	return in
}

// Overflow reports the narrowing policy in use.
func (in *Injector) Overflow() Overflow {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	return in.overflow
}

// Inject is Inject with the Injector's source and overflow policy.
func (in *Injector) Inject(samples []int16, snrDB float64) ([]int16, error) {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	return Inject(samples, snrDB, in.src, in.overflow)
}

func toFloat64(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)
	}

	return out
}
