// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// pcgStream is the fixed PCG increment used for seeded sources.
const pcgStream = 0x9e3779b97f4a7c15

// Gaussian yields unit normal variates (mean 0, variance 1).
//
// distuv.Normal satisfies it, and tests may provide a fixed sequence.
type Gaussian interface {
	Rand() float64
}

// NewGaussian returns a unit normal source seeded with seed. Two sources
// built from the same seed produce identical sequences.
func NewGaussian(seed uint64) Gaussian {
	return distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewPCG(seed, pcgStream),
	}
}

// NewRandomGaussian returns a unit normal source backed by the process-wide
// generator. Its output is not reproducible.
func NewRandomGaussian() Gaussian {
	return distuv.UnitNormal
}

// draw fills a new slice of n variates from src.
func draw(src Gaussian, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = src.Rand()
	}

	return out
}
