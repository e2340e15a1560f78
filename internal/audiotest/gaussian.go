// SPDX-License-Identifier: EPL-2.0

package audiotest

// SequenceGaussian replays a fixed list of variates, cycling when exhausted.
// It satisfies noise.Gaussian.
type SequenceGaussian struct {
	values []float64
	pos    int
}

// NewSequenceGaussian returns a source that yields values in order.
func NewSequenceGaussian(values ...float64) *SequenceGaussian {
	return &SequenceGaussian{values: values}
}

func (g *SequenceGaussian) Rand() float64 {
	v := g.values[g.pos%len(g.values)]
	g.pos++
	return v
}

// Drawn reports how many values have been taken.
func (g *SequenceGaussian) Drawn() int { return g.pos }
