// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"fmt"
	"math"
	"strings"
)

// Overflow selects how out-of-range sums are narrowed to int16.
type Overflow int

const (
	// Wrap reduces the truncated value modulo 2^16.
	Wrap Overflow = iota
	// Saturate clamps the truncated value to [-32768, 32767].
	Saturate
)

func (o Overflow) String() string {
	switch o {
	case Wrap:
		return "wrap"
	case Saturate:
		return "saturate"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// ParseOverflow maps "wrap" or "saturate" (case-insensitive) to an Overflow.
// An empty string selects Wrap.
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrap":
		return Wrap, nil
	case "saturate", "clamp":
		return Saturate, nil
	default:
		return Wrap, fmt.Errorf("unknown overflow policy %q", s)
	}
}

// Scrub replaces every NaN and ±Inf in x with 0, in place.
func Scrub(x []float64) {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			x[i] = 0
		}
	}
}

// ToInt16 truncates every value toward zero and narrows it to int16 using
// mode. Values must already be finite; see Scrub.
func ToInt16(x []float64, mode Overflow) []int16 {
	out := make([]int16, len(x))
	if mode == Saturate {
		for i, v := range x {
			out[i] = saturateInt16(v)
		}
		return out
	}

	for i, v := range x {
		out[i] = wrapInt16(v)
	}

	return out
}

func wrapInt16(v float64) int16 {
	// math.Mod keeps the sign of the dividend, so m is in (-65536, 65536).
	m := math.Mod(math.Trunc(v), 1<<16)
	if m >= 1<<15 {
		m -= 1 << 16
	} else if m < -(1 << 15) {
		m += 1 << 16
	}

	return int16(m)
}

func saturateInt16(v float64) int16 {
	t := math.Trunc(v)
	if t > math.MaxInt16 {
		return math.MaxInt16
	}
	if t < math.MinInt16 {
		return math.MinInt16
	}

	return int16(t)
}
