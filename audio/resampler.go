// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/akhil4674/Signal-to-noise-program/utils"
)

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	ratio    float64 // srcRate / dstRate - how many source samples per output sample
	channels int

	// Ring buffer holding 4 frames for cubic interpolation
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4][]float32
	hasFrame [4]bool

	// Position between frames[1] and frames[2], in source frames
	pos float64

	srcBuf []int16
	eof    bool
	primed bool

	// One-pole low-pass state, only used when downsampling
	filterState []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	useFilter := ratio > 1.0
	var filterAlpha float32
	if useFilter {
		filterAlpha = 0.5
	}

	r := &Resampler{
		src:         src,
		srcRate:     float64(src.SampleRate()),
		dstRate:     float64(dstRate),
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]int16, channels),
		useFilter:   useFilter,
		filterAlpha: filterAlpha,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fill reads the next source frame into frames[slot]. At end of stream the
// slot is marked empty.
func (r *Resampler) fill(slot int) error {
	r.hasFrame[slot] = false
	if r.eof {
		return nil
	}

	n, err := r.src.ReadSamples(r.srcBuf)
	if n > 0 {
		frame := r.frames[slot]
		for c := range n {
			frame[c] = float32(r.srcBuf[c])
		}
		r.hasFrame[slot] = true

		if r.useFilter {
			if !r.primed {
				copy(r.filterState, frame)
			}
			for c := range r.channels {
				frame[c] = r.filterAlpha*frame[c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = frame[c]
			}
		}
	}

	if err == io.EOF || (n == 0 && err == nil) {
		r.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// advance shifts the frame window by one: [0,1,2,3] -> [1,2,3,next].
func (r *Resampler) advance() error {
	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.hasFrame[0] = r.hasFrame[1]
	r.hasFrame[1] = r.hasFrame[2]
	r.hasFrame[2] = r.hasFrame[3]

	return r.fill(3)
}

// prime loads the first frame at t0 and its two successors.
func (r *Resampler) prime() error {
	for slot := 1; slot < 4; slot++ {
		if err := r.fill(slot); err != nil {
			return err
		}
		if slot == 1 {
			r.primed = true
		}
	}

	return nil
}

// ReadSamples produces dst samples at r.dstRate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []int16) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// Nothing left at t0: the stream is done.
		if !r.hasFrame[1] {
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)

		for c := range r.channels {
			y1 := r.frames[1][c]
			y0, y2 := y1, y1
			if r.hasFrame[0] {
				y0 = r.frames[0][c]
			}
			if r.hasFrame[2] {
				y2 = r.frames[2][c]
			}
			y3 := y2
			if r.hasFrame[3] {
				y3 = r.frames[3][c]
			}

			v := utils.CubicInterpolate(y0, y1, y2, y3, alpha)
			dst[written*r.channels+c] = utils.RoundToInt16(v)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
