package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src and returns its interleaved samples. src is not closed.
func ReadAll(src Source, bufferSize int) ([]int16, error) {
	if bufferSize <= 0 {
		bufferSize = max(src.BufSize(), 1024)
	}
	// keep reads frame aligned
	if ch := src.Channels(); ch > 1 {
		bufferSize = max(bufferSize/ch, 1) * ch
	}

	pcm := make([]int16, 0, bufferSize)
	buf := make([]int16, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			pcm = append(pcm, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return pcm, nil
}

// ReadMono16 decodes src fully into a mono Buffer.
//
// This function creates a processing pipeline:
//  1. Converts the source to mono by averaging channels
//  2. Resamples to targetRate with cubic interpolation, only when
//     targetRate is positive and differs from the source rate
//  3. Reads all samples from the pipeline
//
// A stream with no samples yields ErrEmptyStream.
func ReadMono16(src Source, targetRate int, bufferSize int) (Buffer, error) {
	if src.SampleRate() <= 0 {
		return Buffer{}, ErrInvalidRate
	}

	var pipeline Source = NewMonoMixer(src)
	if targetRate > 0 && targetRate != src.SampleRate() {
		pipeline = NewResampler(pipeline, targetRate)
	}

	pcm, err := ReadAll(pipeline, bufferSize)
	if err != nil {
		return Buffer{}, err
	}
	if len(pcm) == 0 {
		return Buffer{}, ErrEmptyStream
	}

	return Buffer{Samples: pcm, SampleRate: pipeline.SampleRate()}, nil
}

// Resample converts a mono buffer to targetRate. The buffer is returned
// unchanged when it is already at that rate.
func Resample(buf Buffer, targetRate int) (Buffer, error) {
	if targetRate <= 0 || buf.SampleRate <= 0 {
		return Buffer{}, ErrInvalidRate
	}
	if targetRate == buf.SampleRate {
		return buf, nil
	}

	src := &bufferSource{samples: buf.Samples, sampleRate: buf.SampleRate}

	return ReadMono16(src, targetRate, 4096)
}

// bufferSource replays an in-memory mono buffer.
type bufferSource struct {
	samples    []int16
	sampleRate int
	offset     int
}

func (b *bufferSource) SampleRate() int { return b.sampleRate }
func (b *bufferSource) Channels() int   { return 1 }
func (b *bufferSource) BufSize() int    { return 4096 }
func (b *bufferSource) Close() error    { return nil }

func (b *bufferSource) ReadSamples(dst []int16) (int, error) {
	if b.offset >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.offset:])
	b.offset += n

	if b.offset >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}
