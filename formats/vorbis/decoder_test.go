// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/akhil4674/Signal-to-noise-program/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	buf = buf[:len(buf)/m.channels*m.channels]
	n := copy(buf, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func newTestSource(m *mockOggVorbisReader) *source {
	return &source{
		dec:        m,
		sampleRate: m.sampleRate,
		channels:   m.channels,
		floatBuf:   make([]float32, 4096),
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "garbage", data: []byte("not an ogg vorbis file")},
		{name: "empty", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() expected error, got nil")
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := newTestSource(&mockOggVorbisReader{sampleRate: 48000, channels: 2})

	if s.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if s.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", s.BufSize())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		samples  []float32
		bufSize  int
		want     []int16
	}{
		{
			name:     "mono scaling",
			channels: 1,
			samples:  []float32{0, 0.5, -0.5, 1, -1},
			bufSize:  16,
			want:     []int16{0, 16384, -16384, 32767, -32768},
		},
		{
			name:     "clipped input",
			channels: 1,
			samples:  []float32{1.5, -2},
			bufSize:  4,
			want:     []int16{32767, -32768},
		},
		{
			name:     "stereo whole frames",
			channels: 2,
			samples:  []float32{0.25, -0.25, 0.5, -0.5},
			bufSize:  3,
			want:     []int16{8192, -8192, 16384, -16384},
		},
		{
			name:     "six channels",
			channels: 6,
			samples:  make([]float32, 12),
			bufSize:  7,
			want:     make([]int16, 12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSource(&mockOggVorbisReader{sampleRate: 44100, channels: tt.channels, samples: tt.samples})
			buf := make([]int16, tt.bufSize)

			var got []int16
			for range 1000 {
				n, err := s.ReadSamples(buf)
				if n%tt.channels != 0 {
					t.Fatalf("ReadSamples() = %d, not a whole number of frames", n)
				}
				got = append(got, buf[:n]...)
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if len(got) != len(tt.want) {
				t.Fatalf("read %d samples, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSource_DstSmallerThanFrame(t *testing.T) {
	t.Parallel()

	s := newTestSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: []float32{0, 0}})
	if _, err := s.ReadSamples(make([]int16, 1)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want %v", err, audio.ErrInvalidDstSize)
	}
}

func TestSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	s := newTestSource(&mockOggVorbisReader{sampleRate: 44100, channels: 1, samples: []float32{0}})
	if n, err := s.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	s := newTestSource(&mockOggVorbisReader{sampleRate: 44100, channels: 1, err: io.ErrUnexpectedEOF})
	if _, err := s.ReadSamples(make([]int16, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestSource_BufferGrows(t *testing.T) {
	t.Parallel()

	s := newTestSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: make([]float32, 10000)})
	n, err := s.ReadSamples(make([]int16, 10000))
	if err != nil || n != 10000 {
		t.Fatalf("ReadSamples() = (%d, %v), want (10000, nil)", n, err)
	}
	if s.BufSize() < 10000 {
		t.Errorf("BufSize() = %d, want >= 10000", s.BufSize())
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 1<<16)
	for i := range samples {
		samples[i] = float32(i%200-100) / 100
	}
	buf := make([]int16, 4096)

	b.ReportAllocs()
	for b.Loop() {
		s := newTestSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: samples})
		for {
			if _, err := s.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
