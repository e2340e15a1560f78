// SPDX-License-Identifier: EPL-2.0

package snrnoise

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/akhil4674/Signal-to-noise-program/audio"
	"github.com/akhil4674/Signal-to-noise-program/formats/mp3"
	"github.com/akhil4674/Signal-to-noise-program/formats/wav"
	"github.com/akhil4674/Signal-to-noise-program/internal/audiotest"
	"github.com/akhil4674/Signal-to-noise-program/noise"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestProcessor(src noise.Gaussian) *Processor {
	p := NewProcessor(noise.NewInjector(src))
	p.Logger = quietLogger()
	return p
}

func writeWAV(t *testing.T, path string, rate, channels int, samples []int16) {
	t.Helper()

	// wav.Encoder is mono only; build multi-channel files by hand
	if channels != 1 {
		data := stereoWAV(rate, samples)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		return
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := (wav.Encoder{}).Encode(f, rate, samples); err != nil {
		t.Fatal(err)
	}
}

func stereoWAV(rate int, samples []int16) []byte {
	le16 := func(b *bytes.Buffer, v uint16) { b.WriteByte(byte(v)); b.WriteByte(byte(v >> 8)) }
	le32 := func(b *bytes.Buffer, v uint32) { le16(b, uint16(v)); le16(b, uint16(v>>16)) }

	b := new(bytes.Buffer)
	b.WriteString("RIFF")
	le32(b, uint32(36+len(samples)*2))
	b.WriteString("WAVEfmt ")
	le32(b, 16)
	le16(b, 1)
	le16(b, 2)
	le32(b, uint32(rate))
	le32(b, uint32(rate*4))
	le16(b, 4)
	le16(b, 16)
	b.WriteString("data")
	le32(b, uint32(len(samples)*2))
	for _, s := range samples {
		le16(b, uint16(s))
	}

	return b.Bytes()
}

func readWAV(t *testing.T, path string) audio.Buffer {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}

	pcm, err := audio.ReadAll(src, 0)
	if err != nil {
		t.Fatal(err)
	}

	return audio.Buffer{Samples: pcm, SampleRate: src.SampleRate()}
}

func TestProcess_WorkedExample(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeWAV(t, in, 8000, 1, []int16{100, -100, 100, -100})

	p := newTestProcessor(audiotest.NewSequenceGaussian(0.5))
	res, err := p.Process(in, out, 0)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if res.Output != out || res.Input != in {
		t.Errorf("Result paths = (%q, %q), want (%q, %q)", res.Input, res.Output, in, out)
	}
	if res.Samples != 4 || res.SampleRate != 8000 {
		t.Errorf("Result = %d samples at %d Hz, want 4 at 8000 Hz", res.Samples, res.SampleRate)
	}
	if res.NoisePower != 100 {
		t.Errorf("NoisePower = %v, want 100", res.NoisePower)
	}

	got := readWAV(t, out)
	want := []int16{183, -16, 183, -16}
	if len(got.Samples) != len(want) {
		t.Fatalf("output has %d samples, want %d", len(got.Samples), len(want))
	}
	for i := range want {
		if got.Samples[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got.Samples[i], want[i])
		}
	}
}

func TestProcess_StereoIsMixedDown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "stereo.wav")
	out := filepath.Join(dir, "mono.wav")
	writeWAV(t, in, 16000, 2, []int16{100, 100, -100, -100, 100, 100, -100, -100})

	// r > 1 contributes no noise, leaving the mixed signal
	p := newTestProcessor(audiotest.NewSequenceGaussian(2))
	if _, err := p.Process(in, out, 10); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	got := readWAV(t, out)
	want := []int16{100, -100, 100, -100}
	if len(got.Samples) != len(want) {
		t.Fatalf("output has %d samples, want %d", len(got.Samples), len(want))
	}
	for i := range want {
		if got.Samples[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got.Samples[i], want[i])
		}
	}
}

func TestProcess_MP3OutputConformsRate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "hires.wav")
	out := filepath.Join(dir, "out.mp3")

	samples := make([]int16, 9600)
	for i := range samples {
		samples[i] = int16(6000 * math.Sin(2*math.Pi*440*float64(i)/96000))
	}
	writeWAV(t, in, 96000, 1, samples)

	p := newTestProcessor(noise.NewGaussian(7))
	res, err := p.Process(in, out, 20)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if res.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", res.SampleRate)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 2 || data[0] != 0xFF || data[1]&0xE0 != 0xE0 {
		t.Fatal("output does not start with an MPEG frame sync")
	}

	src, err := mp3.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	buf := make([]int16, src.BufSize())
	total := 0
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	// 0.1 s at 48 kHz, rounded up to whole 1152-sample frames
	frames := total / src.Channels()
	if src.SampleRate() != 48000 || frames < 4800 || frames > 4800+2*1152 {
		t.Errorf("decoded %d frames at %d Hz, want about 4800 at 48000 Hz", frames, src.SampleRate())
	}
}

func TestProcess_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.wav")
	writeWAV(t, valid, 8000, 1, []int16{1, 2, 3, 4})

	empty := filepath.Join(dir, "empty.wav")
	writeWAV(t, empty, 8000, 1, nil)

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("definitely not audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   string
		out  string
		snr  float64
		want error
	}{
		{name: "empty input path", in: "", out: "x.wav", snr: 5, want: ErrEmptyPath},
		{name: "blank output path", in: valid, out: "  ", snr: 5, want: ErrEmptyPath},
		{name: "unknown input format", in: filepath.Join(dir, "a.flac"), out: "x.wav", snr: 5, want: audio.ErrUnknownFormat},
		{name: "no encoder for output", in: valid, out: "x.aiff", snr: 5, want: audio.ErrUnknownFormat},
		{name: "missing input", in: filepath.Join(dir, "missing.wav"), out: "x.wav", snr: 5, want: fs.ErrNotExist},
		{name: "corrupt input", in: garbage, out: "x.wav", snr: 5, want: wav.ErrNotWavFile},
		{name: "no samples", in: empty, out: "x.wav", snr: 5, want: audio.ErrEmptyStream},
		{name: "nan snr", in: valid, out: "x.wav", snr: math.NaN(), want: noise.ErrNonFiniteSNR},
		{name: "infinite snr", in: valid, out: "x.wav", snr: math.Inf(-1), want: noise.ErrNonFiniteSNR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := tt.out
			if strings.TrimSpace(out) != "" && filepath.Base(out) == out {
				out = filepath.Join(t.TempDir(), out)
			}

			p := newTestProcessor(noise.NewGaussian(1))
			_, err := p.Process(tt.in, out, tt.snr)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Process() error = %v, want %v", err, tt.want)
			}

			if _, statErr := os.Stat(out); statErr == nil {
				t.Errorf("output %q was created on failure", out)
			}
		})
	}
}

func TestProcess_SharedInjectorConcurrent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	samples := make([]int16, 2000)
	for i := range samples {
		samples[i] = int16(i%400 - 200)
	}
	writeWAV(t, in, 8000, 1, samples)

	p := newTestProcessor(noise.NewGaussian(99))

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := filepath.Join(dir, OutputName(in, float64(i)))
			_, err := p.Process(in, out, float64(i))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("Process() error = %v", err)
		}
	}
}

func TestApply_NoInjector(t *testing.T) {
	t.Parallel()

	p := &Processor{Logger: quietLogger()}
	_, _, err := p.Apply(audiotest.NewConstantSource(8000, 1, 10, 5), 5)
	if !errors.Is(err, ErrNoInjector) {
		t.Errorf("Apply() error = %v, want %v", err, ErrNoInjector)
	}
}

func TestApply_MeasuredSNR(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(noise.NewGaussian(3))
	src := audiotest.NewSineSource(44100, 1, 44100, 440, 10000)

	buf, res, err := p.Apply(src, 15)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(buf.Samples) != 44100 || buf.SampleRate != 44100 {
		t.Errorf("buffer = %d samples at %d Hz", len(buf.Samples), buf.SampleRate)
	}
	if src.Closed() {
		t.Error("Apply() closed the source")
	}
	// the transform's own noise sits below the requested level on average
	if math.Abs(res.MeasuredSNR-15) > 3 {
		t.Errorf("MeasuredSNR = %.2f dB, want about 15 dB", res.MeasuredSNR)
	}
}

func TestEncode_ConformsRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		enc      audio.Encoder
		rate     int
		wantRate int
	}{
		{name: "mp3 supported", enc: mp3.Encoder{}, rate: 22050, wantRate: 22050},
		{name: "mp3 resampled", enc: mp3.Encoder{}, rate: 96000, wantRate: 48000},
		{name: "wav any rate", enc: wav.Encoder{}, rate: 96000, wantRate: 96000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := audio.Buffer{Samples: make([]int16, tt.rate/10), SampleRate: tt.rate}
			for i := range buf.Samples {
				buf.Samples[i] = int16(i % 1000)
			}

			got, err := Encode(tt.enc, &audiotest.WriteSeeker{}, buf)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got != tt.wantRate {
				t.Errorf("Encode() rate = %d, want %d", got, tt.wantRate)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	for _, ext := range []string{".mp3", ".WAV", "aiff", ".aif", ".ogg"} {
		if _, ok := r.Get(ext); !ok {
			t.Errorf("no decoder for %q", ext)
		}
	}
	for _, ext := range []string{".mp3", ".wav"} {
		if _, ok := r.GetEncoder(ext); !ok {
			t.Errorf("no encoder for %q", ext)
		}
	}
	if _, ok := r.GetEncoder(".ogg"); ok {
		t.Error("unexpected ogg encoder")
	}
}

func BenchmarkProcessor_Apply(b *testing.B) {
	p := newTestProcessor(noise.NewGaussian(1))

	b.ReportAllocs()
	for b.Loop() {
		src := audiotest.NewSineSource(44100, 2, 44100*2, 440, 8000)
		if _, _, err := p.Apply(src, 10); err != nil {
			b.Fatal(err)
		}
	}
}
