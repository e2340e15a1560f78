// SPDX-License-Identifier: EPL-2.0

package snrnoise

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/akhil4674/Signal-to-noise-program/audio"
	"github.com/akhil4674/Signal-to-noise-program/noise"
)

// Processor decodes a file, adds noise and encodes the result.
// A Processor is safe for concurrent use when its Injector is.
type Processor struct {
	Registry *audio.Registry
	Injector *noise.Injector
	// BufferSize is the read size used while decoding; 0 picks the source's own.
	BufferSize int
	Logger     logrus.FieldLogger
}

// Result describes one completed run.
type Result struct {
	Input      string
	Output     string
	SampleRate int
	Samples    int
	// NoisePower is the standard deviation the unit noise was scaled by.
	NoisePower float64
	// MeasuredSNR is the ratio actually achieved after rounding, in dB.
	MeasuredSNR float64
}

// NewProcessor returns a Processor using DefaultRegistry and the standard
// logrus logger.
func NewProcessor(inj *noise.Injector) *Processor {
	return &Processor{
		Registry: DefaultRegistry(),
		Injector: inj,
		Logger:   logrus.StandardLogger(),
	}
}

func (p *Processor) logger() logrus.FieldLogger {
	if p.Logger == nil {
		return logrus.StandardLogger()
	}
	return p.Logger
}

// Process reads inPath, adds noise at snrDB and writes outPath. Codecs are
// chosen by file extension. outPath is only created once the noisy buffer is
// ready, and is removed again if encoding fails.
func (p *Processor) Process(inPath, outPath string, snrDB float64) (Result, error) {
	log := p.logger().WithFields(logrus.Fields{
		"function": "Process",
		"input":    inPath,
		"output":   outPath,
		"snr_db":   snrDB,
	})

	if strings.TrimSpace(inPath) == "" || strings.TrimSpace(outPath) == "" {
		log.WithField("error", ErrEmptyPath).Error("Missing path")
		return Result{}, ErrEmptyPath
	}

	dec, err := p.decoder(inPath)
	if err != nil {
		return Result{}, err
	}
	enc, err := p.encoder(outPath)
	if err != nil {
		return Result{}, err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return Result{}, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		log.WithField("error", err).Error("Decoding failed")
		return Result{}, fmt.Errorf("decoding %s: %w", inPath, err)
	}
	defer src.Close()

	noisy, res, err := p.Apply(src, snrDB)
	if err != nil {
		return Result{}, err
	}

	res, err = p.write(enc, outPath, noisy, res)
	if err != nil {
		log.WithField("error", err).Error("Encoding failed")
		return Result{}, err
	}
	res.Input = inPath

	log.WithFields(logrus.Fields{
		"samples":     res.Samples,
		"sample_rate": res.SampleRate,
		"noise_power": res.NoisePower,
	}).Info("Noisy audio written")

	return res, nil
}

// Apply decodes src to mono and returns it with noise added at snrDB.
// src is not closed.
func (p *Processor) Apply(src audio.Source, snrDB float64) (audio.Buffer, Result, error) {
	if p.Injector == nil {
		return audio.Buffer{}, Result{}, ErrNoInjector
	}

	log := p.logger().WithFields(logrus.Fields{
		"function":    "Apply",
		"snr_db":      snrDB,
		"sample_rate": src.SampleRate(),
		"channels":    src.Channels(),
	})

	clean, err := audio.ReadMono16(src, 0, p.BufferSize)
	if err != nil {
		log.WithField("error", err).Error("Reading samples failed")
		return audio.Buffer{}, Result{}, fmt.Errorf("reading samples: %w", err)
	}

	log.WithField("samples", len(clean.Samples)).Debug("Injecting noise")

	samples, err := p.Injector.Inject(clean.Samples, snrDB)
	if err != nil {
		log.WithField("error", err).Error("Noise injection failed")
		return audio.Buffer{}, Result{}, fmt.Errorf("injecting noise: %w", err)
	}

	res := Result{
		SampleRate: clean.SampleRate,
		Samples:    len(samples),
		NoisePower: noise.NoisePower(noise.Variance(clean.Samples), snrDB),
	}
	if res.MeasuredSNR, err = noise.MeasureSNR(clean.Samples, samples); err != nil {
		return audio.Buffer{}, Result{}, fmt.Errorf("measuring snr: %w", err)
	}

	return audio.Buffer{Samples: samples, SampleRate: clean.SampleRate}, res, nil
}

// Encode writes buf to w with enc, resampling first when enc cannot carry
// the buffer's rate. It returns the rate actually written.
func Encode(enc audio.Encoder, w io.WriteSeeker, buf audio.Buffer) (int, error) {
	if rc, ok := enc.(audio.RateChecker); ok {
		if rate := rc.NearestSampleRate(buf.SampleRate); rate != buf.SampleRate {
			var err error
			if buf, err = audio.Resample(buf, rate); err != nil {
				return 0, fmt.Errorf("conforming sample rate: %w", err)
			}
		}
	}

	if err := enc.Encode(w, buf.SampleRate, buf.Samples); err != nil {
		return 0, fmt.Errorf("encoding: %w", err)
	}

	return buf.SampleRate, nil
}

func (p *Processor) write(enc audio.Encoder, outPath string, buf audio.Buffer, res Result) (Result, error) {
	out, err := os.Create(outPath)
	if err != nil {
		return Result{}, fmt.Errorf("creating output: %w", err)
	}

	rate, err := Encode(enc, out, buf)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing output: %w", cerr)
	}
	if err != nil {
		return Result{}, errors.Join(err, os.Remove(outPath))
	}

	if rate != res.SampleRate {
		p.logger().WithFields(logrus.Fields{
			"function": "Process",
			"from":     res.SampleRate,
			"to":       rate,
		}).Warn("Output sample rate adjusted for encoder")
	}
	res.SampleRate = rate
	res.Output = outPath

	return res, nil
}

func (p *Processor) decoder(path string) (audio.Decoder, error) {
	ext := filepath.Ext(path)
	if p.Registry != nil {
		if d, ok := p.Registry.Get(ext); ok {
			return d, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, ext)
}

func (p *Processor) encoder(path string) (audio.Encoder, error) {
	ext := filepath.Ext(path)
	if p.Registry != nil {
		if e, ok := p.Registry.GetEncoder(ext); ok {
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, ext)
}
