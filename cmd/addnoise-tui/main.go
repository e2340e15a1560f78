// SPDX-License-Identifier: EPL-2.0

// Command addnoise-tui is the interactive front end: type a path, pick an
// SNR with the slider and press enter. The result is written to the current
// directory as {name}_noisy_SNR_{snr}dB{ext}, replacing any earlier file
// with that name.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	snrnoise "github.com/akhil4674/Signal-to-noise-program"
	"github.com/akhil4674/Signal-to-noise-program/internal/config"
	"github.com/akhil4674/Signal-to-noise-program/internal/ui"
)

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file")
	logFile := flag.String("log-file", "addnoise-tui.log", "log destination; the terminal belongs to the form")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	logrus.SetOutput(f)
	logrus.SetLevel(cfg.Level())

	inj, err := cfg.Injector()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid noise settings")
	}

	p := snrnoise.NewProcessor(inj)
	p.BufferSize = cfg.BufferSize

	slider := ui.SliderOptions{
		Min:     cfg.Slider.Min,
		Max:     cfg.Slider.Max,
		Step:    cfg.Slider.Step,
		Initial: cfg.Slider.Initial,
	}

	if err := ui.Run(generator(p), slider); err != nil {
		logrus.WithError(err).Error("UI exited with error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generator adapts a Processor to the form, writing into the working
// directory.
func generator(p *snrnoise.Processor) ui.GenerateFunc {
	return func(input string, snrDB float64) (string, error) {
		out := filepath.Join(".", snrnoise.OutputName(input, snrDB))
		res, err := p.Process(input, out, snrDB)
		if err != nil {
			return "", err
		}
		return res.Output, nil
	}
}
