// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/akhil4674/Signal-to-noise-program/noise"
)

// Config holds the settings shared by both front ends.
type Config struct {
	Input  string  `yaml:"input"`
	Output string  `yaml:"output"`
	SNRdB  float64 `yaml:"snr_db"`

	// Seed fixes the noise generator when set.
	Seed *uint64 `yaml:"seed,omitempty"`
	// Overflow is "wrap" or "saturate".
	Overflow   string `yaml:"overflow"`
	BufferSize int    `yaml:"buffer_size"`
	LogLevel   string `yaml:"log_level"`

	Slider struct {
		Min     float64 `yaml:"min_db"`
		Max     float64 `yaml:"max_db"`
		Step    float64 `yaml:"step_db"`
		Initial float64 `yaml:"initial_db"`
	} `yaml:"slider"`
}

// Load reads and parses the configuration file. Unset fields keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a default configuration
func Default() *Config {
	cfg := &Config{
		Input:    "input_audio.mp3",
		Output:   "noisy_output_audio.mp3",
		SNRdB:    5.0,
		Overflow: noise.Wrap.String(),
		LogLevel: logrus.InfoLevel.String(),
	}
	cfg.Slider.Min = 0
	cfg.Slider.Max = 30
	cfg.Slider.Step = 0.5
	cfg.Slider.Initial = 5.0
	return cfg
}

// Validate checks values that cannot be caught by the YAML decoder.
func (c *Config) Validate() error {
	if _, err := noise.ParseOverflow(c.Overflow); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("invalid config: buffer_size %d is negative", c.BufferSize)
	}
	if c.Slider.Max <= c.Slider.Min {
		return fmt.Errorf("invalid config: slider max %.1f must exceed min %.1f", c.Slider.Max, c.Slider.Min)
	}
	if c.Slider.Step <= 0 {
		return fmt.Errorf("invalid config: slider step %.2f must be positive", c.Slider.Step)
	}
	if c.Slider.Initial < c.Slider.Min || c.Slider.Initial > c.Slider.Max {
		return fmt.Errorf("invalid config: slider initial %.1f outside [%.1f, %.1f]",
			c.Slider.Initial, c.Slider.Min, c.Slider.Max)
	}

	return nil
}

// Gaussian returns the noise source the configuration asks for.
func (c *Config) Gaussian() noise.Gaussian {
	if c.Seed != nil {
		return noise.NewGaussian(*c.Seed)
	}
	return noise.NewRandomGaussian()
}

// Injector builds a noise injector from Seed and Overflow.
func (c *Config) Injector() (*noise.Injector, error) {
	mode, err := noise.ParseOverflow(c.Overflow)
	if err != nil {
		return nil, err
	}

	return noise.NewInjector(c.Gaussian()).WithOverflow(mode), nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
