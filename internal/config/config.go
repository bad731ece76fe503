// SPDX-License-Identifier: EPL-2.0

// Package config loads the lpcsynth configuration from YAML, a .env file and
// LPCSYNTH_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ik5/lpcsynth/audio"
	"github.com/ik5/lpcsynth/lpc"
)

// DefaultOutputPath is where the resynthesized signal goes when nothing else is set.
const DefaultOutputPath = "out.wav"

// Config is the top-level configuration of the lpcsynth tool.
type Config struct {
	Analysis lpc.Config   `yaml:"analysis"`
	Input    InputConfig  `yaml:"input"`
	Output   OutputConfig `yaml:"output"`

	// LogLevel is any level understood by logrus.ParseLevel.
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"`
	ReportFile  string `yaml:"report_file"`
}

// InputConfig controls how decoded audio is reduced to a mono signal.
type InputConfig struct {
	Mix audio.MixMode `yaml:"mix"`
}

// OutputConfig describes the written WAV file.
type OutputConfig struct {
	Path string `yaml:"path"`
	// BitDepth is 32 for IEEE float or 16 for PCM.
	BitDepth int `yaml:"bit_depth"`
}

// Default returns the configuration used when no file or override is given.
func Default() *Config {
	analysis := lpc.DefaultConfig()
	// Zero keeps the hop at half of whatever window size ends up configured.
	analysis.HopSize = 0

	return &Config{
		Analysis: analysis,
		Input:    InputConfig{Mix: audio.MixAverage},
		Output:   OutputConfig{Path: DefaultOutputPath, BitDepth: 32},
		LogLevel: "info",
	}
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if err := cfg.Analysis.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("analysis: %w", err))
	}

	if _, err := audio.ParseMixMode(string(cfg.Input.Mix)); err != nil {
		errs = append(errs, fmt.Errorf("input.mix: %w", err))
	}

	if cfg.Output.Path == "" {
		errs = append(errs, errors.New("output.path is required"))
	}
	if cfg.Output.BitDepth != 16 && cfg.Output.BitDepth != 32 {
		errs = append(errs, fmt.Errorf("output.bit_depth %d is invalid; valid values: 16, 32", cfg.Output.BitDepth))
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level %q is invalid: %w", cfg.LogLevel, err))
	}

	return errors.Join(errs...)
}
