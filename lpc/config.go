// SPDX-License-Identifier: EPL-2.0

package lpc

import (
	"errors"
	"fmt"
	"math"
)

// SolverKind names one of the built-in coefficient solvers.
type SolverKind string

const (
	SolverRegression SolverKind = "regression"
	SolverLevinson   SolverKind = "levinson"
)

// IsValid reports whether k names a built-in solver.
func (k SolverKind) IsValid() bool {
	switch k {
	case SolverRegression, SolverLevinson:
		return true
	}
	return false
}

const (
	DefaultSampleRate       = 44100
	DefaultWindowSize       = 300
	DefaultOrder            = 10
	DefaultVoicingThreshold = 150.0
	DefaultOutputLimit      = 1.0
)

// Config holds every tunable of the analysis-resynthesis pipeline.
// HopSize may not exceed WindowSize, so frames always cover the signal.
type Config struct {
	SampleRate       int     `yaml:"sample_rate"`
	WindowSize       int     `yaml:"window_size"`
	HopSize          int     `yaml:"hop_size"`
	Order            int     `yaml:"order"`
	VoicingThreshold float64 `yaml:"voicing_threshold"`
	// OutputLimit bounds the magnitude of every synthesized sample.
	OutputLimit float64 `yaml:"output_limit"`
	// PhaseInSeconds divides the excitation phase by the sample rate.
	// The default keeps the phase in samples.
	PhaseInSeconds bool       `yaml:"phase_in_seconds"`
	Solver         SolverKind `yaml:"solver"`
	// Workers caps the number of frames analysed concurrently.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int `yaml:"workers"`
}

// DefaultConfig returns 44.1kHz analysis with 300 sample windows at 50%
// overlap and order 10.
func DefaultConfig() Config {
	return Config{
		SampleRate:       DefaultSampleRate,
		WindowSize:       DefaultWindowSize,
		HopSize:          DefaultWindowSize / 2,
		Order:            DefaultOrder,
		VoicingThreshold: DefaultVoicingThreshold,
		OutputLimit:      DefaultOutputLimit,
		Solver:           SolverRegression,
	}
}

// withDefaults fills derived fields left at their zero value.
func (c Config) withDefaults() Config {
	if c.HopSize == 0 && c.WindowSize > 0 {
		c.HopSize = c.WindowSize / 2
	}
	if c.Solver == "" {
		c.Solver = SolverRegression
	}
	return c
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	c = c.withDefaults()

	var errs []error

	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, c.SampleRate))
	}
	if c.WindowSize < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidWindowSize, c.WindowSize))
	}
	if c.HopSize <= 0 || c.HopSize > c.WindowSize {
		errs = append(errs, fmt.Errorf("%w: got hop %d for window %d", ErrInvalidHopSize, c.HopSize, c.WindowSize))
	}
	if c.Order <= 0 || c.Order >= c.WindowSize {
		errs = append(errs, fmt.Errorf("%w: got order %d for window %d", ErrInvalidOrder, c.Order, c.WindowSize))
	}
	if math.IsNaN(c.VoicingThreshold) || math.IsInf(c.VoicingThreshold, 0) {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrInvalidThreshold, c.VoicingThreshold))
	}
	if !(c.OutputLimit > 0) {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrInvalidOutputLimit, c.OutputLimit))
	}
	if !c.Solver.IsValid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownSolver, c.Solver))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers))
	}

	return errors.Join(errs...)
}
