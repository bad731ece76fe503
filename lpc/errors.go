// SPDX-License-Identifier: EPL-2.0

package lpc

import "errors"

var (
	ErrEmptySignal        = errors.New("signal buffer is empty")
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrInvalidWindowSize  = errors.New("window size must be at least 2 samples")
	ErrInvalidHopSize     = errors.New("hop size must be positive and no larger than the window size")
	ErrInvalidOrder       = errors.New("LPC order must be positive and smaller than the window size")
	ErrInvalidThreshold   = errors.New("voicing threshold must be a finite number")
	ErrInvalidOutputLimit = errors.New("output limit must be positive")
	ErrInvalidWorkers     = errors.New("workers must not be negative")
	ErrUnknownSolver      = errors.New("unknown LPC solver")

	// ErrZeroEnergy is returned by a solver when the frame has no energy at lag 0.
	ErrZeroEnergy = errors.New("zero energy frame")
	// ErrSingular is returned when the regression system has no usable solution.
	ErrSingular = errors.New("singular LPC system")
	// ErrShortAutocorrelation is returned when fewer than order+1 lags are available.
	ErrShortAutocorrelation = errors.New("autocorrelation shorter than order+1")
)
