// SPDX-License-Identifier: EPL-2.0

// Package lpc implements short-time linear-predictive analysis and
// resynthesis of a mono signal.
//
// A signal is cut into overlapping frames of WindowSize samples, HopSize
// apart. Every frame is Hann windowed and autocorrelated; the
// autocorrelation drives both a coefficient Solver and a pitch/voicing
// decision. Voiced frames are modulated by a cosine at the detected pitch,
// the result is run through the all-pole filter defined by the coefficients,
// and the filtered frame overwrites the output at its hop offset.
//
//	p, err := lpc.NewProcessor(lpc.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	res, err := p.Process(samples)
//
// # Frames
//
// There are len(samples)/HopSize frames. Frame reads past the end of the
// signal see zeros and writes past the end are dropped, so the output always
// has the length of the input.
//
// Frames do not share state, so Process analyses them on a bounded pool of
// goroutines (Config.Workers) and merges them strictly in order: where frames
// overlap, the later frame's samples win.
//
// # Degenerate frames
//
// Numeric trouble inside a frame never aborts a run:
//   - a solver error (silent frame, singular system) falls back to
//     coefficients that pass the excitation through unchanged
//   - a frame without an autocorrelation peak is unvoiced with pitch 0
//   - filter output is saturated to ±Config.OutputLimit
//
// Each case is counted in Stats and logged at debug level.
package lpc
