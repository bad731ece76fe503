// SPDX-License-Identifier: EPL-2.0

package lpc

import "math"

// Excite modulates a voiced frame in place with cos(2*pi*pitch*n).
// n counts samples; with phaseInSeconds it is divided by sampleRate first.
// Unvoiced frames are left untouched.
func Excite(frame []float64, d Decision, sampleRate int, phaseInSeconds bool) {
	if !d.Voiced {
		return
	}

	step := 2 * math.Pi * d.Pitch
	if phaseInSeconds {
		step /= float64(sampleRate)
	}

	for n := range frame {
		frame[n] *= math.Cos(step * float64(n))
	}
}
