// SPDX-License-Identifier: EPL-2.0

package lpc

// Decision is the pitch and voicing estimate of one frame.
type Decision struct {
	// Pitch in Hz, zero when no periodic peak was found.
	Pitch  float64 `yaml:"pitch"`
	Voiced bool    `yaml:"voiced"`
	// Lag of the autocorrelation peak in samples, zero when undefined.
	Lag  int     `yaml:"lag"`
	Peak float64 `yaml:"peak"`
}

// DetectPitch picks the strongest autocorrelation peak outside the zero-lag
// lobe and converts its lag to a frequency.
//
// coor[0] is the largest value of any autocorrelation, so the search starts
// at the first lag where coor drops to zero or below. A frame without a
// positive peak past that point has no pitch and is unvoiced.
func DetectPitch(coor []float64, sampleRate int, threshold float64) Decision {
	lag := 1
	for lag < len(coor) && coor[lag] > 0 {
		lag++
	}

	maxIndex := 0
	maxValue := 0.0
	for ; lag < len(coor); lag++ {
		if coor[lag] > maxValue {
			maxValue = coor[lag]
			maxIndex = lag
		}
	}

	if maxIndex == 0 {
		return Decision{}
	}

	return Decision{
		Pitch:  float64(sampleRate) / float64(maxIndex),
		Voiced: maxValue > threshold,
		Lag:    maxIndex,
		Peak:   maxValue,
	}
}
