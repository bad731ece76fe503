// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"math/rand/v2"
)

func sine(sampleRate, sample int, freq, amp float64) float64 {
	return amp * math.Sin(2*math.Pi*freq*float64(sample)/float64(sampleRate))
}

// SineSamples returns n samples of a sine of freq Hz and amplitude amp.
func SineSamples(sampleRate, n int, freq, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = sine(sampleRate, i, freq, amp)
	}
	return out
}

// NoiseSamples returns n uniform samples in [-amp, amp]. The same seed
// always yields the same samples.
func NoiseSamples(seed uint64, n int, amp float64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	out := make([]float64, n)
	for i := range out {
		out[i] = amp * (2*rng.Float64() - 1)
	}
	return out
}
