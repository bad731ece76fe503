// SPDX-License-Identifier: EPL-2.0

package lpc

import "math"

// Synthesize runs exc through the direct-form all-pole filter
//
//	dst[p] = coeff[0]*exc[p] + sum(coeff[r]*dst[p-r]) for r in [1, min(order, p)]
//
// starting from zero history. Every output is saturated to [-limit, limit]
// before it is fed back, and NaN becomes zero, so the recursion stays bounded
// for any coefficients. It returns how many samples had to be saturated.
func Synthesize(dst, exc, coeff []float64, limit float64) int {
	order := len(coeff) - 1
	clamped := 0

	for p, x := range exc {
		acc := coeff[0] * x
		for r := 1; r <= order && r <= p; r++ {
			acc += coeff[r] * dst[p-r]
		}

		switch {
		case math.IsNaN(acc):
			acc = 0
			clamped++
		case acc > limit:
			acc = limit
			clamped++
		case acc < -limit:
			acc = -limit
			clamped++
		}

		dst[p] = acc
	}

	return clamped
}
