// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
// NaN maps to zero.
func FloatToInt16(x float64) int16 {
	switch {
	case math.IsNaN(x):
		return 0
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	// 32767 keeps +1.0 from overflowing.
	return int16(x * math.MaxInt16)
}

// PCMScale returns the magnitude of full scale for signed PCM of bitDepth
// bits, 2^(bitDepth-1). Unknown depths are treated as 16-bit.
func PCMScale(bitDepth int) float64 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1))
	}
	return 1 << 15
}

// PCMToFloat normalizes a signed PCM value of bitDepth bits to [-1, 1).
func PCMToFloat(v, bitDepth int) float64 {
	return float64(v) / PCMScale(bitDepth)
}

// Float32Bits returns x as an IEEE-754 single precision bit pattern,
// sign-extended into an int so it can travel through integer sample buffers.
func Float32Bits(x float64) int {
	return int(int32(math.Float32bits(float32(x))))
}

// FromFloat32Bits is the inverse of Float32Bits.
func FromFloat32Bits(v int) float64 {
	return float64(math.Float32frombits(uint32(int32(v))))
}
