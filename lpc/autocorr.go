// SPDX-License-Identifier: EPL-2.0

package lpc

// Autocorrelate fills dst with the unnormalized autocorrelation of frame:
//
//	dst[lag] = sum(frame[i] * frame[i+lag]) for i in [0, len(frame)-lag)
//
// dst must not be longer than frame; lags beyond len(dst) are not computed.
func Autocorrelate(dst, frame []float64) {
	n := len(frame)
	for lag := range dst {
		var sum float64
		head := frame[:n-lag]
		tail := frame[lag:]
		for i, v := range head {
			sum += v * tail[i]
		}
		dst[lag] = sum
	}
}
