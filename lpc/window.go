// SPDX-License-Identifier: EPL-2.0

package lpc

import "gonum.org/v1/gonum/dsp/window"

// HannWindow returns the n raised-cosine weights
// w(j) = 0.5 * (1 - cos(2*pi*j / (n-1))).
// Both ends are zero and the peak is 1.
func HannWindow(n int) window.Values {
	if n < 2 {
		return make(window.Values, n)
	}
	return window.NewValues(window.Hann, n)
}

// FrameCount is the number of analysis frames for a signal of length n:
// one frame per whole hop, the last ones may extend past the end.
func FrameCount(n, hop int) int {
	if hop <= 0 {
		return 0
	}
	return n / hop
}

// FrameBounds returns the half-open source range [start, end) of frame bin.
func FrameBounds(bin, window, hop int) (start, end int) {
	start = bin * hop
	return start, start + window
}

// ExtractFrame copies len(dst) samples of src starting at start into dst.
// Positions past the end of src are zero filled.
func ExtractFrame(dst, src []float64, start int) {
	n := 0
	if start < len(src) {
		n = copy(dst, src[start:])
	}
	clear(dst[n:])
}

// ApplyWindow multiplies frame by the weights in place.
func ApplyWindow(frame []float64, weights window.Values) {
	weights.Transform(frame)
}
